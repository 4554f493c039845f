package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triptogether_echo/internal/content"
)

func TestPrintContent(t *testing.T) {
	site, err := content.Default()
	require.NoError(t, err)

	var buf bytes.Buffer
	now := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	printContent(&buf, site, now, 1)

	out := buf.String()
	assert.Contains(t, out, "Trip Together: content OK")
	assert.Contains(t, out, "Programs (3)")
	assert.Contains(t, out, "Canada Study Program  21 Days, Small Groups (15-20), 5,300 CAD")
	assert.Contains(t, out, "departs Sun Jun 1, 2025")
	assert.Contains(t, out, "departs Sat Mar 15, 2025")
}
