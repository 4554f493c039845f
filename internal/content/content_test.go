package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triptogether_echo/internal/models"
)

func TestDefaultContent(t *testing.T) {
	site, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Trip Together", site.Brand)
	require.Len(t, site.Programs, 3)
	assert.Equal(t, "Canada Study Program", site.Programs[0].Title)
	assert.Equal(t, "UK Academic Exchange", site.Programs[1].Title)
	assert.Equal(t, "European Tour", site.Programs[2].Title)
	assert.Len(t, site.Testimonials, 3)
	assert.Len(t, site.Gallery, 6)
	assert.Len(t, site.Documents.Required, 4)
	assert.Equal(t, "+1 (555) 123-4567", site.Contact.Phone)

	for _, testimonial := range site.Testimonials {
		assert.Equal(t, 5, testimonial.Rating, testimonial.Name)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(site *models.SiteContent)
		wantErr string
	}{
		{
			name:   "default content is valid",
			mutate: func(site *models.SiteContent) {},
		},
		{
			name:    "rating above five",
			mutate:  func(site *models.SiteContent) { site.Testimonials[0].Rating = 6 },
			wantErr: "rating 6 outside 1-5",
		},
		{
			name:    "inverted group size",
			mutate:  func(site *models.SiteContent) { site.Programs[1].GroupSizeMin = 30 },
			wantErr: "group size 30-18 is inverted",
		},
		{
			name:    "bad departures rule",
			mutate:  func(site *models.SiteContent) { site.Programs[2].Departures = "FREQ=SOMETIMES" },
			wantErr: "invalid departures rule",
		},
		{
			name: "footer link to unknown section",
			mutate: func(site *models.SiteContent) {
				site.Footer.QuickLinks = append(site.Footer.QuickLinks, models.Link{Label: "Blog", Section: "blog"})
			},
			wantErr: `unknown section "blog"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			site, err := Default()
			require.NoError(t, err)
			tt.mutate(site)

			err = Validate(site)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("programs: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode content")
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, embedded, 0o644))

	site, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, site.Programs, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestHolderWatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, embedded, 0o644))

	site, err := Load(path)
	require.NoError(t, err)
	holder := NewHolder(site)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, holder.Watch(ctx, path))

	updated := []byte(string(embedded) + "\n")
	updated = []byte(replaceBrand(string(updated), "Trip Together Abroad"))
	require.NoError(t, os.WriteFile(path, updated, 0o644))

	assert.Eventually(t, func() bool {
		return holder.Get().Brand == "Trip Together Abroad"
	}, 2*time.Second, 20*time.Millisecond)
}

func replaceBrand(doc, brand string) string {
	const prefix = "brand: Trip Together\n"
	return "brand: " + brand + "\n" + doc[len(prefix):]
}
