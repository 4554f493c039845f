package pages

import (
	"sync"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"
)

// rendered markdown by source; site copy is static so this stays small
var markdownCache sync.Map

func markdownHTML(source string) string {
	if cached, ok := markdownCache.Load(source); ok {
		return cached.(string)
	}

	// Parsers are stateful, one per document
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	html := string(markdown.ToHTML([]byte(source), p, nil))

	markdownCache.Store(source, html)
	return html
}
