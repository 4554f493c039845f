package shared

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

var glyphs = map[string]string{
	"Plane":         "✈",
	"Award":         "🏆",
	"MapPin":        "📍",
	"GraduationCap": "🎓",
	"Globe":         "🌍",
	"Calendar":      "📅",
	"Users":         "👥",
	"BookOpen":      "📖",
	"User":          "👤",
	"Star":          "★",
	"Shield":        "🛡",
	"Heart":         "♥",
	"FileUp":        "📤",
	"Upload":        "⬆",
	"FileCheck":     "📄",
	"X":             "✕",
	"Info":          "ℹ",
	"Mail":          "✉",
	"Phone":         "☎",
	"Facebook":      "f",
	"Twitter":       "𝕏",
	"Instagram":     "◎",
	"Linkedin":      "in",
}

// Icon renders a decorative icon by name. Unknown names fall back to a bullet.
func Icon(name string, size int) g.Node {
	glyph, ok := glyphs[name]
	if !ok {
		glyph = "•"
	}
	return Span(
		Class("icon icon-"+strings.ToLower(name)),
		Style(fmt.Sprintf("font-size: %dpx", size)),
		Aria("hidden", "true"),
		Data("icon", name),
		g.Text(glyph),
	)
}
