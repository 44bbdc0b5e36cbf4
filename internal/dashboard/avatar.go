package dashboard

import (
	"fmt"
	"hash/fnv"
	"html/template"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Pastel palette, readable on the dark surface.
var avatarPalette = [...]string{
	"#7ec8e3", // sky blue
	"#a78bda", // lavender
	"#c9a9e0", // soft purple
	"#e8a0bf", // dusty rose
	"#f4b183", // peach
	"#b5d99c", // sage green
	"#8cc5b2", // mint
	"#d6c28e", // warm sand
}

// initials returns up to two uppercase letters taken from the first and last
// words of name.
func initials(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(words) == 0 {
		return ""
	}
	first, _ := utf8.DecodeRuneInString(words[0])
	out := string(unicode.ToUpper(first))
	if len(words) > 1 {
		last, _ := utf8.DecodeRuneInString(words[len(words)-1])
		out += string(unicode.ToUpper(last))
	}
	return out
}

// userAvatar renders the header profile picture. A configured image URL wins;
// otherwise the initials sit on a two-stop gradient picked from the name.
func userAvatar(name, src string, size int) template.HTML {
	if src != "" {
		return template.HTML(fmt.Sprintf(
			`<img class="avatar" width="%d" height="%d" src="%s" alt="%s">`,
			size, size, template.HTMLEscapeString(src), template.HTMLEscapeString(name)))
	}
	ini := initials(name)
	if ini == "" {
		return ""
	}

	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	sum := h.Sum32()

	pl := uint32(len(avatarPalette))
	i1 := sum % pl
	i2 := (sum / pl) % pl
	if i2 == i1 {
		i2 = (i2 + 1) % pl
	}
	uid := fmt.Sprintf("av%08x", sum)

	return template.HTML(fmt.Sprintf(
		`<svg class="avatar" width="%d" height="%d" viewBox="0 0 40 40">`+
			`<defs><linearGradient id="%s" x1="0" y1="0" x2="1" y2="1">`+
			`<stop offset="0%%" stop-color="%s"/><stop offset="100%%" stop-color="%s"/>`+
			`</linearGradient></defs>`+
			`<circle cx="20" cy="20" r="20" fill="url(#%s)"/>`+
			`<text x="20" y="25" text-anchor="middle" font-size="14" font-weight="700" fill="#0a0a0f">%s</text>`+
			`</svg>`,
		size, size, uid, avatarPalette[i1], avatarPalette[i2], uid, template.HTMLEscapeString(ini)))
}
