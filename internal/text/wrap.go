// Package text lays out paragraphs of help text within a terminal width.
package text

import (
	"io"
	"strings"

	"github.com/napalu/clop/util"
)

const (
	// NBSP marks a space which must not be broken on. It is rendered as ' '.
	NBSP = '\b'
	// ESC starts a highlight sequence and is never treated as a break point.
	ESC = '\033'
)

// Paragraph writes text to w, breaking lines at whitespace where possible. The first line may
// hold first characters, every following line rest characters. delim is written between lines.
// Each line ends at its last whitespace, even the final one. A word longer than the available
// width is broken at the width boundary and a '\n' in text forces a break.
func Paragraph(w io.Writer, text string, first, rest int, delim string) error {
	_, err := io.WriteString(w, Wrap(text, first, rest, delim))
	return err
}

// Wrap returns the paragraph Paragraph would write
func Wrap(text string, first, rest int, delim string) string {
	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text))

	for cur := 0; ; {
		width := rest
		if cur == 0 {
			width = first
		}
		if width < 1 {
			width = 1
		}

		limit := cur + util.Min(width, len(runes)-cur)
		bp := limit
		for bp > cur && !breakable(runes[bp-1]) {
			bp--
		}
		if bp == cur {
			bp = limit
		}

		for ; cur < bp; cur++ {
			if runes[cur] == '\n' {
				bp = cur + 1
				break
			}
			if runes[cur] == NBSP {
				b.WriteRune(' ')
			} else {
				b.WriteRune(runes[cur])
			}
		}

		cur = bp
		if cur >= len(runes) {
			break
		}
		b.WriteString(delim)
	}

	return b.String()
}

func breakable(r rune) bool {
	return r <= ' ' && r != ESC && r != NBSP
}
