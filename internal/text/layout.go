package text

import (
	"strings"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// Glyph is one positioned rune of a laid out line.
type Glyph struct {
	// Rune is the first rune of the glyph's cluster.
	Rune rune
	// X is the pen position relative to the line origin, in pixels.
	X fixed.Int26_6
	// Advance is the horizontal advance, in pixels.
	Advance fixed.Int26_6
}

// Line is a shaped line of text.
type Line struct {
	Glyphs []Glyph
	Width  fixed.Int26_6
}

// Normalize returns s in Unicode NFC form with Windows line endings folded.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return norm.NFC.String(s)
}

// Layout normalizes s and shapes each of its lines left to right.
func (f *Face) Layout(s string) []Line {
	s = Normalize(s)
	if s == "" {
		return nil
	}

	var hb shaping.HarfbuzzShaper
	parts := strings.Split(s, "\n")
	lines := make([]Line, 0, len(parts))
	for _, part := range parts {
		lines = append(lines, f.shapeLine(&hb, []rune(part)))
	}
	return lines
}

func (f *Face) shapeLine(hb *shaping.HarfbuzzShaper, runes []rune) Line {
	if len(runes) == 0 {
		return Line{}
	}

	out := hb.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      f.shaping,
		Size:      fixed.Int26_6(f.size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	})

	line := Line{Glyphs: make([]Glyph, 0, len(out.Glyphs))}
	var pen fixed.Int26_6
	for _, g := range out.Glyphs {
		idx := g.TextIndex()
		if idx < 0 || idx >= len(runes) {
			continue
		}
		line.Glyphs = append(line.Glyphs, Glyph{
			Rune:    runes[idx],
			X:       pen + g.XOffset,
			Advance: g.Advance,
		})
		pen += g.Advance
	}
	line.Width = pen
	return line
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
