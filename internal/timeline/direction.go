package timeline

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/smilingpoplar/vtt-translate/internal/lang"
)

// RLM is the right-to-left mark.
const RLM = "\u200f"

func isASCII(r rune) bool {
	return r <= unicode.MaxASCII
}

// markLine anchors a right-to-left line whose edges are ASCII (Latin words,
// digits, punctuation) with RLM characters. Left-to-right lines and empty
// lines are returned unchanged.
func markLine(line string, dir lang.Direction) string {
	if dir != lang.RightToLeft || line == "" {
		return line
	}
	if first, _ := utf8.DecodeRuneInString(line); isASCII(first) {
		line = RLM + line
	}
	trimmed := strings.TrimRightFunc(line, unicode.IsSpace)
	if last, _ := utf8.DecodeLastRuneInString(trimmed); trimmed != "" && isASCII(last) {
		line += RLM
	}
	return line
}

// ApplyDirection returns a copy of doc with every line trimmed and passed
// through markLine.
func ApplyDirection(doc *Document, dir lang.Direction) *Document {
	out := doc.Clone()
	for i := range out.Blocks {
		for j, line := range out.Blocks[i].Lines {
			out.Blocks[i].Lines[j] = markLine(strings.TrimSpace(line), dir)
		}
	}
	return out
}
