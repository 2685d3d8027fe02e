package reflow

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/smilingpoplar/vtt-translate/internal/timeline"
)

// slack lets a chunk stop a few characters short of its target rather
// than overshoot with one more word.
const slack = 3

var (
	ErrZeroLength = errors.New("sentence has no original length to proportion against")
	ErrPosition   = errors.New("fragment position outside document")
)

// Reflow returns a copy of doc whose lines hold the text of sentences,
// where each sentence's Text is the replacement for the sentence
// Reconstruct produced at the same index. Every fragment position gets a
// run of whole words sized by its share of the original sentence; the last
// fragment takes whatever words remain.
func Reflow(doc *timeline.Document, sentences []Sentence) (*timeline.Document, error) {
	out := doc.Blank()
	for si, s := range sentences {
		total := 0
		for _, f := range s.Fragments {
			if !doc.HasLine(f.Block, f.Line) {
				return nil, fmt.Errorf("sentence %d: %w: block %d line %d", si, ErrPosition, f.Block, f.Line)
			}
			total += f.Length
		}
		if total == 0 {
			return nil, fmt.Errorf("sentence %d: %w", si, ErrZeroLength)
		}

		textLen := utf8.RuneCountInString(s.Text)
		words := &wordStream{words: strings.Split(s.Text, " ")}
		for fi, f := range s.Fragments {
			target := f.Length * textLen / total
			chunk := words.take(target, fi == len(s.Fragments)-1)
			appendChunk(&out.Blocks[f.Block].Lines[f.Line], chunk)
		}
	}
	return out, nil
}

type wordStream struct {
	words []string
	pos   int
}

// take consumes at least one word, then keeps going while the chunk is
// short of target (or all remaining words when last is set).
func (ws *wordStream) take(target int, last bool) string {
	var b strings.Builder
	n := 0
	for (n == 0 || n+slack <= target || last) && ws.pos < len(ws.words) {
		if w := ws.words[ws.pos]; w != "" {
			b.WriteString(w)
			b.WriteByte(' ')
			n += utf8.RuneCountInString(w) + 1
		}
		ws.pos++
	}
	return strings.TrimRight(b.String(), " ")
}

func appendChunk(line *string, chunk string) {
	if chunk == "" {
		return
	}
	if *line != "" {
		*line += " "
	}
	*line += chunk
}
