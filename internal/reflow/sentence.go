// Package reflow rebuilds whole sentences from subtitle lines and spreads
// replacement sentences back over the lines they came from.
package reflow

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/smilingpoplar/vtt-translate/internal/timeline"
)

const fullstop = "."

// FragmentPosition is where one piece of a sentence sits in a document and
// how many characters it had there.
type FragmentPosition struct {
	Block  int
	Line   int
	Length int
}

// Sentence is a run of fragments ending in a fullstop. Terminated is false
// only for the text left open at the end of a document.
type Sentence struct {
	Fragments  []FragmentPosition
	Text       string
	Terminated bool
}

// Reconstruct splits the text of doc into sentences in reading order,
// recording the position of every fragment. Text after the last fullstop
// is returned as a final unterminated sentence.
func Reconstruct(doc *timeline.Document) []Sentence {
	var (
		sentences []Sentence
		text      strings.Builder
		frags     []FragmentPosition
	)
	for bi, b := range doc.Blocks {
		for li, line := range b.Lines {
			chunks := strings.Split(strings.TrimSpace(line), fullstop)
			for ci, chunk := range chunks {
				chunk = strings.TrimSpace(chunk)
				if chunk == "" {
					continue
				}
				text.WriteString(chunk)
				frags = append(frags, FragmentPosition{
					Block:  bi,
					Line:   li,
					Length: utf8.RuneCountInString(chunk),
				})
				if ci < len(chunks)-1 {
					text.WriteString(fullstop)
					sentences = append(sentences, Sentence{Fragments: frags, Text: text.String(), Terminated: true})
					text.Reset()
					frags = nil
				} else {
					text.WriteByte(' ')
				}
			}
		}
	}
	if len(frags) > 0 {
		sentences = append(sentences, Sentence{Fragments: frags, Text: strings.TrimRight(text.String(), " ")})
	}
	return sentences
}

// Texts returns the text of each sentence.
func Texts(sentences []Sentence) []string {
	texts := make([]string, len(sentences))
	for i, s := range sentences {
		texts[i] = s.Text
	}
	return texts
}

// SetTexts replaces the text of each sentence with the entry of texts at
// the same index. A terminated sentence whose replacement does not end in a
// fullstop gets one appended, so the sentence boundary survives the next
// Reconstruct. The open tail is left as given.
func SetTexts(sentences []Sentence, texts []string) error {
	if len(texts) != len(sentences) {
		return fmt.Errorf("%d texts for %d sentences", len(texts), len(sentences))
	}
	for i, t := range texts {
		if sentences[i].Terminated && !strings.HasSuffix(t, fullstop) {
			t += fullstop
		}
		sentences[i].Text = t
	}
	return nil
}

// DropUnterminated removes a trailing unterminated sentence, returning it
// separately (nil if the last sentence ended on a fullstop).
func DropUnterminated(sentences []Sentence) ([]Sentence, *Sentence) {
	if n := len(sentences); n > 0 && !sentences[n-1].Terminated {
		tail := sentences[n-1]
		return sentences[:n-1], &tail
	}
	return sentences, nil
}
