package reflow

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/smilingpoplar/vtt-translate/internal/timeline"
)

func doc(blocks ...[]string) *timeline.Document {
	d := &timeline.Document{}
	for i, lines := range blocks {
		d.Blocks = append(d.Blocks, timeline.Block{
			ID:     string(rune('A' + i)),
			Timing: "00:00:00.000 --> 00:00:01.000",
			Lines:  lines,
		})
	}
	return d
}

func TestReconstruct(t *testing.T) {
	got := Reconstruct(doc(
		[]string{"Hello there.", "How are you"},
		[]string{"today?"},
	))
	want := []Sentence{
		{Fragments: []FragmentPosition{{0, 0, 11}}, Text: "Hello there.", Terminated: true},
		{Fragments: []FragmentPosition{{0, 1, 11}, {1, 0, 6}}, Text: "How are you today?"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reconstruct() = %+v, want %+v", got, want)
	}
}

func TestReconstructSeveralPerLine(t *testing.T) {
	got := Reconstruct(doc(
		[]string{"  It ends. And it", "begins. Again.  "},
	))
	want := []Sentence{
		{Fragments: []FragmentPosition{{0, 0, 7}}, Text: "It ends.", Terminated: true},
		{Fragments: []FragmentPosition{{0, 0, 6}, {0, 1, 6}}, Text: "And it begins.", Terminated: true},
		{Fragments: []FragmentPosition{{0, 1, 5}}, Text: "Again.", Terminated: true},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reconstruct() = %+v, want %+v", got, want)
	}
}

func TestReconstructSkipsBlankLines(t *testing.T) {
	got := Reconstruct(doc(
		[]string{"One", "   "},
		[]string{},
		[]string{"", "two."},
	))
	want := []Sentence{
		{Fragments: []FragmentPosition{{0, 0, 3}, {2, 1, 3}}, Text: "One two.", Terminated: true},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reconstruct() = %+v, want %+v", got, want)
	}
}

func TestReconstructDiscardsEmptyChunks(t *testing.T) {
	got := Reconstruct(doc([]string{"Wait... what. . Ok."}))
	want := []string{"Wait.", "what.", "Ok."}
	if texts := Texts(got); !reflect.DeepEqual(texts, want) {
		t.Errorf("Texts() = %q, want %q", texts, want)
	}
	for _, s := range got {
		for _, f := range s.Fragments {
			if f.Length == 0 {
				t.Errorf("zero-length fragment in %q", s.Text)
			}
		}
	}
}

func TestReconstructCountsRunes(t *testing.T) {
	got := Reconstruct(doc([]string{"سلام دنیا."}))
	if got[0].Fragments[0].Length != 9 {
		t.Errorf("length = %d, want 9", got[0].Fragments[0].Length)
	}
}

func TestReconstructCompleteness(t *testing.T) {
	d := doc(
		[]string{"The quick brown fox", "jumps over. The lazy"},
		[]string{"dog sleeps. A"},
		[]string{"bird sings. Then silence."},
	)
	sentences := Reconstruct(d)

	var fromDoc, fromSentences strings.Builder
	for _, b := range d.Blocks {
		for _, l := range b.Lines {
			fromDoc.WriteString(strings.ReplaceAll(l, " ", ""))
		}
	}
	for _, s := range sentences {
		fromSentences.WriteString(strings.ReplaceAll(s.Text, " ", ""))

		// Fragments, the spaces joining them and the fullstop make up the text.
		n := len(s.Fragments) - 1
		for _, f := range s.Fragments {
			n += f.Length
		}
		if s.Terminated {
			n++
		}
		if got := utf8.RuneCountInString(s.Text); got != n {
			t.Errorf("%q: text length %d, fragments account for %d", s.Text, got, n)
		}
	}
	if fromDoc.String() != fromSentences.String() {
		t.Errorf("sentences %q do not cover document %q", fromSentences.String(), fromDoc.String())
	}
}

func TestDropUnterminated(t *testing.T) {
	sentences := Reconstruct(doc([]string{"Done. Not done"}))
	kept, tail := DropUnterminated(sentences)
	if len(kept) != 1 || kept[0].Text != "Done." {
		t.Errorf("kept = %+v", kept)
	}
	if tail == nil || tail.Text != "Not done" {
		t.Errorf("tail = %+v", tail)
	}

	kept, tail = DropUnterminated(kept)
	if len(kept) != 1 || tail != nil {
		t.Errorf("terminated sentences should be kept, got %+v, %+v", kept, tail)
	}
}

func TestSetTexts(t *testing.T) {
	sentences := Reconstruct(doc([]string{"One. Two. How are you"}, []string{"today?"}))
	texts := []string{"Un.", "Deux", "Comment vas-tu aujourd'hui?"}
	if err := SetTexts(sentences, texts); err != nil {
		t.Fatal(err)
	}
	want := []string{"Un.", "Deux.", "Comment vas-tu aujourd'hui?"}
	if got := Texts(sentences); !reflect.DeepEqual(got, want) {
		t.Errorf("texts = %q, want %q", got, want)
	}

	if err := SetTexts(sentences, texts[:1]); err == nil {
		t.Error("expected count mismatch error")
	}
}
