package timeline

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/asticode/go-astisub"

	"github.com/smilingpoplar/vtt-translate/internal/lang"
)

// FromSubtitles maps astisub items onto blocks, one line per astisub line.
// Timing is rendered for display only; writing goes back through the
// original items, see ToSubtitles.
func FromSubtitles(subs *astisub.Subtitles) *Document {
	doc := &Document{Blocks: make([]Block, 0, len(subs.Items))}
	for i, item := range subs.Items {
		id := item.Index
		if id == 0 {
			id = i + 1
		}
		b := Block{
			ID:     strconv.Itoa(id),
			Timing: formatTiming(item.StartAt) + " --> " + formatTiming(item.EndAt),
			Lines:  make([]string, 0, len(item.Lines)),
		}
		for _, l := range item.Lines {
			b.Lines = append(b.Lines, strings.TrimSpace(l.String()))
		}
		doc.Blocks = append(doc.Blocks, b)
	}
	return doc
}

// ToSubtitles replaces the text of each item in subs with the lines of the
// matching block. Timing, styles and regions of the items are untouched.
func ToSubtitles(subs *astisub.Subtitles, doc *Document, dir lang.Direction) error {
	if len(doc.Blocks) != len(subs.Items) {
		return fmt.Errorf("document has %d blocks, subtitles have %d items",
			len(doc.Blocks), len(subs.Items))
	}
	doc = ApplyDirection(doc, dir)
	for i, item := range subs.Items {
		old := item.Lines
		item.Lines = make([]astisub.Line, len(doc.Blocks[i].Lines))
		for j, text := range doc.Blocks[i].Lines {
			line := astisub.Line{Items: []astisub.LineItem{{Text: text}}}
			if j < len(old) {
				line.VoiceName = old[j].VoiceName
			}
			item.Lines[j] = line
		}
	}
	return nil
}

func formatTiming(d time.Duration) string {
	ms := d.Milliseconds()
	return fmt.Sprintf("%02d:%02d:%02d.%03d",
		ms/3600000, ms/60000%60, ms/1000%60, ms%1000)
}
