package timeline

import "fmt"

// Bilingual returns a document whose blocks show the lines of orig followed
// by the lines of translated. Both documents must have the same blocks.
func Bilingual(orig, translated *Document) (*Document, error) {
	if len(orig.Blocks) != len(translated.Blocks) {
		return nil, fmt.Errorf("bilingual: %d blocks vs %d blocks",
			len(orig.Blocks), len(translated.Blocks))
	}
	out := &Document{Blocks: make([]Block, len(orig.Blocks))}
	for i, b := range orig.Blocks {
		lines := make([]string, 0, len(b.Lines)+len(translated.Blocks[i].Lines))
		lines = append(lines, b.Lines...)
		lines = append(lines, translated.Blocks[i].Lines...)
		out.Blocks[i] = Block{ID: b.ID, Timing: b.Timing, Lines: lines}
	}
	return out, nil
}
