// Package timeline holds the in-memory form of a subtitle file: an ordered
// list of timed blocks, each with its own text lines.
package timeline

// Block is one timed caption. ID and Timing are kept verbatim from the
// source file.
type Block struct {
	ID     string
	Timing string
	Lines  []string
}

// Document is a subtitle file in playback order.
type Document struct {
	Blocks []Block
}

// Clone returns a deep copy, so the result can be changed without
// touching d.
func (d *Document) Clone() *Document {
	c := &Document{Blocks: make([]Block, len(d.Blocks))}
	for i, b := range d.Blocks {
		c.Blocks[i] = Block{
			ID:     b.ID,
			Timing: b.Timing,
			Lines:  append([]string(nil), b.Lines...),
		}
	}
	return c
}

// Blank returns a copy of d with every line emptied. Block and line
// counts are unchanged.
func (d *Document) Blank() *Document {
	c := &Document{Blocks: make([]Block, len(d.Blocks))}
	for i, b := range d.Blocks {
		c.Blocks[i] = Block{
			ID:     b.ID,
			Timing: b.Timing,
			Lines:  make([]string, len(b.Lines)),
		}
	}
	return c
}

// HasLine reports whether (block, line) addresses a line of d.
func (d *Document) HasLine(block, line int) bool {
	return block >= 0 && block < len(d.Blocks) &&
		line >= 0 && line < len(d.Blocks[block].Lines)
}
