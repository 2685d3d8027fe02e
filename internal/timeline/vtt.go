package timeline

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/smilingpoplar/vtt-translate/internal/lang"
)

const header = "WEBVTT"

var blockIDRe = regexp.MustCompile(
	`^[0-9a-fA-F]{8}\b-[0-9a-fA-F]{4}\b-[0-9a-fA-F]{4}\b-[0-9a-fA-F]{4}\b-[0-9a-fA-F]{12}`)

// ParseError is a line of input that does not fit the block structure.
type ParseError struct {
	Line int
	Text string
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Msg, e.Text)
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func isBlockID(line string) bool {
	return blockIDRe.MatchString(line)
}

func isTiming(line string) bool {
	return strings.Contains(line, "-->")
}

// isComment reports whether line opens a NOTE, STYLE or REGION section.
func isComment(line string) bool {
	for _, kw := range []string{"NOTE", "STYLE", "REGION"} {
		if line == kw || strings.HasPrefix(line, kw+" ") || strings.HasPrefix(line, kw+"\t") {
			return true
		}
	}
	return false
}

// Parse reads a WebVTT file whose cues are introduced by UUID identifiers.
// Header metadata, NOTE, STYLE and REGION sections and anything else that
// precedes the first UUID cue are skipped.
func Parse(r io.Reader) (*Document, error) {
	doc := &Document{}
	var cur *Block
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0
	afterBlank, inComment := true, false
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if isBlank(line) {
			afterBlank, inComment = true, false
			continue
		}
		if inComment {
			continue
		}
		startOfSection := afterBlank
		afterBlank = false
		switch {
		case line == header || strings.HasPrefix(line, header+" ") || strings.HasPrefix(line, header+"\t"):
			continue
		case startOfSection && isComment(line):
			inComment = true
		case isBlockID(line):
			if cur != nil {
				doc.Blocks = append(doc.Blocks, *cur)
			}
			cur = &Block{ID: line}
		case cur == nil:
			// header metadata or a cue without a UUID identifier
			continue
		case isTiming(line):
			if cur.Timing != "" {
				return nil, &ParseError{Line: lineNum, Text: line, Msg: "second timing line in block"}
			}
			cur.Timing = line
		default:
			cur.Lines = append(cur.Lines, strings.TrimSpace(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if cur != nil {
		doc.Blocks = append(doc.Blocks, *cur)
	}
	return doc, nil
}

// Write emits doc in the same format Parse reads. Lines are trimmed and,
// for right-to-left output, wrapped in direction marks.
func Write(w io.Writer, doc *Document, dir lang.Direction) error {
	doc = ApplyDirection(doc, dir)
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n\n", header)
	for _, b := range doc.Blocks {
		fmt.Fprintln(bw, b.ID)
		fmt.Fprintln(bw, b.Timing)
		for _, line := range b.Lines {
			fmt.Fprintln(bw, line)
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}
