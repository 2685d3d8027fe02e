package timeline

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/asticode/go-astisub"

	"github.com/smilingpoplar/vtt-translate/internal/lang"
)

// File is a subtitle file read from disk. WebVTT files with UUID cue
// identifiers are handled by the native codec so that identifiers and
// timing lines survive verbatim; other WebVTT files and everything else
// (.srt, .ssa, .ass, .stl, .ttml) go through astisub.
type File struct {
	Document *Document

	subs *astisub.Subtitles
}

func isNative(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".vtt")
}

// ReadFile loads the subtitle file at path.
func ReadFile(path string) (*File, error) {
	if !isNative(path) {
		subs, err := astisub.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("open subtitle file %s: %w", path, err)
		}
		return &File{Document: FromSubtitles(subs), subs: subs}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open VTT file %s: %w", path, err)
	}
	defer f.Close()
	text, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("read VTT file %s: %w", path, err)
	}
	doc, err := Parse(bytes.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("parse VTT file %s: %w", path, err)
	}
	if len(doc.Blocks) == 0 && bytes.Contains(text, []byte("-->")) {
		// cues without UUID identifiers
		subs, err := astisub.ReadFromWebVTT(bytes.NewReader(text))
		if err != nil {
			return nil, fmt.Errorf("parse VTT file %s: %w", path, err)
		}
		return &File{Document: FromSubtitles(subs), subs: subs}, nil
	}
	return &File{Document: doc}, nil
}

// WriteFile writes doc to path in the format f was read in. The file is
// replaced atomically: on error nothing is left at path.
func (f *File) WriteFile(path string, doc *Document, dir lang.Direction) error {
	if f.subs == nil {
		return replaceFile(path, func(out *os.File) error {
			return Write(out, doc, dir)
		})
	}
	if err := ToSubtitles(f.subs, doc, dir); err != nil {
		return err
	}
	return replaceFile(path, func(out *os.File) error {
		return f.subs.Write(out.Name())
	})
}

func replaceFile(path string, write func(*os.File) error) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	ext := filepath.Ext(base)
	tmp, err := os.CreateTemp(dir, "."+strings.TrimSuffix(base, ext)+"-*"+ext)
	if err != nil {
		return fmt.Errorf("create file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
