package app

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/smilingpoplar/vtt-translate/internal/lang"
)

const fallbackStem = "vtt-translate-output"

// DefaultOutputPath names the translated file after the input, replacing a
// trailing source language tag ("talk-en-GB.vtt") with the target one
// ("talk-fa.vtt"). The tag may carry any two letter region and is matched
// case insensitively. The directory part of input is kept as written.
func DefaultOutputPath(input string, source, target lang.Language) string {
	dir, base := filepath.Split(input)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" {
		// dot file without extension
		stem, ext = base, ""
	}

	prefix := stem
	if source != lang.Und {
		re := regexp.MustCompile(`^(.+?)(-(?i:` + regexp.QuoteMeta(source.String()) + `)(-[A-Za-z]{2})?)?$`)
		if m := re.FindStringSubmatch(stem); m != nil {
			prefix = m[1]
		}
	}
	if prefix == "" {
		prefix = fallbackStem
	}
	return dir + prefix + "-" + target.String() + ext
}
