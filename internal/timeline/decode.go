package timeline

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/dimchansky/utfbom"
	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decode returns the UTF-8 text of a subtitle file. A byte order mark is
// honoured and dropped; input that is not valid UTF-8 is run through
// charset detection and converted.
func Decode(r io.Reader) ([]byte, error) {
	sr, enc := utfbom.Skip(r)
	bs, err := io.ReadAll(sr)
	if err != nil {
		return nil, err
	}
	switch enc {
	case utfbom.UTF16LittleEndian:
		return decodeWith(bs, unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM))
	case utfbom.UTF16BigEndian:
		return decodeWith(bs, unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM))
	}
	if utf8.Valid(bs) {
		return bs, nil
	}

	res, err := chardet.NewTextDetector().DetectBest(bs)
	if err != nil {
		return nil, fmt.Errorf("detect charset: %w", err)
	}
	e, err := encodingFor(res.Charset)
	if err != nil {
		return nil, err
	}
	return decodeWith(bs, e)
}

func encodingFor(charset string) (encoding.Encoding, error) {
	if strings.EqualFold(charset, "GB-18030") {
		return simplifiedchinese.GB18030, nil
	}
	e, err := htmlindex.Get(charset)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", charset, err)
	}
	return e, nil
}

func decodeWith(bs []byte, e encoding.Encoding) ([]byte, error) {
	out, err := io.ReadAll(transform.NewReader(bytes.NewReader(bs), e.NewDecoder()))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return out, nil
}
