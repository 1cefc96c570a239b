package file

import (
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decode turns raw file bytes into UTF-8 source text. A UTF-8 or UTF-16
// byte order mark selects the encoding and is dropped; without a BOM the
// input must already be valid UTF-8.
func Decode(b []byte) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, b)
	if err != nil {
		return "", errors.Wrap(err, "decode source")
	}
	if !utf8.Valid(out) {
		return "", errors.New("decode source: invalid UTF-8")
	}
	return string(out), nil
}
