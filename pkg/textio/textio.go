// Package textio reads narrative source files.
//
// Input is expected to be UTF-8. Files produced by older Japanese tooling are
// often Shift_JIS encoded; those are detected and transparently decoded. Any
// bytes that survive neither decoding abort the run before parsing begins.
package textio

import (
	"bytes"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/siragigame02/novel-image-generator/pkg/errors"
)

// ReadLines reads path and returns its lines with line endings stripped.
// UTF-8 content is used as-is; otherwise a Shift_JIS decode is attempted.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "text file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}

	text, err := Decode(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidEncoding, err,
			"%s is neither UTF-8 nor Shift_JIS", path)
	}

	return SplitLines(text), nil
}

// Decode converts raw file bytes to a string, trying UTF-8 first and falling
// back to Shift_JIS.
func Decode(data []byte) (string, error) {
	// Strip a UTF-8 BOM if present.
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	if utf8.Valid(data) {
		return string(data), nil
	}

	decoded, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), data)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// SplitLines splits text into lines, handling both LF and CRLF endings.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
