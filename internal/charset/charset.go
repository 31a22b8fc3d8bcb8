// Package charset converts INI sources between text encodings and UTF-8.
package charset

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gogs/chardet"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// UTF8BOM is the UTF-8 byte order mark.
var UTF8BOM = []byte{0xEF, 0xBB, 0xBF}

// Lookup returns the encoding for a label such as "utf-8", "latin1" or
// "windows-1252".
func Lookup(label string) (encoding.Encoding, error) {
	label = strings.TrimSpace(label)
	if strings.EqualFold(label, "utf-8") || strings.EqualFold(label, "utf8") {
		return unicode.UTF8, nil
	}
	enc, name := charset.Lookup(label)
	if enc == nil {
		return nil, fmt.Errorf("unknown encoding %q", label)
	}
	if name == "utf-8" {
		return unicode.UTF8, nil
	}
	return enc, nil
}

// Detect guesses the encoding of content and returns its label. Valid UTF-8
// (a truncated final character included) and UTF-16 with a byte order mark
// are recognized directly; anything else is left to chardet.
func Detect(content []byte) (string, error) {
	switch {
	case bytes.HasPrefix(content, UTF8BOM):
		return "UTF-8", nil
	case bytes.HasPrefix(content, []byte{0xFF, 0xFE}):
		return "UTF-16LE", nil
	case bytes.HasPrefix(content, []byte{0xFE, 0xFF}):
		return "UTF-16BE", nil
	}
	if validUTF8(content) {
		return "UTF-8", nil
	}

	detector := chardet.NewTextDetector()
	detectContent := content
	if len(content) < 1024 {
		// chardet needs a reasonable sample; repeat short inputs.
		detectContent = bytes.Repeat(content, 1024/len(content)+1)
	}
	result, err := detector.DetectBest(detectContent)
	if err != nil {
		return "", err
	}
	return result.Charset, nil
}

func validUTF8(content []byte) bool {
	end := len(content) - 1
	switch {
	case end < 0:
		return true
	case content[end]>>5 == 0b110:
		content = content[:end]
	case end > 0 && content[end]>>6 == 0b10 && content[end-1]>>4 == 0b1110:
		content = content[:end-1]
	case end > 1 && content[end]>>6 == 0b10 && content[end-1]>>6 == 0b10 && content[end-2]>>3 == 0b11110:
		content = content[:end-2]
	}
	return utf8.Valid(content)
}

// ToUTF8 decodes content from enc. A nil enc means content is already UTF-8.
func ToUTF8(content []byte, enc encoding.Encoding) ([]byte, error) {
	if enc == nil || enc == unicode.UTF8 {
		return content, nil
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(enc.NewDecoder()), content)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return out, nil
}

// DetectToUTF8 detects the encoding of content and decodes it.
func DetectToUTF8(content []byte) ([]byte, error) {
	label, err := Detect(content)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}
	enc, err := Lookup(label)
	if err != nil {
		return nil, err
	}
	return ToUTF8(content, enc)
}

// FromUTF8 encodes UTF-8 content into enc. A nil enc leaves content as is.
func FromUTF8(content []byte, enc encoding.Encoding) ([]byte, error) {
	if enc == nil || enc == unicode.UTF8 {
		return content, nil
	}
	out, _, err := transform.Bytes(enc.NewEncoder(), content)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return out, nil
}
