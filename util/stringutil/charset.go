package stringutil

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	unicodeEncoding "golang.org/x/text/encoding/unicode"
)

var (
	ErrSeemsInvalid = fmt.Errorf("input seems not a valid string of specified charset")
)

// Minimal chardet confidence [0-100] to accept a detected charset.
const CharsetDetectionThreshold = 50

// Key: IANA charset name (case sensitive) used by chardet.
var encodings = map[string]encoding.Encoding{
	"GB-18030":    simplifiedchinese.GB18030,
	"Big5":        traditionalchinese.Big5,
	"EUC-JP":      japanese.EUCJP, // GBK text is easily misdetected as EUC-JP.
	"ISO-2022-JP": japanese.ISO2022JP,
	"Shift_JIS":   japanese.ShiftJIS,
	"EUC-KR":      korean.EUCKR,
	"UTF-16BE":    unicodeEncoding.UTF16(unicodeEncoding.BigEndian, unicodeEncoding.IgnoreBOM),
	"UTF-16LE":    unicodeEncoding.UTF16(unicodeEncoding.LittleEndian, unicodeEncoding.IgnoreBOM),
}

func DecodeText(input []byte, charset string, force bool) ([]byte, error) {
	if charset == "UTF-8" {
		if !force && strings.ContainsRune(string(input), '�') {
			return input, ErrSeemsInvalid
		}
		return input, nil
	}
	if enc, ok := encodings[charset]; ok {
		output, err := enc.NewDecoder().Bytes(input)
		if !force && strings.ContainsRune(string(output), '�') { // U+FFFD, unicode REPLACEMENT CHARACTER
			return output, ErrSeemsInvalid
		}
		return output, err
	}
	return nil, fmt.Errorf("unsupported charset %s", charset)
}

// ReadText reads all of input and returns it as canonical UTF-8 text (see StringFromBytes).
// Input that is not valid UTF-8 is decoded using the charset guessed by chardet.
func ReadText(input io.Reader) (string, error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		detector := chardet.NewTextDetector()
		charset, err := detector.DetectBest(data)
		if err != nil || charset.Confidence < CharsetDetectionThreshold {
			return "", fmt.Errorf("can not get text encoding: guess=%v, err=%v", charset, err)
		}
		data, err = DecodeText(data, charset.Charset, false)
		if err != nil {
			return "", fmt.Errorf("failed to decode text as %s: %w", charset.Charset, err)
		}
	}
	return StringFromBytes(data), nil
}
