package ttsfeature

import (
	"strings"
	"unicode"
)

// Max length (in runes) of text in a single Google Translate TTS request.
const MaxChunkLength = 100

const (
	// Split after them, they are kept as they change the intonation.
	toneMarks = "?!？！"
	// Split at them, and drop them.
	otherPunctuation = "¡()[]¿…‥،;—。，、：\n"
	allPunctuation   = toneMarks + otherPunctuation + ".,:"
)

// Tokenize splits text into chunks at most maxLength runes each, the way Google Translate TTS expects:
//  1. Hyphenated line breaks are joined.
//  2. Text is split at punctuation. "." and "," split only when followed by space (not in "3.14" or "e.g. "),
//     ":" does not split between digits ("12:30").
//  3. Blank and punctuation-only tokens are dropped.
//  4. Tokens longer than maxLength are split at the last space before the limit, or hard cut if none.
func Tokenize(text string, maxLength int) (chunks []string) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "-\n", "")
	runes := []rune(text)
	var tokens []string
	start := 0
	cut := func(end, next int) {
		tokens = append(tokens, string(runes[start:end]))
		start = next
	}
	for i, r := range runes {
		switch {
		case strings.ContainsRune(toneMarks, r):
			cut(i+1, i+1)
		case r == '.' || r == ',':
			if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
				continue
			}
			if i >= 2 && runes[i-2] == '.' && unicode.IsLetter(runes[i-1]) {
				continue
			}
			cut(i, i+1)
		case r == ':':
			if i > 0 && i+1 < len(runes) && unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1]) {
				continue
			}
			cut(i, i+1)
		case strings.ContainsRune(otherPunctuation, r):
			cut(i, i+1)
		}
	}
	tokens = append(tokens, string(runes[start:]))

	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if isPunctuationOnly(token) {
			continue
		}
		chunks = append(chunks, minimize(token, maxLength)...)
	}
	return chunks
}

// Blank string is also considered punctuation only.
func isPunctuationOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsPunct(r) && !unicode.IsSpace(r) && !strings.ContainsRune(allPunctuation, r) {
			return false
		}
	}
	return true
}

func minimize(s string, maxLength int) (chunks []string) {
	for {
		s = strings.TrimLeft(s, " ")
		runes := []rune(s)
		if len(runes) <= maxLength {
			if s != "" {
				chunks = append(chunks, s)
			}
			return chunks
		}
		idx := maxLength
		for j := maxLength - 1; j > 0; j-- {
			if runes[j] == ' ' {
				idx = j
				break
			}
		}
		chunks = append(chunks, string(runes[:idx]))
		s = string(runes[idx:])
	}
}
