package ttsfeature

import (
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

// Languages accepted by Google Translate TTS. Key: lower-case code; Value: code sent as "tl" param.
var googleLangs = lowerKeys(map[string]string{
	"af": "Afrikaans", "am": "Amharic", "ar": "Arabic", "bg": "Bulgarian", "bn": "Bengali",
	"bs": "Bosnian", "ca": "Catalan", "cs": "Czech", "cy": "Welsh", "da": "Danish",
	"de": "German", "el": "Greek", "en": "English", "es": "Spanish", "et": "Estonian",
	"eu": "Basque", "fi": "Finnish", "fr": "French", "fr-CA": "French (Canada)", "gl": "Galician",
	"gu": "Gujarati", "ha": "Hausa", "hi": "Hindi", "hr": "Croatian", "hu": "Hungarian",
	"id": "Indonesian", "is": "Icelandic", "it": "Italian", "iw": "Hebrew", "ja": "Japanese",
	"jw": "Javanese", "km": "Khmer", "kn": "Kannada", "ko": "Korean", "la": "Latin",
	"lt": "Lithuanian", "lv": "Latvian", "ml": "Malayalam", "mr": "Marathi", "ms": "Malay",
	"my": "Myanmar (Burmese)", "ne": "Nepali", "nl": "Dutch", "no": "Norwegian", "pa": "Punjabi (Gurmukhi)",
	"pl": "Polish", "pt": "Portuguese (Brazil)", "pt-PT": "Portuguese (Portugal)", "ro": "Romanian", "ru": "Russian",
	"si": "Sinhala", "sk": "Slovak", "sq": "Albanian", "sr": "Serbian", "su": "Sundanese",
	"sv": "Swedish", "sw": "Swahili", "ta": "Tamil", "te": "Telugu", "th": "Thai",
	"tl": "Filipino", "tr": "Turkish", "uk": "Ukrainian", "ur": "Urdu", "vi": "Vietnamese",
	"yue": "Cantonese", "zh-CN": "Chinese (Simplified)", "zh-TW": "Chinese (Mandarin/Taiwan)", "zh": "Chinese (Mandarin)",
}, true)

// https://github.com/rany2/edge-tts
// edge-tts --list-voices
// Choose: 1. female only. 2. multilingual version first.
var edgeVoices = lowerKeys(map[string]string{
	"en":    "en-US-AvaMultilingualNeural",
	"ja":    "ja-JP-NanamiNeural",
	"fr":    "fr-FR-VivienneMultilingualNeural",
	"de":    "de-DE-SeraphinaMultilingualNeural",
	"es":    "es-ES-XimenaNeural",
	"it":    "it-IT-ElsaNeural",
	"nl":    "nl-NL-ColetteNeural",
	"pl":    "pl-PL-ZofiaNeural",
	"pt":    "pt-PT-RaquelNeural",
	"ko":    "ko-KR-SunHiNeural",
	"ru":    "ru-RU-SvetlanaNeural",
	"uk":    "uk-UA-PolinaNeural",
	"tr":    "tr-TR-EmelNeural",
	"ar":    "ar-EG-SalmaNeural",
	"hi":    "hi-IN-SwaraNeural",
	"vi":    "vi-VN-HoaiMyNeural",
	"id":    "id-ID-GadisNeural",
	"sv":    "sv-SE-SofieNeural",
	"zh-tw": "zh-TW-HsiaoChenNeural",
	"zh":    "zh-CN-XiaoxiaoNeural",
	"zh-cn": "zh-CN-XiaoxiaoNeural",
	"cht":   "zh-TW-HsiaoChenNeural",
	"chs":   "zh-CN-XiaoxiaoNeural",
}, false)

// Return a copy of m with lower-cased keys. If keyAsValue, the values are replaced with original keys.
func lowerKeys(m map[string]string, keyAsValue bool) map[string]string {
	result := make(map[string]string, len(m))
	for k, v := range m {
		if keyAsValue {
			v = k
		}
		result[strings.ToLower(k)] = v
	}
	return result
}

// Look up lang in table (case insensitive).
// If not found, lang is parsed as a BCP 47 tag and it's base language is used instead, e.g. "en-GB" => "en".
func resolveLang(table map[string]string, lang string) (string, bool) {
	if value, ok := table[strings.ToLower(lang)]; ok {
		return value, true
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return "", false
	}
	base, confidence := tag.Base()
	if confidence != language.Exact {
		return "", false
	}
	if value, ok := table[base.String()]; ok {
		log.Debugf("lang %q not supported, fallback to %q", lang, base.String())
		return value, true
	}
	return "", false
}
