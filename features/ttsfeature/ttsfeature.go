package ttsfeature

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sagan/gtts-synthesize/constants"
	"github.com/sagan/gtts-synthesize/util"
)

var (
	ErrUnsupportedLang = errors.New("Language not supported")
	ErrNoText          = errors.New("No text to speak")
)

type Synthesizer interface {
	// Synthesize text in lang and return the encoded (mp3) audio.
	Synthesize(ctx context.Context, text string, lang string) ([]byte, error)
}

type Options struct {
	GoogleUrl string       // Google Translate TTS endpoint base url
	Client    *http.Client // http client of online engines. Default to http.DefaultClient
}

var engines = map[string]func(options Options) Synthesizer{
	constants.TTS_GOOGLE: func(options Options) Synthesizer {
		return &GoogleTts{
			BaseUrl: options.GoogleUrl,
			Client:  options.Client,
		}
	},
	constants.TTS_EDGE: func(Options) Synthesizer {
		return &EdgeTts{}
	},
}

func NewSynthesizer(engine string, options Options) (Synthesizer, error) {
	if engine == "" {
		engine = constants.DEFAULT_TTS
	}
	newFunc, ok := engines[engine]
	if !ok {
		return nil, fmt.Errorf("unsupported tts engine %q. Supported: %s",
			engine, strings.Join(util.Keys(engines), ", "))
	}
	return newFunc(options), nil
}
