package ttsfeature

import (
	"context"
	"fmt"
	"strings"

	"github.com/wujunwei928/edge-tts-go/edge_tts"
)

// Microsoft Edge online TTS. The voice is chosen by lang, see edgeVoices.
type EdgeTts struct {
}

func (e *EdgeTts) Synthesize(ctx context.Context, text string, lang string) ([]byte, error) {
	voice, ok := resolveLang(edgeVoices, lang)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLang, lang)
	}
	if isPunctuationOnly(strings.TrimSpace(text)) {
		return nil, ErrNoText
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	connOptions := []edge_tts.CommunicateOption{
		edge_tts.SetVoice(voice),
		edge_tts.SetRate("+0%"),
		edge_tts.SetVolume("+0%"),
		edge_tts.SetPitch("+0Hz"),
		edge_tts.SetReceiveTimeout(20),
	}

	conn, err := edge_tts.NewCommunicate(
		text,
		connOptions...,
	)
	if err != nil {
		return nil, err
	}
	return conn.Stream()
}

var _ Synthesizer = (*EdgeTts)(nil)
