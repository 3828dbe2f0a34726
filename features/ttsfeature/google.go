package ttsfeature

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"

	"github.com/sagan/gtts-synthesize/constants"
	"github.com/sagan/gtts-synthesize/util"
)

const (
	googleUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	googleReferer = "http://translate.google.com/"
)

// Google Translate public TTS api, e.g. :
// http://translate.google.com/translate_tts?ie=UTF-8&q=bonjour&client=tw-ob&tl=fr .
// The api accepts at most MaxChunkLength chars per request, longer text is
// requested chunk by chunk and the mp3 responses are concatenated.
type GoogleTts struct {
	BaseUrl string // default constants.DEFAULT_GOOGLE_URL
	Client  *http.Client
}

// StatusError is returned when TTS api responds with a non-200 status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	var cause string
	switch {
	case e.StatusCode == http.StatusForbidden:
		cause = "Bad token or upstream API changes"
	case e.StatusCode == http.StatusNotFound:
		cause = "Unsupported TTS endpoint"
	case e.StatusCode == http.StatusTooManyRequests:
		cause = "Too many requests from your IP"
	case e.StatusCode >= 500:
		cause = "Upstream API error. Try again later"
	default:
		cause = "Unknown"
	}
	return fmt.Sprintf("%d (%s) from TTS API. Probable cause: %s", e.StatusCode, http.StatusText(e.StatusCode), cause)
}

func (g *GoogleTts) Synthesize(ctx context.Context, text string, lang string) ([]byte, error) {
	tl, ok := resolveLang(googleLangs, lang)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLang, lang)
	}
	chunks := Tokenize(text, MaxChunkLength)
	if len(chunks) == 0 {
		return nil, ErrNoText
	}
	var audio bytes.Buffer
	for i, chunk := range chunks {
		log.Tracef("google tts: request chunk %d/%d: %q", i+1, len(chunks), chunk)
		req, err := g.newRequest(ctx, chunk, tl, i, len(chunks))
		if err != nil {
			return nil, err
		}
		if err = g.fetch(req, &audio); err != nil {
			return nil, err
		}
	}
	return audio.Bytes(), nil
}

func (g *GoogleTts) newRequest(ctx context.Context, chunk, tl string, idx, total int) (*http.Request, error) {
	baseUrl := g.BaseUrl
	if baseUrl == "" {
		baseUrl = constants.DEFAULT_GOOGLE_URL
	}
	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("q", chunk)
	params.Set("tl", tl)
	params.Set("total", strconv.Itoa(total))
	params.Set("idx", strconv.Itoa(idx))
	params.Set("textlen", strconv.Itoa(utf8.RuneCountInString(chunk)))
	params.Set("client", "tw-ob")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		strings.TrimSuffix(baseUrl, "/")+"/translate_tts?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", googleUserAgent)
	req.Header.Set("Referer", googleReferer)
	return req, nil
}

// Do req and append response audio to output.
func (g *GoogleTts) fetch(req *http.Request, output *bytes.Buffer) error {
	client := g.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &StatusError{StatusCode: resp.StatusCode}
	}
	contentType := resp.Header.Get("Content-Type")
	switch util.MediaType(contentType) {
	case "", constants.MIME_MP3, constants.MIME_BINARY:
	default:
		return fmt.Errorf("malformed response from TTS API: unexpected content type %q", contentType)
	}
	n, err := io.Copy(output, resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read TTS API response: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("malformed response from TTS API: empty audio")
	}
	return nil
}

var _ Synthesizer = (*GoogleTts)(nil)
