package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagan/gtts-synthesize/constants"
	"github.com/sagan/gtts-synthesize/features/ttsfeature"
)

type fakeSynthesizer struct {
	audio []byte
	err   error
	texts []string
	langs []string
}

func (f *fakeSynthesizer) Synthesize(ctx context.Context, text string, lang string) ([]byte, error) {
	f.texts = append(f.texts, text)
	f.langs = append(f.langs, lang)
	return f.audio, f.err
}

// setup isolates env and temp dir, and returns the temp dir generated files go to.
func setup(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" || runtime.GOOS == "plan9" {
		t.Skip("os.TempDir does not use TMPDIR on " + runtime.GOOS)
	}
	tmpdir := t.TempDir()
	t.Setenv("TMPDIR", tmpdir)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(constants.ENV_CONFIG, "")
	t.Setenv(constants.ENV_ENGINE, "")
	t.Setenv(constants.ENV_GOOGLE_URL, "")
	t.Setenv(constants.ENV_LOG_LEVEL, "")
	return tmpdir
}

// useFake replaces the synthesizer factory and records requested engines.
func useFake(t *testing.T, fake *fakeSynthesizer) *[]string {
	t.Helper()
	engines := []string{}
	original := newSynthesizer
	newSynthesizer = func(engine string, options ttsfeature.Options) (ttsfeature.Synthesizer, error) {
		engines = append(engines, engine)
		return fake, nil
	}
	t.Cleanup(func() { newSynthesizer = original })
	return &engines
}

func run(args []string, stdin io.Reader) (code int, stdout string, stderr string) {
	var outBuf, errBuf bytes.Buffer
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	code = Run(args, stdin, &outBuf, &errBuf)
	return code, outBuf.String(), errBuf.String()
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := []string{}
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}

func TestUsage(t *testing.T) {
	tmpdir := setup(t)
	fake := &fakeSynthesizer{audio: []byte("audio")}
	useFake(t, fake)

	for _, args := range [][]string{{}, {"hello"}} {
		code, stdout, stderr := run(args, nil)
		assert.Equal(t, 1, code)
		assert.Empty(t, stdout)
		assert.Equal(t, "Usage: "+filepath.Base(os.Args[0])+" <text> <lang>\n", stderr)
	}
	assert.Empty(t, fake.texts)
	assert.Empty(t, listDir(t, tmpdir))
}

func TestSuccess(t *testing.T) {
	tmpdir := setup(t)
	audio := []byte("ID3\x04\x00\x00\xff\xfbaudio-bytes")
	fake := &fakeSynthesizer{audio: audio}
	engines := useFake(t, fake)

	code, stdout, stderr := run([]string{"hello", "en"}, nil)
	require.Equal(t, 0, code, stderr)
	assert.Empty(t, stderr)
	assert.Equal(t, []string{"hello"}, fake.texts)
	assert.Equal(t, []string{"en"}, fake.langs)
	assert.Equal(t, []string{constants.DEFAULT_TTS}, *engines)

	require.True(t, strings.HasSuffix(stdout, "\n"))
	filename := strings.TrimSuffix(stdout, "\n")
	assert.NotContains(t, filename, "\n")
	assert.True(t, filepath.IsAbs(filename))
	assert.Equal(t, tmpdir, filepath.Dir(filename))
	assert.Equal(t, ".mp3", filepath.Ext(filename))
	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, audio, data)
}

func TestDistinctFiles(t *testing.T) {
	tmpdir := setup(t)
	useFake(t, &fakeSynthesizer{audio: []byte("audio")})

	code, first, _ := run([]string{"hello", "en"}, nil)
	require.Equal(t, 0, code)
	code, second, _ := run([]string{"hello", "en"}, nil)
	require.Equal(t, 0, code)
	assert.NotEqual(t, first, second)
	assert.Len(t, listDir(t, tmpdir), 2)
}

func TestExtraArgsIgnored(t *testing.T) {
	setup(t)
	fake := &fakeSynthesizer{audio: []byte("audio")}
	useFake(t, fake)

	code, stdout, _ := run([]string{"hello", "en", "extra"}, nil)
	assert.Equal(t, 0, code)
	assert.NotEmpty(t, stdout)
	assert.Equal(t, []string{"en"}, fake.langs)
}

func TestDashText(t *testing.T) {
	testcases := []struct {
		name     string
		args     []string
		wantText string
	}{
		{"suffix", []string{"-ing", "en"}, "-ing"},
		{"negative number", []string{"-5 degrees", "en"}, "-5 degrees"},
		{"flag shorthand", []string{"-e", "en"}, "-e"},
		{"flag name", []string{"--config", "en"}, "--config"},
		{"help", []string{"--help", "en"}, "--help"},
		{"end of flags", []string{"--", "--help", "en"}, "--help"},
		{"after flag", []string{"-e", constants.TTS_EDGE, "-ing", "en"}, "-ing"},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			setup(t)
			fake := &fakeSynthesizer{audio: []byte("audio")}
			useFake(t, fake)

			code, stdout, stderr := run(tc.args, nil)
			require.Equal(t, 0, code, stderr)
			assert.Empty(t, stderr)
			assert.True(t, filepath.IsAbs(strings.TrimSuffix(stdout, "\n")), stdout)
			assert.Equal(t, 1, strings.Count(stdout, "\n"))
			assert.Equal(t, []string{tc.wantText}, fake.texts)
			assert.Equal(t, []string{"en"}, fake.langs)
		})
	}
}

func TestHelp(t *testing.T) {
	tmpdir := setup(t)
	fake := &fakeSynthesizer{audio: []byte("audio")}
	useFake(t, fake)

	for _, arg := range []string{"-h", "--help"} {
		code, stdout, stderr := run([]string{arg}, nil)
		assert.Equal(t, 1, code)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "--engine")
		assert.True(t, strings.HasSuffix(stderr, "Usage: "+filepath.Base(os.Args[0])+" <text> <lang>\n"), stderr)
	}
	assert.Empty(t, fake.texts)
	assert.Empty(t, listDir(t, tmpdir))
}

func TestProviderFailure(t *testing.T) {
	tmpdir := setup(t)
	useFake(t, &fakeSynthesizer{err: errors.New("Language not supported: xx-not-a-real-code")})

	code, stdout, stderr := run([]string{"hello", "xx-not-a-real-code"}, nil)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Equal(t, "Error: Language not supported: xx-not-a-real-code\n", stderr)
	assert.Empty(t, listDir(t, tmpdir))
}

func TestEngineFlag(t *testing.T) {
	setup(t)
	engines := useFake(t, &fakeSynthesizer{audio: []byte("audio")})

	code, _, stderr := run([]string{"--engine", constants.TTS_EDGE, "hello", "en"}, nil)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, []string{constants.TTS_EDGE}, *engines)

	code, _, stderr = run([]string{"--engine=" + constants.TTS_GOOGLE, "hello", "en"}, nil)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, []string{constants.TTS_EDGE, constants.TTS_GOOGLE}, *engines)

	t.Setenv(constants.ENV_ENGINE, constants.TTS_EDGE)
	code, _, stderr = run([]string{"hello", "en"}, nil)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, []string{constants.TTS_EDGE, constants.TTS_GOOGLE, constants.TTS_EDGE}, *engines)
}

func TestUnsupportedEngine(t *testing.T) {
	tmpdir := setup(t)

	code, stdout, stderr := run([]string{"-e", "bogus", "hello", "en"}, nil)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.True(t, strings.HasPrefix(stderr, "Error: unsupported tts engine"), stderr)
	assert.Empty(t, listDir(t, tmpdir))
}

func TestInvalidLogLevel(t *testing.T) {
	setup(t)
	useFake(t, &fakeSynthesizer{audio: []byte("audio")})

	code, stdout, stderr := run([]string{"--log-level", "loud", "hello", "en"}, nil)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.True(t, strings.HasPrefix(stderr, "Error: "), stderr)
}

func TestStdinText(t *testing.T) {
	setup(t)
	fake := &fakeSynthesizer{audio: []byte("audio")}
	useFake(t, fake)

	code, stdout, stderr := run([]string{"-", "en"}, strings.NewReader("\xEF\xBB\xBF  hello\u200b from stdin\x00 \r\n"))
	require.Equal(t, 0, code, stderr)
	assert.NotEmpty(t, stdout)
	assert.Equal(t, []string{"hello from stdin"}, fake.texts)
}

func TestGoogleEndToEnd(t *testing.T) {
	tmpdir := setup(t)
	audio := []byte("ID3\x04\x00\x00google-audio\xff\xfb")
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "hello", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write(audio)
	}))
	t.Cleanup(server.Close)
	t.Setenv(constants.ENV_GOOGLE_URL, server.URL)

	code, stdout, stderr := run([]string{"hello", "en"}, nil)
	require.Equal(t, 0, code, stderr)
	assert.Empty(t, stderr)
	data, err := os.ReadFile(strings.TrimSpace(stdout))
	require.NoError(t, err)
	assert.Equal(t, audio, data)

	code, stdout, stderr = run([]string{"hello", "xx-not-a-real-code"}, nil)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Equal(t, "Error: Language not supported: xx-not-a-real-code\n", stderr)
	assert.Equal(t, 1, requests)
	assert.Len(t, listDir(t, tmpdir), 1)
}
