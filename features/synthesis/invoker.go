package synthesis

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	log "github.com/sirupsen/logrus"

	"github.com/sagan/gtts-synthesize/constants"
	"github.com/sagan/gtts-synthesize/features/ttsfeature"
	"github.com/sagan/gtts-synthesize/util/audioutil"
	"github.com/sagan/gtts-synthesize/util/stringutil"
)

// Invoker synthesizes text into a newly created temp mp3 file.
// The file is never deleted by Invoker once written, the caller owns it.
type Invoker struct {
	Synthesizer ttsfeature.Synthesizer
	Dir         string // dir of created files. Default to os.TempDir()
}

func NewInvoker(synthesizer ttsfeature.Synthesizer) *Invoker {
	return &Invoker{Synthesizer: synthesizer}
}

// Synthesize text in lang and return the absolute path of written audio file.
// No file is left on failure.
func (iv *Invoker) Synthesize(ctx context.Context, text string, lang string) (filename string, err error) {
	log.Debugf("synthesize lang=%s, text=%s", lang, stringutil.Ellipsis(stringutil.ReplaceNewLinesWithSpace(text), 60))
	audio, err := iv.Synthesizer.Synthesize(ctx, text, lang)
	if err != nil {
		return "", &Error{Kind: KindProvider, Err: err}
	}
	if len(audio) == 0 {
		return "", &Error{Kind: KindProvider, Err: errors.New("provider returned empty audio")}
	}
	if log.IsLevelEnabled(log.DebugLevel) {
		if info, err := audioutil.Probe(audio); err != nil {
			log.Debugf("failed to probe audio (%d bytes): %v", len(audio), err)
		} else {
			log.Debugf("audio: %d bytes, %s", len(audio), info)
		}
	}

	filename, err = iv.reserve()
	if err != nil {
		return "", &Error{Kind: KindIO, Err: err}
	}
	if err = atomic.WriteFile(filename, bytes.NewReader(audio)); err != nil {
		if rmErr := os.Remove(filename); rmErr != nil {
			log.Warnf("failed to remove %q: %v", filename, rmErr)
		}
		return "", &Error{Kind: KindIO, Err: fmt.Errorf("failed to write audio file: %w", err)}
	}
	log.Debugf("audio saved to %s", filename)
	return filename, nil
}

// Create a new unique empty file and return it's absolute path.
func (iv *Invoker) reserve() (string, error) {
	file, err := os.CreateTemp(iv.Dir, constants.TEMP_PATTERN)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	filename := file.Name()
	if err = file.Close(); err != nil {
		os.Remove(filename)
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	if absFilename, err := filepath.Abs(filename); err == nil {
		filename = absFilename
	}
	return filename, nil
}
