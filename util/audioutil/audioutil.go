package audioutil

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/hajimehoshi/go-mp3"
)

// Mp3Info is basic stream info of a mp3 audio.
type Mp3Info struct {
	SampleRate int
	// Zero if unknown.
	Duration time.Duration
}

func (i *Mp3Info) String() string {
	return fmt.Sprintf("sampleRate=%d, duration=%s", i.SampleRate, i.Duration)
}

// Probe decodes the headers of a mp3 audio. data is never modified.
// go-mp3 always decodes to 16-bit stereo PCM, so each sample frame is 4 bytes.
func Probe(data []byte) (*Mp3Info, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty audio")
	}
	decoder, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("not a valid mp3 audio (sniffed %s): %w", http.DetectContentType(data), err)
	}
	info := &Mp3Info{SampleRate: decoder.SampleRate()}
	if length := decoder.Length(); length > 0 && info.SampleRate > 0 {
		info.Duration = time.Duration(length) * time.Second / time.Duration(4*info.SampleRate)
	}
	return info, nil
}
