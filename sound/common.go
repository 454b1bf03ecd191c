package sound

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	eba "github.com/hajimehoshi/ebiten/v2/audio"
)

type decodeStream interface {
	io.ReadSeeker
	Length() int64
	SampleRate() int
}

// decodeAudio decodes an audio file into 32 bit float stereo samples at
// sampleRate, which is what eba.Context.NewPlayerF32 expects.
func decodeAudio(
	audioFile []byte,
	audioFileType string,
	sampleRate int,
) ([]byte, error) {
	var stream decodeStream
	var err error

	// NOTE: this is not a perfect way to determine the audio file type
	// since audio file can be in different container.
	//
	// But it is good enough for what we are trying to do
	switch strings.ToLower(audioFileType) {
	case ".ogg":
		stream, err = vorbis.DecodeF32(bytes.NewReader(audioFile))
	case ".wav":
		stream, err = wav.DecodeF32(bytes.NewReader(audioFile))
	case ".mp3":
		stream, err = mp3.DecodeF32(bytes.NewReader(audioFile))
	default:
		return nil, fmt.Errorf("unsupported audio type %q", audioFileType)
	}
	if err != nil {
		return nil, err
	}

	resampled := eba.ResampleF32(
		stream, stream.Length(), stream.SampleRate(), sampleRate)

	decoded, err := io.ReadAll(resampled)
	if err != nil {
		return nil, err
	}

	return decoded, nil
}
