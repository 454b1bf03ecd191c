package sound

import (
	"bytes"
	"fmt"
	"sync"

	eba "github.com/hajimehoshi/ebiten/v2/audio"
)

// Context owns the decoded audio and the ebiten audio context.
// Only one Context may exist per process.
type Context struct {
	sampleRate int
	context    *eba.Context

	audioMap     map[string][]byte
	audioMapLock sync.Mutex
}

func NewContext(sampleRate int) *Context {
	c := new(Context)
	c.sampleRate = sampleRate
	c.audioMap = make(map[string][]byte)

	if ctx := eba.CurrentContext(); ctx != nil {
		c.context = ctx
	} else {
		c.context = eba.NewContext(sampleRate)
	}

	return c
}

func (c *Context) SampleRate() int {
	return c.sampleRate
}

// IsReady reports whether the audio device is running. On browsers it waits
// for the first user gesture.
func (c *Context) IsReady() bool {
	return c.context.IsReady()
}

// RegisterAudio decodes audioFile in the background. The returned channel
// receives exactly one value and is then closed.
func (c *Context) RegisterAudio(
	audioName string,
	audioFile []byte,
	audioFileType string,
) <-chan error {
	errChan := make(chan error, 1)

	go func() {
		defer close(errChan)

		decoded, err := decodeAudio(audioFile, audioFileType, c.SampleRate())
		if err != nil {
			errChan <- fmt.Errorf("decoding %s: %w", audioName, err)
			return
		}

		c.RegisterPCM(audioName, decoded)
		errChan <- nil
	}()

	return errChan
}

// RegisterPCM stores already decoded 32 bit float stereo samples.
func (c *Context) RegisterPCM(audioName string, pcm []byte) {
	c.audioMapLock.Lock()
	c.audioMap[audioName] = pcm
	c.audioMapLock.Unlock()
}

func (c *Context) HasAudio(audioName string) bool {
	c.audioMapLock.Lock()
	defer c.audioMapLock.Unlock()

	_, ok := c.audioMap[audioName]
	return ok
}

func (c *Context) NewPlayer(audioName string) (*Player, error) {
	c.audioMapLock.Lock()
	audioBytes, ok := c.audioMap[audioName]
	c.audioMapLock.Unlock()

	if !ok {
		return nil, fmt.Errorf("audio %q is not registered", audioName)
	}

	p := new(Player)
	var err error
	p.player, err = c.context.NewPlayerF32(bytes.NewReader(audioBytes))
	if err != nil {
		return nil, fmt.Errorf("NewPlayer failed for %s: %w", audioName, err)
	}

	p.sampleRate = c.SampleRate()

	return p, nil
}

type Player struct {
	player     *eba.Player
	sampleRate int
}

func (p *Player) Pause() {
	p.player.Pause()
}

func (p *Player) Play() {
	p.player.Play()
}

// Rewind moves the player back to the start without resuming it.
func (p *Player) Rewind() error {
	return p.player.SetPosition(0)
}

func (p *Player) SetVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	p.player.SetVolume(volume)
}

// Close releases the player. It cannot be played again.
func (p *Player) Close() error {
	return p.player.Close()
}
