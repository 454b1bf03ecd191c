package main

import (
	"os"
	"path/filepath"
	"slices"

	"shaderclouds/misc"
	"shaderclouds/sound"
	"shaderclouds/stage"
)

const (
	SampleRate    = 44100
	JukeboxVolume = 0.3
)

// AudioCues are loaded from the audio directory by name.
var AudioCues = []string{
	stage.CueDing,
	"cabin-ambience-1",
	"cabin-ambience-2",
	"cabin-ambience-3",
}

var AudioExtensions = []string{".mp3", ".ogg", ".wav"}

type cuePlayer interface {
	Play()
	Pause()
	Rewind() error
	SetVolume(volume float64)
	Close() error
}

type pendingCue struct {
	name string
	done <-chan error
}

// Jukebox plays the page's audio cues. It belongs to one App and Close
// silences everything it started.
type Jukebox struct {
	ctx *sound.Context

	newPlayer func(cue string) (cuePlayer, error)

	// nil means always ready
	ready func() bool

	players map[string]cuePlayer
	loading []pendingCue

	// cues asked to play before they finished decoding or before the
	// audio device was ready
	wanted []string
}

func NewJukebox(ctx *sound.Context) *Jukebox {
	j := &Jukebox{
		ctx:     ctx,
		players: make(map[string]cuePlayer),
		ready:   ctx.IsReady,
	}
	j.newPlayer = func(cue string) (cuePlayer, error) {
		p, err := ctx.NewPlayer(cue)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	return j
}

// Load starts decoding every cue found in dir. A missing ding is replaced
// with a synthesized chime; other missing cues stay silent.
func (j *Jukebox) Load(dir string) {
	for _, cue := range AudioCues {
		path, found := "", false

		if dir != "" {
			var err error
			path, found, err = misc.FindWithExtension(dir, cue, AudioExtensions...)
			if err != nil {
				misc.WarnLogger.Printf("looking for %s: %v", cue, err)
			}
		}

		if !found {
			if cue == stage.CueDing {
				misc.InfoLogger.Printf("no %s in %q, using a synthesized chime", cue, dir)
				j.ctx.RegisterPCM(cue, sound.Chime(j.ctx.SampleRate(), sound.SeatbeltChime))
			} else {
				misc.WarnLogger.Printf("no %s in %q, it will be silent", cue, dir)
			}
			continue
		}

		file, err := os.ReadFile(path)
		if err != nil {
			misc.WarnLogger.Printf("reading %s: %v", path, err)
			continue
		}

		j.loading = append(j.loading, pendingCue{
			name: cue,
			done: j.ctx.RegisterAudio(cue, file, filepath.Ext(path)),
		})
	}
}

// Update collects finished decodes and starts cues that were waiting on them
// or on the audio device.
func (j *Jukebox) Update() {
	j.loading = slices.DeleteFunc(j.loading, func(p pendingCue) bool {
		select {
		case err := <-p.done:
			if err != nil {
				misc.WarnLogger.Printf("%v", err)
				j.wanted = slices.DeleteFunc(j.wanted, func(c string) bool { return c == p.name })
			}
			return true
		default:
			return false
		}
	})

	if !j.isReady() {
		return
	}
	j.wanted = slices.DeleteFunc(j.wanted, func(cue string) bool {
		if j.isLoading(cue) {
			return false
		}
		j.play(cue)
		return true
	})
}

func (j *Jukebox) isReady() bool {
	return j.ready == nil || j.ready()
}

func (j *Jukebox) isLoading(cue string) bool {
	return slices.ContainsFunc(j.loading, func(p pendingCue) bool { return p.name == cue })
}

func (j *Jukebox) player(cue string) cuePlayer {
	if p, ok := j.players[cue]; ok {
		return p
	}
	if j.ctx != nil && !j.ctx.HasAudio(cue) {
		return nil
	}

	p, err := j.newPlayer(cue)
	if err != nil {
		misc.WarnLogger.Printf("%v", err)
		return nil
	}
	p.SetVolume(JukeboxVolume)
	j.players[cue] = p

	return p
}

// Play restarts cue from the beginning.
func (j *Jukebox) Play(cue string) {
	if j.isLoading(cue) || !j.isReady() {
		if !slices.Contains(j.wanted, cue) {
			j.wanted = append(j.wanted, cue)
		}
		return
	}
	j.play(cue)
}

func (j *Jukebox) play(cue string) {
	p := j.player(cue)
	if p == nil {
		return
	}
	if err := p.Rewind(); err != nil {
		misc.WarnLogger.Printf("rewinding %s: %v", cue, err)
	}
	p.Play()
}

// StopAll pauses and rewinds every cue.
func (j *Jukebox) StopAll() {
	j.wanted = j.wanted[:0]

	for cue, p := range j.players {
		p.Pause()
		if err := p.Rewind(); err != nil {
			misc.WarnLogger.Printf("rewinding %s: %v", cue, err)
		}
	}
}

// Handle applies page events.
func (j *Jukebox) Handle(events []stage.Event) {
	for _, e := range events {
		switch e.Kind {
		case stage.EventStopAudio:
			j.StopAll()
		case stage.EventPlayCue:
			j.Play(e.Cue)
		}
	}
}

// Close stops and releases every player.
func (j *Jukebox) Close() {
	j.StopAll()

	for cue, p := range j.players {
		if err := p.Close(); err != nil {
			misc.WarnLogger.Printf("closing %s: %v", cue, err)
		}
		delete(j.players, cue)
	}
}
