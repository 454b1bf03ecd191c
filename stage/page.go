// Package stage holds the page level state of the cloud viewer: which tab is
// showing, the caption shown while switching, and the lighting flicker.
// Nothing here draws or plays sound; callers act on the returned events.
package stage

import (
	"fmt"
	"time"
)

const (
	CueDing = "seatbelt-ding"

	// each half of a tab switch: fade out, then fade back in
	TransitionStep = 300 * time.Millisecond
)

type Tab struct {
	Name     string
	Subtitle string
	Ambience string
}

type EventKind int

const (
	EventStopAudio EventKind = iota
	EventPlayCue
	EventActivate
)

type Event struct {
	Kind EventKind
	Cue  string
	Tab  int
}

func (e Event) String() string {
	switch e.Kind {
	case EventStopAudio:
		return "stop-audio"
	case EventPlayCue:
		return "play " + e.Cue
	case EventActivate:
		return fmt.Sprintf("activate %d", e.Tab)
	}
	return fmt.Sprintf("Event(%d)", int(e.Kind))
}

type phase int

const (
	phaseIdle phase = iota
	phaseLeaving
	phaseArriving
)

type Page struct {
	tabs []Tab

	active int
	target int

	phase phase
	timer Timer

	caption  string
	subtitle string
}

func NewPage(tabs []Tab) *Page {
	return &Page{tabs: tabs}
}

func (p *Page) Tabs() []Tab { return p.tabs }

func (p *Page) Active() int { return p.active }

func (p *Page) Transitioning() bool { return p.phase != phaseIdle }

// Caption returns the transition title and subtitle, empty when idle.
func (p *Page) Caption() (string, string) { return p.caption, p.subtitle }

// Open returns the events for the initial tab's ambience.
func (p *Page) Open() []Event {
	if len(p.tabs) == 0 {
		return nil
	}
	return p.cue(p.tabs[p.active].Ambience)
}

func (p *Page) cue(name string) []Event {
	if name == "" {
		return nil
	}
	return []Event{{Kind: EventPlayCue, Cue: name}}
}

// Select starts a switch to tab i. Selecting again mid switch restarts the
// switch toward the newer tab.
func (p *Page) Select(i int) []Event {
	if i < 0 || i >= len(p.tabs) {
		return nil
	}

	p.target = i
	p.phase = phaseLeaving
	p.timer = Timer{Duration: TransitionStep}
	p.caption = "TO " + p.tabs[i].Name
	p.subtitle = p.tabs[i].Subtitle

	events := []Event{{Kind: EventStopAudio}}
	return append(events, p.cue(CueDing)...)
}

func (p *Page) Update(dt time.Duration) []Event {
	var events []Event

	for dt > 0 && p.phase != phaseIdle {
		left := p.timer.Duration - p.timer.Current
		step := min(dt, left)
		p.timer.TickUp(step)
		dt -= step

		if !p.timer.Done() {
			break
		}

		switch p.phase {
		case phaseLeaving:
			p.active = p.target
			events = append(events, Event{Kind: EventActivate, Tab: p.active})
			events = append(events, p.cue(p.tabs[p.active].Ambience)...)
			p.phase = phaseArriving
			p.timer = Timer{Duration: TransitionStep}

		case phaseArriving:
			p.phase = phaseIdle
			p.caption = ""
			p.subtitle = ""
		}
	}

	return events
}

// Jump shows tab i right away, cancelling any switch in progress. It emits
// no events.
func (p *Page) Jump(i int) bool {
	if i < 0 || i >= len(p.tabs) {
		return false
	}

	p.active = i
	p.target = i
	p.phase = phaseIdle
	p.caption = ""
	p.subtitle = ""

	return true
}
