package scene

import (
	"fmt"
	"strconv"
	"strings"
)

// Event is a discrete user command applied between frames. Applying an event
// twice has the same effect as applying it once, except for the toggles and
// the speed and zoom steps, which clamp at their limits.
type Event int

const (
	EventPause Event = iota
	EventSpeedUp
	EventSpeedDown
	EventToggleMode
	EventZoomIn
	EventZoomOut
	EventExit
	EventResume
	// EventTogglePause flips between paused and running. The space key uses it.
	EventTogglePause
)

var eventNames = map[Event]string{
	EventPause:       "pause",
	EventSpeedUp:     "faster",
	EventSpeedDown:   "slower",
	EventToggleMode:  "mode",
	EventZoomIn:      "zoom-in",
	EventZoomOut:     "zoom-out",
	EventExit:        "exit",
	EventResume:      "resume",
	EventTogglePause: "toggle-pause",
}

func (e Event) String() string {
	if n, ok := eventNames[e]; ok {
		return n
	}
	return fmt.Sprintf("Event(%d)", int(e))
}

// ParseEvent is the inverse of Event.String.
func ParseEvent(name string) (Event, error) {
	for e, n := range eventNames {
		if n == name {
			return e, nil
		}
	}
	return 0, fmt.Errorf("unknown event %q", name)
}

// Script replays events at fixed frame numbers. It implements Input.
type Script struct {
	events map[int][]Event
	frame  int
}

// ParseScript reads a comma separated list of frame:event pairs, for example
// "30:mode,90:pause,120:resume".
func ParseScript(s string) (*Script, error) {
	sc := &Script{events: map[int][]Event{}}
	s = strings.TrimSpace(s)
	if s == "" {
		return sc, nil
	}
	for _, part := range strings.Split(s, ",") {
		frameStr, name, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("script entry %q: want frame:event", part)
		}
		frame, err := strconv.Atoi(frameStr)
		if err != nil || frame < 0 {
			return nil, fmt.Errorf("script entry %q: bad frame number", part)
		}
		ev, err := ParseEvent(name)
		if err != nil {
			return nil, fmt.Errorf("script entry %q: %w", part, err)
		}
		sc.events[frame] = append(sc.events[frame], ev)
	}
	return sc, nil
}

// Poll returns the events scheduled for the next frame.
func (s *Script) Poll() []Event {
	evs := s.events[s.frame]
	s.frame++
	return evs
}
