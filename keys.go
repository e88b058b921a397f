package main

import "github.com/geofpwhite/starcube/internal/scene"

const esc = 0x1b

var keyEvents = map[byte]scene.Event{
	' ': scene.EventTogglePause,
	'+': scene.EventSpeedUp,
	'=': scene.EventSpeedUp,
	'-': scene.EventSpeedDown,
	'w': scene.EventToggleMode,
	'W': scene.EventToggleMode,
	'a': scene.EventZoomIn,
	'A': scene.EventZoomIn,
	'z': scene.EventZoomOut,
	'Z': scene.EventZoomOut,
	'q': scene.EventExit,
	'Q': scene.EventExit,
	3:   scene.EventExit, // ctrl-c
}

// final bytes of the cursor key sequences ESC [ A and ESC [ B
var arrowEvents = map[byte]scene.Event{
	'A': scene.EventSpeedUp,
	'B': scene.EventSpeedDown,
}

// parseKeys turns the bytes read from the terminal this frame into events.
// Escape sequences other than the up and down arrows, mouse reports included,
// are skipped. A lone ESC exits.
func parseKeys(data []byte) []scene.Event {
	var evs []scene.Event
	for i := 0; i < len(data); i++ {
		b := data[i]
		if b != esc {
			if ev, ok := keyEvents[b]; ok {
				evs = append(evs, ev)
			}
			continue
		}
		if i+1 >= len(data) || (data[i+1] != '[' && data[i+1] != 'O') {
			evs = append(evs, scene.EventExit)
			continue
		}
		j := i + 2
		for j < len(data) && (data[j] < 0x40 || data[j] > 0x7e) {
			j++
		}
		if j < len(data) && j == i+2 {
			if ev, ok := arrowEvents[data[j]]; ok {
				evs = append(evs, ev)
			}
			// X10 mouse report: ESC [ M followed by three raw bytes
			if data[j] == 'M' && data[i+1] == '[' {
				j += 3
			}
		}
		i = j
	}
	return evs
}
