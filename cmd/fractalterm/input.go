// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"sync"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/fractal"
)

// defaultHold is how long a key press counts as held. Terminals report
// presses and auto-repeats but no releases.
const defaultHold = 150 * time.Millisecond

var runeActions = map[rune]fractal.Action{
	'a': fractal.PanLeft,
	'd': fractal.PanRight,
	'w': fractal.PanUp,
	's': fractal.PanDown,
	'x': fractal.Screenshot,
	'q': fractal.Quit,
}

var keyActions = map[tcell.Key]fractal.Action{
	tcell.KeyUp:     fractal.ZoomIn,
	tcell.KeyDown:   fractal.ZoomOut,
	tcell.KeyLeft:   fractal.IterDown,
	tcell.KeyRight:  fractal.IterUp,
	tcell.KeyEscape: fractal.Quit,
	tcell.KeyCtrlC:  fractal.Quit,
}

// actionFor maps a terminal key to an explorer action.
func actionFor(key tcell.Key, r rune) (fractal.Action, bool) {
	if key == tcell.KeyRune {
		a, ok := runeActions[unicode.ToLower(r)]
		return a, ok
	}
	a, ok := keyActions[key]
	return a, ok
}

// heldKeys is a fractal.InputSource fed by terminal key events.
// An action stays pressed for hold after its last event; Quit latches.
type heldKeys struct {
	mu   sync.Mutex
	hold time.Duration
	now  func() time.Time
	last map[fractal.Action]time.Time
	quit bool
}

func newHeldKeys(hold time.Duration) *heldKeys {
	return &heldKeys{
		hold: hold,
		now:  time.Now,
		last: make(map[fractal.Action]time.Time),
	}
}

// Feed records a key event. It reports whether the key was bound.
func (h *heldKeys) Feed(key tcell.Key, r rune) bool {
	a, ok := actionFor(key, r)
	if !ok {
		return false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if a == fractal.Quit {
		h.quit = true
		return true
	}
	h.last[a] = h.now()
	return true
}

// Poll implements fractal.InputSource.
func (h *heldKeys) Poll() fractal.Input {
	h.mu.Lock()
	defer h.mu.Unlock()
	now := h.now()
	var ks fractal.KeySet
	for a, t := range h.last {
		if now.Sub(t) <= h.hold {
			ks = ks.With(a)
		} else {
			delete(h.last, a)
		}
	}
	if h.quit {
		ks = ks.With(fractal.Quit)
	}
	return ks
}
