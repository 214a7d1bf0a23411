// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fractal

import "strings"

// Action is a logical input action.
type Action uint16

const (
	// PanUp moves the view up.
	PanUp Action = 1 << iota

	// PanDown moves the view down.
	PanDown

	// PanLeft moves the view left.
	PanLeft

	// PanRight moves the view right.
	PanRight

	// ZoomIn magnifies the view.
	ZoomIn

	// ZoomOut shrinks the view.
	ZoomOut

	// IterUp raises the iteration limit.
	IterUp

	// IterDown lowers the iteration limit.
	IterDown

	// Quit terminates the render loop.
	Quit

	// Screenshot saves the presented frame.
	Screenshot
)

var actionNames = []struct {
	a    Action
	name string
}{
	{PanUp, "pan-up"},
	{PanDown, "pan-down"},
	{PanLeft, "pan-left"},
	{PanRight, "pan-right"},
	{ZoomIn, "zoom-in"},
	{ZoomOut, "zoom-out"},
	{IterUp, "iter-up"},
	{IterDown, "iter-down"},
	{Quit, "quit"},
	{Screenshot, "screenshot"},
}

// String returns a "+"-joined list of action names.
func (a Action) String() string {
	if a == 0 {
		return "none"
	}
	var parts []string
	for _, an := range actionNames {
		if a&an.a != 0 {
			parts = append(parts, an.name)
		}
	}
	return strings.Join(parts, "+")
}

// Input reports which actions are held during the current tick.
type Input interface {
	Pressed(a Action) bool
}

// InputSource is polled once per tick by the render loop.
type InputSource interface {
	Poll() Input
}

// KeySet is a set of held actions. It implements Input and InputSource.
type KeySet Action

var (
	_ Input       = KeySet(0)
	_ InputSource = KeySet(0)
)

// Keys returns a KeySet holding the given actions.
func Keys(actions ...Action) KeySet {
	var k KeySet
	for _, a := range actions {
		k |= KeySet(a)
	}
	return k
}

// Pressed reports whether any action in a is held.
func (k KeySet) Pressed(a Action) bool {
	return Action(k)&a != 0
}

// With returns k with a held.
func (k KeySet) With(a Action) KeySet {
	return k | KeySet(a)
}

// Without returns k with a released.
func (k KeySet) Without(a Action) KeySet {
	return k &^ KeySet(a)
}

// Poll returns k itself.
func (k KeySet) Poll() Input {
	return k
}

// String implements fmt.Stringer.
func (k KeySet) String() string {
	return Action(k).String()
}
