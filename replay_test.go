package main

import "testing"

func TestReplayFidelity(t *testing.T) {
	reg := NewRegistry()
	red := solidLayer(reg, "red", Color{150, 0, 0})
	blue := solidLayer(reg, "blue", Color{0, 0, 150})

	a := paintActionAt(red, 0, 0)
	b := paintActionAt(blue, 1, 1)

	tracker := NewReplayTracker()
	tracker.AddAction(a, false)
	tracker.AddAction(b, false)
	tracker.AddAction(b, true) // the session then undid b

	g := NewGrid(StyleSingle, 2, 2, reg)
	tracker.StartReplay()

	for i := 0; i < 3; i++ {
		if !tracker.PlayNextAction(g) {
			t.Fatalf("play %d should report an action played", i)
		}
	}
	if tracker.PlayNextAction(g) {
		t.Fatalf("a drained log should report nothing left")
	}

	if got := g.ColorAt(canvasBase, 0, 0, 0); got != (Color{150, 0, 0}) {
		t.Fatalf("replayed a should survive, got %v", got)
	}
	if got := g.ColorAt(canvasBase, 0, 1, 1); got != canvasBase {
		t.Fatalf("replayed undo should have cleared b, got %v", got)
	}
}

func TestReplayOrderIsRecordedOrder(t *testing.T) {
	reg := NewRegistry()
	red := solidLayer(reg, "red", Color{150, 0, 0})
	blue := solidLayer(reg, "blue", Color{0, 0, 150})

	tracker := NewReplayTracker()
	tracker.AddAction(paintActionAt(red, 0, 0), false)
	tracker.AddAction(paintActionAt(blue, 0, 0), false)

	g := NewGrid(StyleSingle, 1, 1, reg)
	tracker.StartReplay()
	tracker.PlayNextAction(g)
	tracker.PlayNextAction(g)

	// The single store keeps the last layer, so order is observable.
	if got := g.ColorAt(canvasBase, 0, 0, 0); got != (Color{0, 0, 150}) {
		t.Fatalf("blue was recorded last and must win, got %v", got)
	}
}

func TestReplayExhaustedDoesNotMutate(t *testing.T) {
	reg := NewRegistry()
	red := solidLayer(reg, "red", Color{150, 0, 0})
	g := NewGrid(StyleSingle, 1, 1, reg)
	g.StoreAt(0, 0).Add(red)

	tracker := NewReplayTracker()
	tracker.StartReplay()
	if tracker.PlayNextAction(g) {
		t.Fatalf("an empty log should report nothing left")
	}
	if got := g.ColorAt(canvasBase, 0, 0, 0); got != (Color{150, 0, 0}) {
		t.Fatalf("an exhausted replay must not touch the grid, got %v", got)
	}
}

func TestReplayRejectsRecordingDuringPlayback(t *testing.T) {
	reg := NewRegistry()
	red := solidLayer(reg, "red", Color{150, 0, 0})

	tracker := NewReplayTracker()
	tracker.AddAction(paintActionAt(red, 0, 0), false)
	tracker.StartReplay()

	if tracker.AddAction(paintActionAt(red, 0, 0), false) {
		t.Fatalf("recording during playback should be refused")
	}
	if tracker.Pending() != 1 {
		t.Fatalf("pending: got %d want 1", tracker.Pending())
	}
}

func TestReplayCapacityDropsSilently(t *testing.T) {
	reg := NewRegistry()
	red := solidLayer(reg, "red", Color{150, 0, 0})
	tracker := NewReplayTracker()

	action := paintActionAt(red, 0, 0)
	for i := 0; i < replayCapacity; i++ {
		if !tracker.AddAction(action, false) {
			t.Fatalf("add %d should fit", i)
		}
	}
	if tracker.AddAction(action, false) {
		t.Fatalf("add beyond capacity should report false")
	}
	if tracker.Pending() != replayCapacity {
		t.Fatalf("pending after overflow: got %d want %d", tracker.Pending(), replayCapacity)
	}
}
