package main

type replayEntry struct {
	action *PaintAction
	isUndo bool
}

// ReplayTracker records every action of a session, undos included, in
// the order they happened. Playback feeds them back to a grid in that
// same order and consumes the log as it goes.
type ReplayTracker struct {
	recorded *ringQueue[replayEntry]
	playing  bool
}

func NewReplayTracker() *ReplayTracker {
	return &ReplayTracker{recorded: newRingQueue[replayEntry](replayCapacity)}
}

// AddAction appends an action to the log without touching any grid.
// Reports false when the log is full or playback has started; the
// action is dropped either way.
func (t *ReplayTracker) AddAction(action *PaintAction, isUndo bool) bool {
	if t.playing {
		return false
	}
	return t.recorded.Enqueue(replayEntry{action: action, isUndo: isUndo})
}

// StartReplay switches the tracker from recording to playback.
// Recorded content is untouched.
func (t *ReplayTracker) StartReplay() {
	t.playing = true
}

// PlayNextAction replays the oldest remaining entry on the grid:
// forward for a drawn action, inverse for a recorded undo. Reports
// false once the log is exhausted, leaving the grid untouched. A
// drained log cannot be replayed again without re-recording.
func (t *ReplayTracker) PlayNextAction(g *Grid) bool {
	entry, ok := t.recorded.Dequeue()
	if !ok {
		return false
	}
	if entry.isUndo {
		entry.action.Revert(g)
	} else {
		entry.action.Apply(g)
	}
	return true
}

func (t *ReplayTracker) Pending() int {
	return t.recorded.Len()
}
