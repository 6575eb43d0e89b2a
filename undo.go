package main

// UndoTracker keeps the session's undo and redo history as a pair of
// bounded stacks. Each recorded action sits on exactly one of the two
// stacks until a full undo history pushes it out of reach.
type UndoTracker struct {
	undoStack *boundedStack[*PaintAction]
	redoStack *boundedStack[*PaintAction]
}

func NewUndoTracker() *UndoTracker {
	return &UndoTracker{
		undoStack: newBoundedStack[*PaintAction](historyCapacity),
		redoStack: newBoundedStack[*PaintAction](historyCapacity),
	}
}

// AddAction records a fresh action. Anything pending on the redo
// stack is discarded first; a new action invalidates the redo branch
// even when the undo stack is full and the action itself is dropped.
// Reports whether the action was kept.
func (t *UndoTracker) AddAction(action *PaintAction) bool {
	t.redoStack.Reset()
	return t.undoStack.Push(action)
}

// Undo reverts the most recent action on the grid and moves it to the
// redo stack. Returns nil when there is nothing to undo.
func (t *UndoTracker) Undo(g *Grid) *PaintAction {
	action, ok := t.undoStack.Pop()
	if !ok {
		return nil
	}
	action.Revert(g)
	t.redoStack.Push(action)
	return action
}

// Redo replays the most recently undone action on the grid and moves
// it back to the undo stack. Returns nil when there is nothing to
// redo.
func (t *UndoTracker) Redo(g *Grid) *PaintAction {
	action, ok := t.redoStack.Pop()
	if !ok {
		return nil
	}
	action.Apply(g)
	t.undoStack.Push(action)
	return action
}

func (t *UndoTracker) UndoDepth() int {
	return t.undoStack.Len()
}

func (t *UndoTracker) RedoDepth() int {
	return t.redoStack.Len()
}
