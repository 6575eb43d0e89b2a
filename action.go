package main

// PaintStep is one cell touched by an action. A paint step adds the
// layer on forward application and erases it on revert; an erase step
// does the opposite.
type PaintStep struct {
	X, Y  int
	Layer Layer
	Erase bool
}

func (s PaintStep) apply(g *Grid) {
	store := g.StoreAt(s.X, s.Y)
	if store == nil {
		return
	}
	if s.Erase {
		store.Erase(s.Layer)
	} else {
		store.Add(s.Layer)
	}
}

func (s PaintStep) revert(g *Grid) {
	store := g.StoreAt(s.X, s.Y)
	if store == nil {
		return
	}
	if s.Erase {
		store.Add(s.Layer)
	} else {
		store.Erase(s.Layer)
	}
}

// PaintAction is one recorded drawing operation: an ordered batch of
// steps, optionally marked special. Immutable once constructed; the
// trackers only store and resubmit it.
type PaintAction struct {
	steps   []PaintStep
	special bool
}

func NewPaintAction(steps []PaintStep, special bool) *PaintAction {
	copied := make([]PaintStep, len(steps))
	copy(copied, steps)
	return &PaintAction{steps: copied, special: special}
}

func (a *PaintAction) Steps() []PaintStep {
	return a.steps
}

func (a *PaintAction) IsSpecial() bool {
	return a.special
}

// Apply plays the action forward: steps in order, then the grid-wide
// special effect if flagged.
func (a *PaintAction) Apply(g *Grid) {
	for _, step := range a.steps {
		step.apply(g)
	}
	if a.special {
		g.Special()
	}
}

// Revert undoes the action: steps in reverse order, then special
// again if flagged. The single and additive special effects are a
// toggle and an order reversal, so re-triggering them cancels the
// forward application.
func (a *PaintAction) Revert(g *Grid) {
	for i := len(a.steps) - 1; i >= 0; i-- {
		a.steps[i].revert(g)
	}
	if a.special {
		g.Special()
	}
}
