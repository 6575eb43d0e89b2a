package main

import "sort"

// LayerStore holds the layers painted onto one grid cell and owns the
// composition rule for that cell. Add and Erase report whether the
// store actually changed; neither ever fails.
type LayerStore interface {
	Add(layer Layer) bool
	Erase(layer Layer) bool
	GetColor(start Color, timestamp float64, x, y int) Color
	Special()
}

// newLayerStore builds the store variant for the given draw style.
// totalLayers is the registry size; the additive variant derives its
// capacity from it.
func newLayerStore(style DrawStyle, totalLayers int) LayerStore {
	switch style {
	case StyleAdditive:
		return newAdditiveStore(totalLayers)
	case StyleSequential:
		return newSequentialStore()
	default:
		return &singleStore{}
	}
}

// singleStore remembers only the most recent layer. Special toggles
// inversion of the composed output.
type singleStore struct {
	layer    *Layer
	inverted bool
}

func (s *singleStore) Add(layer Layer) bool {
	if s.layer != nil && s.layer.Background == layer.Background {
		return false
	}
	s.layer = &layer
	return true
}

// Erase clears whatever is stored; the argument is irrelevant.
func (s *singleStore) Erase(Layer) bool {
	if s.layer == nil {
		return false
	}
	s.layer = nil
	return true
}

func (s *singleStore) Special() {
	s.inverted = !s.inverted
}

func (s *singleStore) GetColor(start Color, timestamp float64, x, y int) Color {
	if s.layer == nil {
		return start
	}
	c := s.layer.Apply(start, timestamp, x, y)
	if s.inverted {
		return c.Invert()
	}
	return c
}

// additiveStore keeps every painted layer in arrival order, oldest
// first, with duplicates allowed.
type additiveStore struct {
	queue *ringQueue[Layer]
}

func newAdditiveStore(totalLayers int) *additiveStore {
	return &additiveStore{queue: newRingQueue[Layer](additivePerLayer * totalLayers)}
}

func (s *additiveStore) Add(layer Layer) bool {
	return s.queue.Enqueue(layer)
}

// Erase drops the oldest layer regardless of the argument.
func (s *additiveStore) Erase(Layer) bool {
	_, ok := s.queue.Dequeue()
	return ok
}

func (s *additiveStore) GetColor(start Color, timestamp float64, x, y int) Color {
	acc := start
	s.queue.Each(func(l Layer) {
		acc = l.Apply(acc, timestamp, x, y)
	})
	return acc
}

// Special reverses the arrival order by draining through a LIFO
// buffer. Calling it twice restores the original order.
func (s *additiveStore) Special() {
	tmp := newBoundedStack[Layer](s.queue.Len())
	for {
		l, ok := s.queue.Dequeue()
		if !ok {
			break
		}
		tmp.Push(l)
	}
	for {
		l, ok := tmp.Pop()
		if !ok {
			break
		}
		s.queue.Enqueue(l)
	}
}

// sequentialStore holds at most one layer per registry index, sorted
// ascending by index.
type sequentialStore struct {
	layers []Layer
}

func newSequentialStore() *sequentialStore {
	return &sequentialStore{}
}

func (s *sequentialStore) Add(layer Layer) bool {
	pos := sort.Search(len(s.layers), func(i int) bool {
		return s.layers[i].Index >= layer.Index
	})
	if pos < len(s.layers) && s.layers[pos].Index == layer.Index {
		return false
	}
	s.layers = append(s.layers, Layer{})
	copy(s.layers[pos+1:], s.layers[pos:])
	s.layers[pos] = layer
	return true
}

func (s *sequentialStore) Erase(layer Layer) bool {
	pos := sort.Search(len(s.layers), func(i int) bool {
		return s.layers[i].Index >= layer.Index
	})
	if pos >= len(s.layers) || s.layers[pos].Index != layer.Index {
		return false
	}
	s.layers = append(s.layers[:pos], s.layers[pos+1:]...)
	return true
}

func (s *sequentialStore) GetColor(start Color, timestamp float64, x, y int) Color {
	acc := start
	for _, l := range s.layers {
		acc = l.Apply(acc, timestamp, x, y)
	}
	return acc
}

// Special removes the lower-median layer of a scratch view sorted by
// name: for n held layers, position (n-1)/2. The stable sort keeps
// equal names in index order, so the lowest-index holder of the
// winning name is the one removed. The store itself stays sorted by
// index throughout.
func (s *sequentialStore) Special() {
	if len(s.layers) == 0 {
		return
	}
	byName := make([]Layer, len(s.layers))
	copy(byName, s.layers)
	sort.SliceStable(byName, func(i, j int) bool {
		return byName[i].Name < byName[j].Name
	})
	s.Erase(byName[(len(byName)-1)/2])
}
