package main

import "testing"

func TestRegistryAssignsContiguousIndices(t *testing.T) {
	reg := DefaultRegistry()
	if reg.Count() == 0 {
		t.Fatalf("default registry should not be empty")
	}
	for i, layer := range reg.Layers() {
		if layer.Index != i {
			t.Fatalf("layer %q has index %d, want %d", layer.Name, layer.Index, i)
		}
	}
	if _, ok := reg.ByIndex(reg.Count()); ok {
		t.Fatalf("ByIndex past the end should report false")
	}
	if _, ok := reg.ByIndex(-1); ok {
		t.Fatalf("ByIndex below zero should report false")
	}
}

func TestColorInvert(t *testing.T) {
	c := Color{0, 128, 255}
	want := Color{255, 127, 0}
	if got := c.Invert(); got != want {
		t.Fatalf("invert: got %v want %v", got, want)
	}
	if got := c.Invert().Invert(); got != c {
		t.Fatalf("double invert should restore: got %v want %v", got, c)
	}
}

func TestInvertLayerMatchesColorInvert(t *testing.T) {
	reg := DefaultRegistry()
	var invert Layer
	found := false
	for _, l := range reg.Layers() {
		if l.Name == "invert" {
			invert = l
			found = true
		}
	}
	if !found {
		t.Fatalf("default registry should include invert")
	}
	in := Color{10, 200, 99}
	if got := invert.Apply(in, 0, 0, 0); got != in.Invert() {
		t.Fatalf("invert layer: got %v want %v", got, in.Invert())
	}
}

func TestLightenDarkenStayInRange(t *testing.T) {
	reg := DefaultRegistry()
	for _, name := range []string{"lighten", "darken"} {
		var layer Layer
		for _, l := range reg.Layers() {
			if l.Name == name {
				layer = l
			}
		}
		for _, in := range []Color{{0, 0, 0}, {255, 255, 255}, {120, 30, 200}} {
			out := layer.Apply(in, 3.5, 2, 2)
			if name == "lighten" && out.luminance() < in.luminance() {
				t.Fatalf("lighten darkened %v -> %v", in, out)
			}
			if name == "darken" && out.luminance() > in.luminance() {
				t.Fatalf("darken lightened %v -> %v", in, out)
			}
		}
	}
}

func TestRainbowIsPure(t *testing.T) {
	reg := DefaultRegistry()
	var rainbow Layer
	for _, l := range reg.Layers() {
		if l.Name == "rainbow" {
			rainbow = l
		}
	}
	a := rainbow.Apply(canvasBase, 1.25, 3, 4)
	b := rainbow.Apply(canvasBase, 1.25, 3, 4)
	if a != b {
		t.Fatalf("rainbow must be pure: %v vs %v", a, b)
	}
	c := rainbow.Apply(canvasBase, 9.75, 3, 4)
	if a == c {
		t.Fatalf("rainbow should vary with the timestamp")
	}
}
