package main

// Deterministic layer transforms for engine tests. Order-sensitive
// arithmetic on the red channel makes composition order observable.

func plusLayer(reg *Registry, name string, delta int) Layer {
	return reg.Register(name, Color{uint8(delta), 0, 0}, func(c Color, _ float64, _, _ int) Color {
		v := int(c.R) + delta
		if v > channelMax {
			v = channelMax
		}
		return Color{uint8(v), c.G, c.B}
	})
}

func doubleLayer(reg *Registry, name string) Layer {
	return reg.Register(name, Color{1, 1, 1}, func(c Color, _ float64, _, _ int) Color {
		v := int(c.R) * 2
		if v > channelMax {
			v = channelMax
		}
		return Color{uint8(v), c.G, c.B}
	})
}

func solidLayer(reg *Registry, name string, bg Color) Layer {
	return reg.Register(name, bg, solid(bg))
}
