package main

type DrawStyle int

const (
	StyleSingle DrawStyle = iota
	StyleAdditive
	StyleSequential
)

func (s DrawStyle) String() string {
	switch s {
	case StyleSingle:
		return "single"
	case StyleAdditive:
		return "additive"
	case StyleSequential:
		return "sequential"
	}
	return "unknown"
}

type Mode int

const (
	ModeStartup Mode = iota
	ModeNormal
	ModeReplay
	ModeFileInput
	ModeConfirmQuit
)

type FileOperation int

const (
	FileOpSavePNG FileOperation = iota
	FileOpSaveTXT
)

const (
	minBrushSize     = 0
	defaultBrushSize = 2
	maxBrushSize     = 5

	historyCapacity  = 10000
	replayCapacity   = 10000
	additivePerLayer = 100 // additive store holds additivePerLayer slots per registered layer

	channelMax = 255
)
