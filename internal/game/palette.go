package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

// F32 returns the colour as normalized floats.
func (c RGB) F32() (r, g, b float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}

var Palette = struct {
	Sky         RGB
	Agent       RGB
	AgentHead   RGB
	StageBox    RGB
	StageCyl    RGB
	StageTarget RGB
	StageOld    RGB
	Preview     RGB
	Spark       RGB
	Dust        RGB
	Text        RGB
	TextDim     RGB
	Gold        RGB
	Danger      RGB
}{
	Sky:         RGB{R: 214, G: 224, B: 232},
	Agent:       RGB{R: 52, G: 58, B: 74},
	AgentHead:   RGB{R: 74, G: 82, B: 102},
	StageBox:    RGB{R: 236, G: 236, B: 228},
	StageCyl:    RGB{R: 250, G: 196, B: 120},
	StageTarget: RGB{R: 120, G: 200, B: 170},
	StageOld:    RGB{R: 196, G: 200, B: 204},
	Preview:     RGB{R: 255, G: 255, B: 255},
	Spark:       RGB{R: 255, G: 255, B: 255},
	Dust:        RGB{R: 180, G: 176, B: 166},
	Text:        RGB{R: 40, G: 44, B: 56},
	TextDim:     RGB{R: 110, G: 116, B: 128},
	Gold:        RGB{R: 236, G: 170, B: 40},
	Danger:      RGB{R: 220, G: 70, B: 60},
}
