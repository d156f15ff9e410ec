package game

// Window defaults.
const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "hop"
)

// Camera framing. The eye trails the agent by a fixed offset.
const (
	CameraOffsetX = 5.0
	CameraOffsetY = 5.0
	CameraOffsetZ = 5.0
	CameraFovDeg  = 45.0
	CameraNear    = 0.1
	CameraFar     = 100.0
)

// Charge cloud and landing burst.
const (
	MaxParticles      = 512
	MaxParticleRender = 2048
	ChargeParticles   = 50
	ChargeCloudRadius = 0.25
	ChargeCloudLift   = 0.5
	LandBurstCount    = 24
)

// Preview dots.
const (
	PreviewDotStride = 3 // draw every third predicted point
	PreviewDotSize   = 0.08
)

// Score popup.
const (
	PopupLife  = 0.9 // seconds
	PopupRise  = 40  // screen pixels over its life
	PopupScale = 4
)

// HUD font: procedural 3x5 glyphs, each cell one quad per lit pixel.
const (
	GlyphW       = 3
	GlyphH       = 5
	GlyphAdvance = GlyphW + 1
	LineAdvance  = GlyphH + 2
)
