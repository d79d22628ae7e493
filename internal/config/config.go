package config

const (
	CanvasWidth  = 800
	CanvasHeight = 600

	// Audio tap
	VisualRingSize  = 8192
	LevelWindow     = 2048
	SmoothingFactor = 0.6
	AudioGain       = 1.5

	// Panel overlay
	PanelX          = 12
	PanelY          = 12
	PanelLineHeight = 16
	PanelWidth      = 300

	// Recording
	RecordFrames = 90

	ExportPrefix = "threshold-gradient"
)
