package parameter

import "time"

// Frame Loop
const (
	// FrameUpdateInterval is the default frame interval (~30 FPS, plenty for a form)
	FrameUpdateInterval = 33 * time.Millisecond

	// MinFrameInterval bounds configured frame rates
	MinFrameInterval = 8 * time.Millisecond

	// InputChannelSize buffers terminal events between the poller and the frame loop
	InputChannelSize = 256
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "personform.log"
	MaxLogSize  = 10 * 1024 * 1024
)
