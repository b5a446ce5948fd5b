package imgpng

import "go.uber.org/zap"

// logger receives diagnostics for tolerated-but-not-applied input: ancillary
// chunks skipped (gAMA, cHRM and any other unrecognized type) and CgBI
// framing detected. It never sits on the per-scanline hot path. Callers that
// want visibility into these decisions should call SetLogger.
var logger = zap.NewNop().Sugar()

// SetLogger replaces the package-level diagnostic logger. Passing nil
// restores the no-op logger.
func SetLogger(l *zap.SugaredLogger) {
	if l == nil {
		logger = zap.NewNop().Sugar()
		return
	}
	logger = l
}
