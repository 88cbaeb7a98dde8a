package arplace

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a zap logger for binaries hosting a session. Debug
// loggers are human-readable and include Debug-level mode changes;
// production loggers write JSON at Info and above.
func NewLogger(debug bool) (*zap.Logger, error) {
	if debug {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return cfg.Build()
	}
	cfg := zap.NewProductionConfig()
	cfg.DisableCaller = true
	cfg.Sampling = nil
	return cfg.Build()
}

// nodeFields returns the standard structured fields describing a node.
func nodeFields(n *Node) []zap.Field {
	p := n.WorldPosition()
	return []zap.Field{
		zap.Uint32("node", n.ID),
		zap.String("name", n.Name),
		zap.Float64s("position", []float64{p.X(), p.Y(), p.Z()}),
	}
}
