// Package logging sets up the zap logger. The terminal belongs to the
// animation, so log output only ever goes to a file.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/san-kum/numero/internal/animator"
)

// New returns a JSON logger appending to path, or a no-op logger when path
// is empty.
func New(path, level string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "ts"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(f),
		ParseLevel(level),
	)
	return zap.New(core), nil
}

// ParseLevel converts a level name, defaulting to info.
func ParseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// FrameObserver logs phase changes at info and every frame at debug.
type FrameObserver struct {
	logger *zap.Logger
	frames int
}

func NewFrameObserver(logger *zap.Logger) *FrameObserver {
	return &FrameObserver{logger: logger}
}

func (o *FrameObserver) OnPhase(from, to animator.Phase) {
	o.logger.Info("phase change",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.Int("frames", o.frames),
	)
}

func (o *FrameObserver) OnFrame(f animator.Frame) {
	o.frames++
	if ce := o.logger.Check(zapcore.DebugLevel, "frame"); ce != nil {
		ce.Write(
			zap.Stringer("phase", f.Phase),
			zap.String("digits", f.Digits.String()),
			zap.Duration("delay", f.Delay),
			zap.Int("revealed", f.Revealed),
		)
	}
}

func (o *FrameObserver) Frames() int { return o.frames }
