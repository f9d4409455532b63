// Package device decides which rendering modes to try when opening a
// context and in what order.
package device

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/fixedfunc/internal/logger"
)

// Mode is a rendering acceleration mode.
type Mode string

// Modes.
const (
	Hardware Mode = "hardware"
	Software Mode = "software"
)

// ErrNoDevice wraps the last failure when every planned mode failed.
var ErrNoDevice = errors.New("no rendering device available")

// Plan returns the modes to try for an acceleration setting. "auto" tries
// hardware first and falls back to software once.
func Plan(acceleration string) ([]Mode, error) {
	switch acceleration {
	case "", "auto":
		return []Mode{Hardware, Software}, nil
	case string(Hardware):
		return []Mode{Hardware}, nil
	case string(Software):
		return []Mode{Software}, nil
	default:
		return nil, fmt.Errorf("unknown acceleration %q", acceleration)
	}
}

// Open calls open for each mode in order until one succeeds and returns it.
func Open(plan []Mode, open func(Mode) error) (Mode, error) {
	var last error
	for i, m := range plan {
		err := open(m)
		if err == nil {
			if i > 0 {
				logger.Warn("fell back to a slower device", zap.String("mode", string(m)))
			}
			return m, nil
		}
		logger.Warn("device mode failed", zap.String("mode", string(m)), zap.Error(err))
		last = err
	}
	if last == nil {
		return "", ErrNoDevice
	}
	return "", fmt.Errorf("%w: %w", ErrNoDevice, last)
}
