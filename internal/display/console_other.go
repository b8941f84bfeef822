//go:build !linux

package display

import (
	"context"
	"errors"

	"github.com/rook-computer/lvconf/internal/logging"
)

var errNoConsole = errors.New("console mode switching needs linux")

type Console struct {
	Logger logging.Logger
}

func (Console) EnterGraphics() error { return errNoConsole }
func (Console) Restore() error       { return errNoConsole }

// WatchExitKeys needs evdev; elsewhere only signals end the show loop.
func WatchExitKeys(ctx context.Context, logger logging.Logger, onExit func()) {}
