//go:build linux

package display

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/rook-computer/lvconf/internal/logging"
)

// KD console modes from linux/kd.h
const (
	kdText     = 0x00
	kdGraphics = 0x01
	kdSetMode  = 0x4B3A // KDSETMODE ioctl
)

var consolePaths = []string{"/dev/tty", "/dev/tty0"}

// Console switches the active virtual terminal between text and graphics
// mode so the blinking cursor does not draw over the framebuffer.
type Console struct {
	Logger logging.Logger
}

// EnterGraphics sets KD_GRAPHICS and hides the cursor.
func (c Console) EnterGraphics() error {
	err := setMode(kdGraphics)
	c.log("KD_GRAPHICS", err)
	if werr := writeVT("\x1b[?25l"); werr != nil {
		c.log("hide cursor", werr)
	}
	return err
}

// Restore shows the cursor and returns to KD_TEXT.
func (c Console) Restore() error {
	if werr := writeVT("\x1b[?25h"); werr != nil {
		c.log("show cursor", werr)
	}
	err := setMode(kdText)
	c.log("KD_TEXT", err)
	return err
}

func (c Console) log(what string, err error) {
	if c.Logger == nil {
		return
	}
	if err != nil {
		c.Logger.Errorf("tty", "%s failed: %v", what, err)
		return
	}
	c.Logger.Infof("tty", "%s set", what)
}

func setMode(mode int) error {
	var errs []error
	for _, p := range consolePaths {
		fd, err := unix.Open(p, unix.O_RDONLY, 0)
		if err != nil {
			errs = append(errs, fmt.Errorf("open %s: %w", p, err))
			continue
		}
		err = unix.IoctlSetInt(fd, kdSetMode, mode)
		_ = unix.Close(fd)
		if err != nil {
			errs = append(errs, fmt.Errorf("KDSETMODE %d on %s: %w", mode, p, err))
			continue
		}
		return nil
	}
	return errors.Join(errs...)
}

func writeVT(s string) error {
	var errs []error
	for _, p := range consolePaths {
		f, err := os.OpenFile(p, os.O_WRONLY, 0)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		_, err = f.WriteString(s)
		_ = f.Close()
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	return fmt.Errorf("write VT: %w", errors.Join(errs...))
}
