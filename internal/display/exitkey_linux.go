//go:build linux

package display

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/rook-computer/lvconf/internal/logging"
)

const (
	evKey = 0x01

	// Linux input-event-codes.h
	keyEsc = 1
	keyF4  = 62
)

// WatchExitKeys calls onExit once when Esc or F4 is pressed on any evdev
// keyboard. Without input devices it logs and returns; the caller still
// has signals.
func WatchExitKeys(ctx context.Context, logger logging.Logger, onExit func()) {
	if onExit == nil {
		return
	}
	if logger == nil {
		logger = logging.NoopLogger{}
	}

	// input_event = timeval + u16 type + u16 code + s32 value.
	tvSize := binary.Size(unix.Timeval{})
	eventSize := tvSize + 2 + 2 + 4

	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(paths) == 0 {
		logger.Infof("input", "no evdev devices found for exit key")
		return
	}

	var once sync.Once
	trigger := func(code uint16) {
		once.Do(func() {
			logger.Infof("input", "key %d pressed: exiting", code)
			onExit()
		})
	}

	for _, path := range paths {
		go watchDevice(ctx, path, tvSize, eventSize, trigger)
	}
}

func watchDevice(ctx context.Context, path string, tvSize, eventSize int, trigger func(uint16)) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return
	}
	f := os.NewFile(uintptr(fd), path)
	defer f.Close()

	buf := make([]byte, eventSize*64)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}
		for off := 0; off+eventSize <= n; off += eventSize {
			rec := buf[off : off+eventSize]
			typ := binary.LittleEndian.Uint16(rec[tvSize:])
			code := binary.LittleEndian.Uint16(rec[tvSize+2:])
			value := int32(binary.LittleEndian.Uint32(rec[tvSize+4:]))
			if typ == evKey && value == 1 && (code == keyEsc || code == keyF4) {
				trigger(code)
				return
			}
		}
	}
}
