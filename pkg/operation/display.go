package operation

import (
	"context"
	"errors"
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/hoppxi/backlight/pkg/backlight"
	"github.com/spf13/afero"
)

const (
	BackendSysfs  = "sysfs"
	BackendLogind = "logind"
)

var ErrUnknownBackend = errors.New("unknown brightness backend")

// NewWriter returns the brightness writer registered under name.
func NewWriter(name string, fs afero.Fs) (backlight.Writer, error) {
	switch name {
	case BackendSysfs:
		return &SysfsWriter{Fs: fs}, nil
	case BackendLogind:
		return &LogindWriter{Connect: dbus.ConnectSystemBus}, nil
	default:
		return nil, fmt.Errorf("%w: %q (use %s or %s)", ErrUnknownBackend, name, BackendSysfs, BackendLogind)
	}
}

// SysfsWriter writes straight to the device's brightness attribute.
type SysfsWriter struct {
	Fs afero.Fs
}

func (w *SysfsWriter) WriteBrightness(ctx context.Context, dev *backlight.Device, raw int) error {
	return backlight.WriteInt(w.Fs, dev.BrightnessPath(), raw)
}

// LogindWriter asks systemd-logind to set the brightness on behalf of the
// caller's session, which works without write access to sysfs.
type LogindWriter struct {
	Connect func(opts ...dbus.ConnOption) (*dbus.Conn, error)
}

func (w *LogindWriter) WriteBrightness(ctx context.Context, dev *backlight.Device, raw int) error {
	if raw < 0 {
		return fmt.Errorf("negative brightness %d", raw)
	}

	conn, err := w.Connect(dbus.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to connect to system bus: %w", err)
	}
	defer conn.Close()

	obj := conn.Object("org.freedesktop.login1", "/org/freedesktop/login1/session/auto")
	call := obj.CallWithContext(ctx, "org.freedesktop.login1.Session.SetBrightness", 0, "backlight", dev.Name, uint32(raw))
	if call.Err != nil {
		return fmt.Errorf("logind SetBrightness %s: %w", dev.Name, call.Err)
	}
	return nil
}
