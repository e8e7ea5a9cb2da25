package operation

import (
	"context"
	"errors"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/hoppxi/backlight/pkg/backlight"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWriter(t *testing.T) {
	fs := afero.NewMemMapFs()

	w, err := NewWriter(BackendSysfs, fs)
	require.NoError(t, err)
	assert.IsType(t, &SysfsWriter{}, w)

	w, err = NewWriter(BackendLogind, fs)
	require.NoError(t, err)
	assert.IsType(t, &LogindWriter{}, w)

	_, err = NewWriter("ddc", fs)
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestSysfsWriter(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/bl/intel_backlight/brightness", []byte("10\n"), 0o644))
	dev := &backlight.Device{Name: "intel_backlight", Path: "/bl/intel_backlight", Max: 255}

	w := &SysfsWriter{Fs: fs}
	require.NoError(t, w.WriteBrightness(context.Background(), dev, 191))

	data, err := afero.ReadFile(fs, "/bl/intel_backlight/brightness")
	require.NoError(t, err)
	assert.Equal(t, "191\n", string(data))
}

func TestLogindWriterConnectError(t *testing.T) {
	w := &LogindWriter{
		Connect: func(opts ...dbus.ConnOption) (*dbus.Conn, error) {
			return nil, errors.New("no bus")
		},
	}
	dev := &backlight.Device{Name: "intel_backlight", Max: 255}

	err := w.WriteBrightness(context.Background(), dev, 10)
	assert.ErrorContains(t, err, "failed to connect to system bus: no bus")

	assert.Error(t, w.WriteBrightness(context.Background(), dev, -1))
}
