package backlight

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// SysfsRoot is where the kernel exposes one directory per backlight device.
const SysfsRoot = "/sys/class/backlight"

const (
	brightnessFile    = "brightness"
	maxBrightnessFile = "max_brightness"
)

var (
	ErrNoDevice   = errors.New("no backlight device found")
	ErrInvalidMax = errors.New("invalid max_brightness value")
)

// Device is a backlight control directory and the values read from it when
// it was located.
type Device struct {
	Name    string
	Path    string
	Max     int
	Current int
}

// Locate picks the lexically first non-hidden entry under root and reads
// its max and current brightness.
func Locate(fs afero.Fs, root string) (*Device, error) {
	// afero.ReadDir returns entries sorted by name
	entries, err := afero.ReadDir(fs, root)
	if err != nil {
		return nil, fmt.Errorf("%w in %s: %w", ErrNoDevice, root, err)
	}

	var names []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoDevice, root)
	}

	dev := &Device{
		Name: names[0],
		Path: filepath.Join(root, names[0]),
	}

	dev.Max, err = ReadInt(fs, dev.attr(maxBrightnessFile))
	if err != nil {
		return nil, err
	}
	if dev.Max <= 0 {
		return nil, fmt.Errorf("%w %d for %s", ErrInvalidMax, dev.Max, dev.Name)
	}

	dev.Current, err = ReadInt(fs, dev.attr(brightnessFile))
	if err != nil {
		return nil, err
	}

	return dev, nil
}

func (d *Device) attr(name string) string {
	return filepath.Join(d.Path, name)
}

// BrightnessPath is the writable raw brightness attribute of d.
func (d *Device) BrightnessPath() string {
	return d.attr(brightnessFile)
}
