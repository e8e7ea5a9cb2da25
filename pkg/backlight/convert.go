package backlight

import (
	"context"
	"math"

	"github.com/spf13/afero"
)

// ToPercent converts a raw value to a percentage of max, rounding half
// away from zero. max must be positive.
func ToPercent(raw, max int) int {
	return int(math.Round(float64(raw) * 100.0 / float64(max)))
}

// FromPercent converts pct to raw units, truncating. ok is false when pct
// is outside 0..100.
func FromPercent(pct, max int) (raw int, ok bool) {
	if pct < 0 || pct > 100 {
		return 0, false
	}
	return max * pct / 100, true
}

// Writer applies a raw brightness value to a device.
type Writer interface {
	WriteBrightness(ctx context.Context, dev *Device, raw int) error
}

// Percent re-reads the device's brightness and returns it as a percentage.
func (d *Device) Percent(fs afero.Fs) (int, error) {
	raw, err := ReadInt(fs, d.BrightnessPath())
	if err != nil {
		return 0, err
	}
	d.Current = raw
	return ToPercent(raw, d.Max), nil
}

// SetPercent writes pct through w. Out of range values are ignored and
// reported as not applied, without an error.
func (d *Device) SetPercent(ctx context.Context, w Writer, pct int) (bool, error) {
	raw, ok := FromPercent(pct, d.Max)
	if !ok {
		return false, nil
	}
	if err := w.WriteBrightness(ctx, d, raw); err != nil {
		return false, err
	}
	d.Current = raw
	return true, nil
}
