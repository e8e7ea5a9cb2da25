package backlight

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown output format")

type Info struct {
	Device  string `json:"device" yaml:"device"`
	Path    string `json:"path" yaml:"path"`
	Max     int    `json:"max_brightness" yaml:"max_brightness"`
	Raw     int    `json:"brightness" yaml:"brightness"`
	Percent int    `json:"level" yaml:"level"`
}

func (d *Device) Info(fs afero.Fs) (*Info, error) {
	pct, err := d.Percent(fs)
	if err != nil {
		return nil, err
	}

	return &Info{
		Device:  d.Name,
		Path:    d.Path,
		Max:     d.Max,
		Raw:     d.Current,
		Percent: pct,
	}, nil
}

// ValidFormat reports whether Encode understands format.
func ValidFormat(format string) error {
	switch format {
	case "json", "yaml":
		return nil
	default:
		return fmt.Errorf("%w: %q (use json or yaml)", ErrUnknownFormat, format)
	}
}

// Encode renders the info as "json" or "yaml".
func (i *Info) Encode(format string) ([]byte, error) {
	if err := ValidFormat(format); err != nil {
		return nil, err
	}
	if format == "yaml" {
		return yaml.Marshal(i)
	}
	return json.MarshalIndent(i, "", "  ")
}
