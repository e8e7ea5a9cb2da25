package backlight

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// ReadInt reads a decimal integer stored as text, with optional surrounding
// whitespace, from path.
func ReadInt(fs afero.Fs, path string) (int, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", path, err)
	}

	s := strings.TrimSpace(string(data))
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("expected number from %s, got %q: %w", path, s, err)
	}
	return v, nil
}

// WriteInt writes v followed by a newline to path. The file must already
// exist, as sysfs attributes always do.
func WriteInt(fs afero.Fs, path string, v int) error {
	f, err := fs.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}

	if _, err := fmt.Fprintf(f, "%d\n", v); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %d to %s: %w", v, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %d to %s: %w", v, path, err)
	}
	return nil
}
