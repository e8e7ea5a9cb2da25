package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/hoppxi/backlight/internal/config"
	"github.com/hoppxi/backlight/pkg/backlight"
	"github.com/hoppxi/backlight/pkg/operation"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var Version = "0.0.1"

// usageError marks failures that should be answered with the usage text.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func newRootCmd(fs afero.Fs) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "backlight [percent]",
		Version: Version,
		Short:   "Read and set the screen backlight brightness",
		Long: `backlight prints the brightness of the first device under /sys/class/backlight
as a percentage. Given a single number in the range 0~100 it first sets the
brightness to that percentage.`,
		Example:       "  backlight\n  backlight 75",
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBacklight(cmd, args, fs)
		},
	}

	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	flags := rootCmd.Flags()
	flags.String(config.KeyRoot, backlight.SysfsRoot, "Directory holding the backlight devices")
	flags.String(config.KeyBackend, operation.BackendSysfs, "How to apply brightness: sysfs or logind")
	flags.BoolP(config.KeyInfo, "i", false, "Print device info instead of the bare percentage")
	flags.String(config.KeyFormat, "json", "Format for --info: json or yaml")
	flags.Bool(config.KeyVerbose, false, "Log each step to stderr")

	return rootCmd
}

func newLogger(out io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func runBacklight(cmd *cobra.Command, args []string, fs afero.Fs) error {
	settings, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	log := newLogger(cmd.ErrOrStderr(), settings.Verbose)

	writer, err := operation.NewWriter(settings.Backend, fs)
	if err != nil {
		return err
	}
	if settings.Info {
		if err := backlight.ValidFormat(settings.Format); err != nil {
			return err
		}
	}

	dev, err := backlight.Locate(fs, settings.Root)
	if err != nil {
		return fmt.Errorf("system has no backlight control: %w", err)
	}
	log.WithFields(logrus.Fields{
		"device":  dev.Name,
		"max":     dev.Max,
		"current": dev.Current,
	}).Debug("located backlight device")

	if pct, ok := parsePercent(args); ok {
		applied, err := dev.SetPercent(cmd.Context(), writer, pct)
		switch {
		case err != nil:
			log.WithError(err).Warnf("failed to set brightness to %d%%", pct)
		case !applied:
			log.Debugf("ignoring brightness %d%%, range is 0~100", pct)
		default:
			log.WithField("raw", dev.Current).Debugf("brightness set to %d%%", pct)
		}
	}

	out := cmd.OutOrStdout()
	if settings.Info {
		info, err := dev.Info(fs)
		if err != nil {
			return err
		}
		data, err := info.Encode(settings.Format)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	pct, err := dev.Percent(fs)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, pct)
	return err
}

// parsePercent accepts exactly one argument made only of decimal digits.
func parsePercent(args []string) (int, bool) {
	if len(args) != 1 || args[0] == "" {
		return 0, false
	}
	for _, r := range args[0] {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	pct, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, false
	}
	return pct, true
}

func run(args []string, stdout, stderr io.Writer, fs afero.Fs) int {
	rootCmd := newRootCmd(fs)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(context.Background())
	if err == nil {
		return 0
	}

	var uerr *usageError
	if errors.As(err, &uerr) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprint(stderr, rootCmd.UsageString())
		return 1
	}

	fmt.Fprintf(stderr, "%s: %v\n", rootCmd.Name(), err)
	return 1
}

func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, afero.NewOsFs()))
}
