package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	defaultAlpha      = 0.01 // learning rate
	defaultIterations = 6500 // fixed number of update steps

	envPrefix = "LOGIT"
)

// flag keys, shared by cobra and viper.
const (
	keyAlpha       = "alpha"
	keyIterations  = "iterations"
	keyStandardize = "standardize"
	keyTolerance   = "tolerance"
	keyVerbose     = "verbose"
)

// UsageError reports a malformed command line. It is printed together with
// the usage text and exits with status 1.
type UsageError struct {
	msg string
}

func (e *UsageError) Error() string { return e.msg }

// config is the resolved run configuration (flags > env > defaults).
type config struct {
	Alpha       float64
	Iterations  int
	Standardize bool
	Tolerance   float64
	Verbose     bool
}

// execute runs the command with args and returns the process exit status.
func execute(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{} // cobra falls back to os.Args on nil
	}
	cmd := newRootCommand(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var ue *UsageError
	if errors.As(err, &ue) {
		fmt.Fprintf(stderr, "ERROR: %s\n\n%s", ue, cmd.UsageString())
	} else {
		fmt.Fprintf(stderr, "ERROR: %s\n", err)
	}

	return 1
}

// newRootCommand builds the cobra command and binds its flags into a
// private viper instance.
func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "logit [flags] <path>",
		Short:         "Fit logistic regression parameters with batch gradient descent",
		Args:          checkArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}

			return run(args[0], cfg, stdout, newLogger(stderr, cfg.Verbose))
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{msg: err.Error()}
	})

	flags := cmd.Flags()
	flags.Float64(keyAlpha, defaultAlpha, "learning rate")
	flags.Int(keyIterations, defaultIterations, "number of gradient descent iterations")
	flags.Bool(keyStandardize, false, "z-score every feature column before fitting")
	flags.Float64(keyTolerance, 0, "stop early once every parameter step is below this value (0 disables)")
	flags.BoolP(keyVerbose, "v", false, "debug logging")

	_ = v.BindPFlags(flags)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}

// loadConfig resolves every key with a checked conversion. viper's typed
// getters return the zero value for a malformed LOGIT_* variable, which would
// silently turn e.g. LOGIT_ITERATIONS=abc into 0 iterations.
func loadConfig(v *viper.Viper) (config, error) {
	var (
		cfg  config
		errs []error
	)
	conv := func(key string, fn func(any) error) {
		if err := fn(v.Get(key)); err != nil {
			errs = append(errs, fmt.Errorf("invalid %s (flag --%s or %s_%s): %w",
				key, key, envPrefix, strings.ToUpper(key), err))
		}
	}

	conv(keyAlpha, func(raw any) (err error) { cfg.Alpha, err = cast.ToFloat64E(raw); return err })
	conv(keyIterations, func(raw any) (err error) { cfg.Iterations, err = cast.ToIntE(raw); return err })
	conv(keyStandardize, func(raw any) (err error) { cfg.Standardize, err = cast.ToBoolE(raw); return err })
	conv(keyTolerance, func(raw any) (err error) { cfg.Tolerance, err = cast.ToFloat64E(raw); return err })
	conv(keyVerbose, func(raw any) (err error) { cfg.Verbose, err = cast.ToBoolE(raw); return err })

	if len(errs) > 0 {
		return config{}, &UsageError{msg: errors.Join(errs...).Error()}
	}

	return cfg, nil
}

// checkArgs requires exactly one non-empty positional argument.
func checkArgs(_ *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return &UsageError{msg: "not enough input argument"}
	case len(args) > 1:
		return &UsageError{msg: fmt.Sprintf("too many input arguments: %d", len(args))}
	case args[0] == "":
		return &UsageError{msg: "filename is empty"}
	}

	return nil
}

// newLogger returns a text slog.Logger on w; verbose lowers the level to debug.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
