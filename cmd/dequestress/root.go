package main

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// levelFlag adapts a zap level to a pflag.Value.
type levelFlag struct {
	level zapcore.Level
}

var _ pflag.Value = (*levelFlag)(nil)

func (f *levelFlag) String() string     { return f.level.String() }
func (f *levelFlag) Set(s string) error { return f.level.Set(s) }
func (f *levelFlag) Type() string       { return "level" }

// newLogger builds a console logger writing to w at the given level.
func newLogger(level zapcore.Level, w io.Writer) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)

	return zap.New(core)
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	level := &levelFlag{level: zapcore.InfoLevel}
	logger := func() *zap.Logger { return newLogger(level.level, stderr) }

	root := &cobra.Command{
		Use:           "dequestress",
		Short:         "Stress and inspect the segmented deque.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().Var(level, "log-level", "Log level: debug, info, warn or error.")

	root.AddCommand(
		newRunCommand(stdout, logger),
		newGrowthCommand(stdout),
	)

	return root
}
