package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/t14raptor/go-neo/compiler"
	"github.com/t14raptor/go-neo/file"
	"github.com/t14raptor/go-neo/internal/config"
	"github.com/t14raptor/go-neo/parser"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	stderr io.Writer
	// src is the last source read, for error snippets.
	src string

	cfgFile    string
	format     string
	out        string
	logLevel   string
	omitSource bool
	module     bool

	cfg *config.Config
	log *zap.Logger
}

// run executes one invocation and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	a := &app{stderr: stderr}
	root := a.rootCmd(stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		a.report(err)
		return 1
	}
	return 0
}

func (a *app) rootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "neo",
		Short: "JavaScript front end and bytecode writer for the neo VM",
		Long: `neo parses JavaScript, checks it for early errors and writes bytecode
for the neo stack machine.

Commands:
  parse   - dump the syntax tree with scopes and closures
  compile - write bytecode
  disasm  - compile and list the bytecode
  fmt     - print normalized source`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (.toml, .yaml or .yml; default $"+config.EnvPath+")")
	flags.StringVarP(&a.format, "format", "f", "", "output format: json, yaml or text")
	flags.StringVarP(&a.out, "out", "o", "", "output file (default stdout)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.BoolVar(&a.omitSource, "omit-source", false, "leave function source text out of the bytecode")
	flags.BoolVar(&a.module, "module", false, "parse input as a module")

	root.AddCommand(
		a.parseCmd(),
		a.compileCmd(),
		a.disasmCmd(),
		a.fmtCmd(),
	)
	return root
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	path := a.cfgFile
	if path == "" {
		path = os.Getenv(config.EnvPath)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = a.format
	}
	if flags.Changed("out") {
		cfg.Output.File = a.out
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("omit-source") {
		cfg.Compile.OmitSource = a.omitSource
	}
	if flags.Changed("module") {
		cfg.Compile.Module = a.module
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.log, err = newLogger(cfg.Log)
	return err
}

func newLogger(c config.LogConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return nil, errors.Wrap(err, "log level")
	}
	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	log, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return log, nil
}

func (a *app) options() compiler.Options {
	return compiler.Options{
		Logger:     a.log,
		Module:     a.cfg.Compile.Module,
		OmitSource: a.cfg.Compile.OmitSource,
	}
}

// source reads and decodes an input file.
func (a *app) source(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, "read source")
	}
	src, err := file.Decode(b)
	if err != nil {
		return "", errors.Wrapf(err, "decode %s", path)
	}
	a.src = src
	return src, nil
}

// output runs write against the configured output file or stdout.
func (a *app) output(cmd *cobra.Command, write func(io.Writer) error) error {
	if a.cfg.Output.File == "" {
		return write(cmd.OutOrStdout())
	}
	f, err := os.Create(a.cfg.Output.File)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "close output")
}

// report prints err, and for syntax errors the source line with a caret.
func (a *app) report(err error) {
	fmt.Fprintf(a.stderr, "neo: %v\n", err)
	var perr *parser.Error
	if errors.As(err, &perr) {
		if snippet := perr.Snippet(a.src); snippet != "" {
			fmt.Fprintln(a.stderr, snippet)
		}
	}
}
