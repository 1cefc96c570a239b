// Package compiler writes parsed programs as bytecode for the neo stack
// machine.
package compiler

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/t14raptor/go-neo/ast"
	"github.com/t14raptor/go-neo/file"
	"github.com/t14raptor/go-neo/parser"
)

type Options struct {
	// Logger receives one debug record per phase. Nil disables logging.
	Logger *zap.Logger
	// Module parses the source as a module.
	Module bool
	// OmitSource leaves SET_SOURCE out of function objects.
	OmitSource bool
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// Write emits the bytecode of a parsed program. The error, if any, is a
// *Error or the unpatched-address failure of Program.Bytes.
func Write(program *ast.Program, opts Options) (*Program, error) {
	w := newWriter(program, opts)
	w.program(program)
	if w.err != nil {
		return nil, w.err
	}
	if _, err := w.prog.Bytes(); err != nil {
		return nil, err
	}
	return w.prog, nil
}

// Compile parses and writes src. Parse errors unwrap to *parser.Error and
// emission errors to *Error.
func Compile(name, src string, opts Options) (*Program, error) {
	log := opts.logger().With(zap.String("file", name))

	start := time.Now()
	f := file.NewFile(name, src)
	program, err := parser.ParseFile(name, src, parser.WithModule(opts.Module), parser.WithFile(f))
	log.Debug("parse", zap.Int("bytes", len(src)), zap.Duration("duration", time.Since(start)))
	if err != nil {
		log.Info("compile failed", zap.Error(err))
		return nil, errors.Wrapf(err, "compile %s", name)
	}

	start = time.Now()
	prog, err := Write(program, opts)
	if err != nil {
		log.Info("compile failed", zap.Error(err))
		return nil, errors.Wrapf(err, "compile %s", name)
	}
	log.Debug("emit", zap.Int("bytes", prog.Len()), zap.Duration("duration", time.Since(start)))
	return prog, nil
}

// CompileFile reads, decodes and compiles the file at path.
func CompileFile(path string, opts Options) (*Program, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read source")
	}
	src, err := file.Decode(b)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	return Compile(path, src, opts)
}
