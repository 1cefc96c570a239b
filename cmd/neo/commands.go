package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/t14raptor/go-neo/ast"
	"github.com/t14raptor/go-neo/compiler"
	"github.com/t14raptor/go-neo/file"
	"github.com/t14raptor/go-neo/generator"
	"github.com/t14raptor/go-neo/internal/config"
	"github.com/t14raptor/go-neo/parser"
)

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse FILE",
		Short: "Dump the syntax tree of FILE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := a.parse(args[0])
			if err != nil {
				return err
			}
			tree := ast.Serialize(program, program.File)
			return a.output(cmd, func(w io.Writer) error {
				return a.encode(w, tree, outline)
			})
		},
	}
}

func (a *app) compileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compile FILE",
		Short: "Write the bytecode of FILE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := a.compile(args[0])
			if err != nil {
				return err
			}
			return a.output(cmd, func(w io.Writer) error {
				_, err := w.Write(code)
				return errors.Wrap(err, "write bytecode")
			})
		},
	}
}

func (a *app) disasmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disasm FILE",
		Short: "Compile FILE and list its instructions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := a.compile(args[0])
			if err != nil {
				return err
			}
			list, err := compiler.Decode(code)
			if err != nil {
				return err
			}
			return a.output(cmd, func(w io.Writer) error {
				return a.encode(w, instructions(list), func(w io.Writer, _ any) error {
					text, err := compiler.Disassemble(code)
					if err != nil {
						return err
					}
					_, err = io.WriteString(w, text)
					return err
				})
			})
		},
	}
}

func (a *app) fmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt FILE",
		Short: "Print FILE as normalized source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := a.parse(args[0])
			if err != nil {
				return err
			}
			return a.output(cmd, func(w io.Writer) error {
				_, err := io.WriteString(w, generator.Generate(program))
				return err
			})
		},
	}
}

func (a *app) parse(path string) (*ast.Program, error) {
	src, err := a.source(path)
	if err != nil {
		return nil, err
	}
	program, err := parser.ParseFile(path, src,
		parser.WithModule(a.cfg.Compile.Module),
		parser.WithFile(file.NewFile(path, src)))
	if err != nil {
		a.log.Info("parse failed", zap.String("file", path), zap.Error(err))
		return nil, err
	}
	return program, nil
}

func (a *app) compile(path string) ([]byte, error) {
	src, err := a.source(path)
	if err != nil {
		return nil, err
	}
	prog, err := compiler.Compile(path, src, a.options())
	if err != nil {
		return nil, err
	}
	return prog.Bytes()
}

// encode writes v in the configured format. text renders the text format.
func (a *app) encode(w io.Writer, v any, text func(io.Writer, any) error) error {
	switch a.cfg.Output.Format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(v), "encode json")
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		return errors.Wrap(enc.Close(), "encode yaml")
	default:
		return text(w, v)
	}
}

func instructions(list []compiler.Instruction) []map[string]any {
	out := make([]map[string]any, len(list))
	for i, in := range list {
		m := map[string]any{"offset": in.Offset, "op": in.Op.String()}
		if len(in.Operands) > 0 {
			m["operands"] = in.Operands
		}
		out[i] = m
	}
	return out
}

// outline renders a serialized tree as one indented line per node.
func outline(w io.Writer, v any) error {
	var b strings.Builder
	writeOutline(&b, v.(map[string]any), 0)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeOutline(b *strings.Builder, node map[string]any, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(node["type"].(string))
	if loc, ok := node["location"].(map[string]any); ok {
		fmt.Fprintf(b, " %s-%s", span(loc["begin"]), span(loc["end"]))
	}
	if names, ok := node["closure"].([]string); ok && len(names) > 0 {
		fmt.Fprintf(b, " closure=%s", strings.Join(names, ","))
	}
	b.WriteByte('\n')

	var children []map[string]any
	for k, v := range node {
		switch k {
		case "type", "location", "scope", "nameScope", "closure":
			continue
		}
		switch child := v.(type) {
		case map[string]any:
			children = appendNode(children, child)
		case []any:
			for _, c := range child {
				if m, ok := c.(map[string]any); ok {
					children = appendNode(children, m)
				}
			}
		}
	}
	sort.SliceStable(children, func(i, j int) bool {
		return offset(children[i]) < offset(children[j])
	})
	for _, c := range children {
		writeOutline(b, c, depth+1)
	}
}

func appendNode(list []map[string]any, m map[string]any) []map[string]any {
	if _, ok := m["type"]; ok {
		return append(list, m)
	}
	return list
}

func offset(node map[string]any) int {
	loc, _ := node["location"].(map[string]any)
	begin, _ := loc["begin"].(map[string]any)
	n, _ := begin["offset"].(int)
	return n
}

func span(v any) string {
	p, _ := v.(map[string]any)
	if line, ok := p["line"]; ok {
		return fmt.Sprintf("%v:%v", line, p["column"])
	}
	return fmt.Sprint(p["offset"])
}
