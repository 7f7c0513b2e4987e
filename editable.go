// MIT License

// Copyright (c) 2018 Akhil Indurti

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// This CLI utility loads rich-text markup into an editing session and runs
// editing commands against it.
//
// Usage:
//   editable [command]
//
// Available Commands:
//   apply       Run an edit script against markup
//   check       Load markup and validate the document invariants
//   config      Print the effective configuration
//   help        Help about any command
//   html        Sanitize, load and re-emit markup
//   styles      Print the styles active after some text
//
// Flags:
//   -c, --config    configuration file
//   -h, --help      help for editable
//   -t, --timeout   timeout used to halt long-running commands
//
// Use "editable [command] --help" for more information about a command.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"akhil.cc/editable/ast"
	"akhil.cc/editable/config"
	"akhil.cc/editable/cursor"
	"akhil.cc/editable/editor"
	"akhil.cc/editable/gen/html"
	"akhil.cc/editable/script"
	"akhil.cc/editable/style"
	"github.com/sanity-io/litter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func prefix(msg string, err error) error {
	return errors.New(msg + err.Error())
}

type env struct {
	configfile string
	timeout    time.Duration
	cfg        *config.Config
	log        *zap.Logger
}

func (e *env) prepare() error {
	cfg, err := config.Load(e.configfile)
	if err != nil {
		return err
	}
	log, err := cfg.Logging.Prepare()
	if err != nil {
		return err
	}
	e.cfg, e.log = cfg, log
	return nil
}

func (e *env) context() (context.Context, context.CancelFunc) {
	if e.timeout > 0 {
		return context.WithTimeout(context.Background(), e.timeout)
	}
	return context.WithCancel(context.Background())
}

func (e *env) session(markup string) *editor.Session {
	return editor.New(markup, editor.WithLogger(e.log), editor.WithSanitizer(e.cfg.Sanitizer()))
}

func (e *env) emit(ctx context.Context, s *editor.Session, out io.Writer) error {
	g := html.GenContext(ctx, s.Document())
	g.Stdout = out
	g.Indent = e.cfg.Indent()
	return g.Run()
}

func readInput(name string) (string, error) {
	src := os.Stdin
	if name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return "", err
		}
		defer f.Close()
		src = f
	}
	b, err := io.ReadAll(src)
	return string(b), err
}

func openOutput(name string) (io.WriteCloser, error) {
	if name == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(name)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func withPrefix(cmd *cobra.Command, p string) {
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		if err != nil {
			return prefix(p, err)
		}
		return nil
	})
}

func main() {
	e := &env{}
	rootCmd := &cobra.Command{
		Use:   "editable",
		Short: "rich-text formatting engine",
		Long: `This CLI utility loads rich-text markup into an editing session and runs
editing commands against it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.prepare()
		},
	}
	// pflag includes the argument type when it unquotes its usage.
	// To prevent this behavior we prefix the usage with backquotes ``.
	rootCmd.PersistentFlags().StringVarP(&e.configfile, "config", "c", "", "``configuration file")
	rootCmd.PersistentFlags().DurationVarP(&e.timeout, "timeout", "t", 0, "``timeout used to halt long-running commands")

	rootCmd.AddCommand(htmlCmd(e), applyCmd(e), stylesCmd(e), checkCmd(e), configCmd(e))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func htmlCmd(e *env) *cobra.Command {
	var outputfile string
	p := "(HTML) "
	cmd := &cobra.Command{
		Use:   "html [input] [-o output]",
		Short: "Sanitize, load and re-emit markup",
		Long: `This command sanitizes markup, loads it into a document and writes the
normalized document back out.

If no input file is specified, input is read from
standard input. Similarly, if no output argument is
specified, output is written to standard output.`,
		Args:                  cobra.MaximumNArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			markup, err := readInput(first(args))
			if err != nil {
				return prefix(p, err)
			}
			out, err := openOutput(outputfile)
			if err != nil {
				return prefix(p, err)
			}
			defer out.Close()
			ctx, cancel := e.context()
			defer cancel()
			if err := e.emit(ctx, e.session(markup), out); err != nil {
				return prefix(p, err)
			}
			return nil
		},
	}
	withPrefix(cmd, p)
	cmd.Flags().StringVarP(&outputfile, "output", "o", "", "``name of the output file")
	return cmd
}

func applyCmd(e *env) *cobra.Command {
	var inputfile, outputfile string
	p := "(apply) "
	cmd := &cobra.Command{
		Use:   "apply SCRIPT [-i input] [-o output]",
		Short: "Run an edit script against markup",
		Long: `This command loads markup, runs the edit script against it and writes
the resulting document. Script commands are split into words
according to the Bourne shell's word-splitting rules.`,
		Args:                  cobra.ExactArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			markup, err := readInput(inputfile)
			if err != nil {
				return prefix(p, err)
			}
			f, err := os.Open(args[0])
			if err != nil {
				return prefix(p, err)
			}
			defer f.Close()
			ctx, cancel := e.context()
			defer cancel()
			s := e.session(markup)
			if err := script.Run(ctx, s, f); err != nil {
				return prefix(p, err)
			}
			out, err := openOutput(outputfile)
			if err != nil {
				return prefix(p, err)
			}
			defer out.Close()
			if err := e.emit(ctx, s, out); err != nil {
				return prefix(p, err)
			}
			return nil
		},
	}
	withPrefix(cmd, p)
	cmd.Flags().StringVarP(&inputfile, "input", "i", "", "``name of the input file")
	cmd.Flags().StringVarP(&outputfile, "output", "o", "", "``name of the output file")
	return cmd
}

func stylesCmd(e *env) *cobra.Command {
	var at string
	p := "(styles) "
	cmd := &cobra.Command{
		Use:   "styles [input] --at TEXT",
		Short: "Print the styles active after some text",
		Long: `This command places the caret right after the first occurrence of TEXT
and prints the style names active there, one per line, followed
by the heading tag, or p outside headings.`,
		Args:                  cobra.MaximumNArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			markup, err := readInput(first(args))
			if err != nil {
				return prefix(p, err)
			}
			s := e.session(markup)
			r, ok := cursor.Find(s.Document(), at)
			if !ok {
				return prefix(p, fmt.Errorf("text %q not found", at))
			}
			s.Select(cursor.Caret(r.End))
			reg := s.Registry()
			w := cmd.OutOrStdout()
			for _, ns := range []style.Names{reg.Inline, reg.Block, reg.List} {
				for _, n := range ns {
					fmt.Fprintln(w, n)
				}
			}
			heading := ast.P
			if reg.Heading != ast.NoTag {
				heading = reg.Heading
			}
			fmt.Fprintln(w, heading)
			return nil
		},
	}
	withPrefix(cmd, p)
	cmd.Flags().StringVar(&at, "at", "", "``text the caret is placed after")
	cmd.MarkFlagRequired("at")
	return cmd
}

func checkCmd(e *env) *cobra.Command {
	var dump bool
	p := "(check) "
	cmd := &cobra.Command{
		Use:   "check [input] [--dump]",
		Short: "Load markup and validate the document invariants",
		Long: `This command loads markup and checks that the document is a valid
rich-text tree, reporting every violation found.`,
		Args:                  cobra.MaximumNArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			markup, err := readInput(first(args))
			if err != nil {
				return prefix(p, err)
			}
			s := e.session(markup)
			if dump {
				litter.Config.HidePrivateFields = false
				fmt.Fprintln(cmd.OutOrStdout(), litter.Sdump(s.Document()))
			}
			if err := s.Validate(); err != nil {
				return prefix(p, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
	withPrefix(cmd, p)
	cmd.Flags().BoolVar(&dump, "dump", false, "``dump the loaded document tree")
	return cmd
}

func configCmd(e *env) *cobra.Command {
	p := "(config) "
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `This command prints the configuration in effect, the defaults with the
file given by --config decoded on top, as YAML.`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Dump(e.cfg)
			if err != nil {
				return prefix(p, err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	withPrefix(cmd, p)
	return cmd
}

func first(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
