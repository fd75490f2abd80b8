package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/go-shparse/shparse"
	"github.com/go-shparse/shparse/ast"
	"github.com/go-shparse/shparse/errors"
	"github.com/go-shparse/shparse/internal/flags"
	"github.com/go-shparse/shparse/internal/logger"
	"github.com/go-shparse/shparse/internal/snippet"
	"github.com/go-shparse/shparse/internal/term"
	"github.com/go-shparse/shparse/render"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	log := &logger.Logger{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Verbose: flags.Verbose,
		Color:   flags.Color,
	}
	if err := flags.Validate(); err != nil {
		log.Errf(logger.Red, "%v", err)
		return errors.CodeUnknown
	}
	if !flags.Color || !term.IsTerminal() {
		color.NoColor = true
	}

	if flags.Version {
		fmt.Printf("shparse version: %s\n", version)
		return errors.CodeOk
	}
	if flags.Help {
		pflag.Usage()
		return errors.CodeOk
	}

	out := io.Writer(os.Stdout)
	if flags.Output != "" {
		f, err := os.Create(flags.Output)
		if err != nil {
			log.Errf(logger.Red, "%v", err)
			return errors.CodeUnknown
		}
		defer f.Close()
		out = f
	}

	app := &app{log: log, out: out}

	var err error
	switch files := flags.Args(); {
	case len(files) == 0:
		err = app.renderStdin()
	case flags.Watch:
		err = app.watch(files)
	default:
		err = app.renderFiles(files)
	}
	if err != nil {
		log.Errf(logger.Red, "%v", err)
		if typed, ok := err.(errors.ShparseError); ok {
			return typed.Code()
		}
		return errors.CodeUnknown
	}
	return errors.CodeOk
}

type app struct {
	log *logger.Logger
	out io.Writer
}

func (a *app) renderStdin() error {
	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		return err
	}
	return a.render("stdin", src)
}

// renderFiles parses every file concurrently, then renders in argument
// order. Parses share no state, so the only coordination needed is the
// final ordering.
func (a *app) renderFiles(files []string) error {
	sources := make([][]byte, len(files))
	var g errgroup.Group
	for i, file := range files {
		g.Go(func() error {
			src, err := readScript(file)
			if err != nil {
				return err
			}
			sources[i] = src
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for i, file := range files {
		if len(files) > 1 && !flags.Silent {
			a.log.Outf(logger.Green, "== %s", file)
		}
		if err := a.render(file, sources[i]); err != nil {
			return err
		}
	}
	return nil
}

// render runs one source through tokenize/parse and the selected view.
func (a *app) render(name string, src []byte) error {
	if flags.Tokens {
		return render.Tokens(a.out, shparse.Tokenize(string(src)))
	}

	script, err := shparse.ParseWithOptions(string(src), shparse.WithMaxDepth(flags.MaxDepth))
	if err != nil {
		return err
	}
	if flags.Verbose {
		a.logStatements(name, src, script)
	}
	return render.Render(a.out, flags.Format, script)
}

// logStatements points at each top-level statement in the source, with
// the script highlighted for context.
func (a *app) logStatements(name string, src []byte, script *ast.Script) {
	for _, stmt := range script.Statements {
		a.log.Errf(logger.Magenta, "shparse: %s: %s at %s:%d:%d",
			name, stmt.Type(), name, stmt.Position().Line, stmt.Position().Column)
		a.log.Errf(logger.Default, "%s", snippet.New(src,
			snippet.WithSpan(stmt.Position()),
			snippet.WithPadding(1),
		).String())
	}
}

func readScript(file string) ([]byte, error) {
	src, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ScriptNotFoundError{URI: file}
		}
		return nil, errors.ScriptReadError{URI: file, Err: err}
	}
	return src, nil
}
