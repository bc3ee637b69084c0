// inlinehtml converts lines of lightly annotated text into HTML.
//
// Each non-blank line of input becomes one element
// (a paragraph by default) with **bold**, *italic*, and `code`
// regions promoted to the matching inline elements.
// Run 'inlinehtml -h' for usage.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"runtime/debug"

	"braces.dev/errtrace"
	"go.abhg.dev/inlinehtml/internal/errdefer"
	"go.abhg.dev/inlinehtml/internal/inline"
)

var _version = "dev"

func init() {
	if info, ok := debug.ReadBuildInfo(); ok && _version == "dev" {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			_version = v
		}
	}
}

func main() {
	cmd := mainCmd{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdin  io.Reader // == os.Stdin
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	if err := cmd.run(opts); err != nil {
		cmd.log.Printf("inlinehtml: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) (err error) {
	debugw, err := opts.Debug.Create(cmd.Stderr)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, debugw)
	debugLog := log.New(debugw, "", 0)

	gen := Generator{
		Log:   debugLog,
		Stdin: cmd.Stdin,
		Converter: &inline.Converter{
			Rules: opts.Rules,
			Tag:   opts.Tag,
			Jobs:  opts.Jobs,
			Log:   debugLog,
		},
		Normalize: opts.Normalize,
	}
	return errtrace.Wrap(gen.Generate(context.Background(), cmd.Stdout, opts.Inputs))
}
