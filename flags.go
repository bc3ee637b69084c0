package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"braces.dev/errtrace"
	"github.com/peterbourgon/ff/v3"
	"go.abhg.dev/inlinehtml/internal/flagvalue"
	"go.abhg.dev/inlinehtml/internal/inline"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// _envVarPrefix is the prefix for environment variables
// that may be used in place of flags.
const _envVarPrefix = "INLINEHTML"

// params holds all arguments for inlinehtml.
type params struct {
	version bool
	help    Help

	Config string
	Debug  flagvalue.FileSwitch

	Tag       string
	Rules     []inline.Rule
	Normalize bool
	Jobs      int

	// Files to read. Empty or "-" for stdin.
	Inputs []string
}

// cliParser parses the command line arguments for inlinehtml.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	flag := flag.NewFlagSet("inlinehtml", flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		DefaultHelp.Write(cmd.Stderr)
	}

	var p params

	// Conversion:
	flag.StringVar(&p.Tag, "tag", inline.DefaultTag, "")
	flag.Var(flagvalue.ListOf(&p.Rules), "rule", "")
	flag.BoolVar(&p.Normalize, "normalize", false, "")
	flag.IntVar(&p.Jobs, "jobs", 0, "")

	// Program-level:
	flag.StringVar(&p.Config, "config", "", "")
	flag.Var(&p.Debug, "debug", "")
	flag.BoolVar(&p.version, "version", false, "")
	flag.Var(&p.help, "help", "")
	flag.Var(&p.help, "h", "")

	return &p, flag
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, flag := cmd.newFlagSet()
	err := ff.Parse(flag, args,
		ff.WithEnvVarPrefix(_envVarPrefix),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	)
	if err != nil {
		if !errors.Is(err, errHelp) {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errtrace.Wrap(err)
	}
	args = flag.Args()

	if p.version {
		fmt.Fprintln(cmd.Stdout, "inlinehtml", _version)
		return nil, errHelp
	}

	if p.help == DefaultHelp && len(args) > 0 {
		// The user might have done "-h foo"
		// instead of "-h=foo".
		// If the argument is a known help topic,
		// take it.
		var h Help
		if err := h.Set(args[0]); err == nil && h.Known() {
			p.help = h
		}
	}

	switch p.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := p.help.Write(cmd.Stderr); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errHelp
	}

	if p.Tag == "" {
		fmt.Fprintln(cmd.Stderr, "-tag must not be empty.")
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	if p.Jobs < 0 {
		fmt.Fprintln(cmd.Stderr, "-jobs must not be negative.")
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	p.Inputs = args
	return p, nil
}
