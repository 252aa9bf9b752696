package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/dastanaron/html2nix/internal/config"
	"github.com/dastanaron/html2nix/internal/version"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
//
// Settings are layered: defaults, then HTML2NIX_* environment variables,
// then the --config YAML file, then flags given on the command line.
func Parse(args []string, output io.Writer) (*config.Config, bool, error) {
	flagSet := flag.NewFlagSet("html2nix", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
html2nix - convert a NETSCAPE bookmarks export into Nix for Home Manager's
programs.firefox.profiles.<name>.bookmarks option.

Usage:
  html2nix [-i bookmarks.html] [-o bookmarks.nix] [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	defaults := config.NewConfig()

	inputFlag := flagSet.String("input", defaults.InputPath, "Path to the bookmarks HTML export.")
	iFlag := flagSet.String("i", defaults.InputPath, "Path to the bookmarks HTML export (shorthand).")
	outputFlag := flagSet.String("output", "", "Path to write the Nix expression to. Defaults to stdout.")
	oFlag := flagSet.String("o", "", "Path to write the Nix expression to (shorthand).")
	indentFlag := flagSet.Int("indent", defaults.IndentSize, "Number of indent characters per level.")
	indentStyleFlag := flagSet.String("indent-style", defaults.IndentStyle, "Indent character. Options: 'space' or 'tab'.")
	noBracketsFlag := flagSet.Bool("no-brackets", false, "Do not wrap the output in [ ].")
	depthFlag := flagSet.Int("depth", defaults.Depth, "Starting indent depth of the output.")
	configFlag := flagSet.String("config", "", "Path to a YAML config file.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	prettyLogFlag := flagSet.Bool("pretty-log", defaults.PrettyLog, "Human readable logs instead of JSON.")
	previewFlag := flagSet.Bool("preview", false, "Browse the parsed bookmarks in a terminal UI.")
	versionFlag := flagSet.Bool("version", false, "Print version information and exit.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if *versionFlag {
		fmt.Fprintln(output, version.String())
		return nil, true, nil
	}

	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0))}
	}

	cfg := config.NewConfig().ApplyEnv()

	if *configFlag != "" {
		if err := cfg.LoadFile(*configFlag); err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
	}

	// Only flags present on the command line override env and file values
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.InputPath = *inputFlag
		case "i":
			cfg.InputPath = *iFlag
		case "output":
			cfg.OutputPath = *outputFlag
		case "o":
			cfg.OutputPath = *oFlag
		case "indent":
			cfg.IndentSize = *indentFlag
		case "indent-style":
			cfg.IndentStyle = *indentStyleFlag
		case "no-brackets":
			cfg.Brackets = !*noBracketsFlag
		case "depth":
			cfg.Depth = *depthFlag
		case "log-level":
			cfg.LogLevel = *logLevelFlag
		case "pretty-log":
			cfg.PrettyLog = *prettyLogFlag
		}
	})
	cfg.Preview = *previewFlag

	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return cfg, false, nil
}
