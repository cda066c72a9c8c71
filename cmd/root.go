package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/egoavara/cargo-i18n/internal/build"
	"github.com/egoavara/cargo-i18n/internal/i18n"
	"github.com/egoavara/cargo-i18n/internal/suggest"
	"github.com/egoavara/cargo-i18n/internal/version"
)

// BinaryName is the name the binary is installed under.
const BinaryName = "cargo-i18n"

// Outcome is the kind of invocation Parse recognized.
type Outcome int

const (
	// OutcomeHandled means cobra already handled the invocation (--help, --version, help).
	OutcomeHandled Outcome = iota
	// OutcomeNoSubcommand means no subcommand was given, or an unknown one.
	OutcomeNoSubcommand
	// OutcomeBuild means the i18n subcommand matched.
	OutcomeBuild
)

// Invocation is a parsed command line
type Invocation struct {
	Outcome        Outcome
	Subcommand     string
	Path           string // empty when --path was not given
	ConfigFileName string
	Unknown        string // the unrecognized word, for OutcomeNoSubcommand
}

type state int

const (
	stateSchemaBuilt state = iota
	stateParsed
	stateDispatched
)

var (
	errNotParsed         = errors.New("command line was not parsed")
	errAlreadyParsed     = errors.New("command line was already parsed")
	errAlreadyDispatched = errors.New("invocation was already dispatched")
)

// Shell is the localized command line of cargo-i18n. A Shell parses and
// dispatches a single invocation.
type Shell struct {
	tr     i18n.Translator
	runner build.Runner
	root   *cobra.Command
	inv    *Invocation
	opts   *i18nOptions
	state  state
}

// NewShell builds the command schema. Every help string is translated with tr
// at this point, so tr must be ready before NewShell is called.
func NewShell(tr i18n.Translator, runner build.Runner) *Shell {
	s := &Shell{
		tr:     tr,
		runner: runner,
		inv:    &Invocation{Outcome: OutcomeHandled},
		opts:   &i18nOptions{},
	}
	s.root = s.newRootCommand()
	return s
}

// SetOutput redirects help, usage and reports. By default they go to
// os.Stdout and os.Stderr.
func (s *Shell) SetOutput(out, errOut io.Writer) {
	s.root.SetOut(out)
	s.root.SetErr(errOut)
}

// Command returns the root command.
func (s *Shell) Command() *cobra.Command {
	return s.root
}

func (s *Shell) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "cargo",
		Short:         s.tr.Localize(msgRootAbout, nil),
		Version:       version.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s.inv.Outcome = OutcomeNoSubcommand
			if len(args) > 0 {
				s.inv.Unknown = args[0]
			}
			return nil
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return newParseError(err)
	})

	root.AddCommand(s.newI18nCommand())

	root.SetUsageTemplate(usageTemplate(s.tr))
	root.SetVersionTemplate(versionTemplate(s.tr, BinaryName))
	localizeBuiltins(root, s.tr)
	return root
}

// Parse validates args against the schema. It prints nothing except
// the help, version and usage output cobra produces for those requests.
func (s *Shell) Parse(args []string) (*Invocation, error) {
	if s.state != stateSchemaBuilt {
		return nil, errAlreadyParsed
	}
	s.state = stateParsed

	// cobra reads os.Args when args is nil
	if args == nil {
		args = []string{}
	}
	s.root.SetArgs(args)
	if _, err := s.root.ExecuteC(); err != nil {
		return nil, newParseError(err)
	}
	return s.inv, nil
}

// Dispatch acts on a parsed invocation. For the i18n subcommand it calls the
// build runner exactly once and wraps its error in a CollaboratorError.
func (s *Shell) Dispatch(ctx context.Context, inv *Invocation) error {
	switch s.state {
	case stateSchemaBuilt:
		return errNotParsed
	case stateDispatched:
		return errAlreadyDispatched
	}
	s.state = stateDispatched

	switch inv.Outcome {
	case OutcomeNoSubcommand:
		return s.printTopLevelHelp(inv.Unknown)
	case OutcomeBuild:
		path := inv.Path
		if path == "" {
			path = "."
		}
		err := s.runner.Run(ctx, build.Request{
			Path:           path,
			ConfigFileName: inv.ConfigFileName,
		})
		if err != nil {
			return &CollaboratorError{Err: err}
		}
	}
	return nil
}

// Execute parses args and dispatches the result.
func (s *Shell) Execute(ctx context.Context, args []string) error {
	inv, err := s.Parse(args)
	if err != nil {
		return err
	}
	return s.Dispatch(ctx, inv)
}

// printTopLevelHelp prints the root help, preceded by a hint when unknown
// looks like a misspelled subcommand.
func (s *Shell) printTopLevelHelp(unknown string) error {
	out := s.root.OutOrStdout()
	if unknown != "" {
		var names []string
		for _, c := range s.root.Commands() {
			if c.IsAvailableCommand() {
				names = append(names, c.Name())
			}
		}
		if match, ok := suggest.Closest(unknown, names); ok {
			fmt.Fprintln(out, s.tr.Localize(msgDidYouMean, map[string]any{"Command": unknown, "Suggestion": match}))
		} else {
			fmt.Fprintln(out, s.tr.Localize(msgUnknownCommand, map[string]any{"Command": unknown}))
		}
		fmt.Fprintln(out)
	}
	return s.root.Help()
}

// Execute runs the shell on the process arguments and exits on failure.
func Execute(ctx context.Context, tr i18n.Translator, runner build.Runner) {
	s := NewShell(tr, runner)
	if err := s.Execute(ctx, os.Args[1:]); err != nil {
		s.PrintError(os.Stderr, err)
		os.Exit(ExitCode(err))
	}
}
