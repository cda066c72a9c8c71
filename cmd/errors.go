package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"
)

// Exit codes
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitUsageError = 2
)

// ArgumentParseError reports malformed or missing command line input.
// Token is the offending argument when it could be identified.
type ArgumentParseError struct {
	Token string
	Err   error
}

func (e *ArgumentParseError) Error() string {
	return e.Err.Error()
}

func (e *ArgumentParseError) Unwrap() error {
	return e.Err
}

// CollaboratorError wraps an error returned by the build runner.
type CollaboratorError struct {
	Err error
}

func (e *CollaboratorError) Error() string {
	return e.Err.Error()
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by Shell.Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var parseErr *ArgumentParseError
	if errors.As(err, &parseErr) {
		return ExitUsageError
	}
	return ExitFailure
}

// newParseError wraps an error reported by cobra or pflag.
func newParseError(err error) *ArgumentParseError {
	var parseErr *ArgumentParseError
	if errors.As(err, &parseErr) {
		return parseErr
	}
	return &ArgumentParseError{Token: flagErrorToken(err), Err: err}
}

// flagErrorToken names the flag a pflag error is about, as it was typed.
func flagErrorToken(err error) string {
	var (
		notExist      *pflag.NotExistError
		valueRequired *pflag.ValueRequiredError
	)
	switch {
	case errors.As(err, &notExist):
		return specifiedFlag(notExist.GetSpecifiedName(), notExist.GetSpecifiedShortnames())
	case errors.As(err, &valueRequired):
		return specifiedFlag(valueRequired.GetSpecifiedName(), valueRequired.GetSpecifiedShortnames())
	}
	return offendingToken(err.Error())
}

func specifiedFlag(name, shorthands string) string {
	if shorthands != "" {
		return "-" + shorthands
	}
	return "--" + name
}

// offendingToken extracts the argument named in an untyped flag error message, e.g.
// "unknown flag: --bogus", "unknown shorthand flag: 'x' in -x" or
// "flag needs an argument: --path".
func offendingToken(msg string) string {
	if i := strings.LastIndex(msg, " in "); i >= 0 {
		return strings.TrimSpace(msg[i+len(" in "):])
	}
	if i := strings.LastIndex(msg, ": "); i >= 0 {
		token := strings.TrimSpace(msg[i+len(": "):])
		if strings.HasPrefix(token, "-") {
			return token
		}
	}
	return ""
}

// PrintError writes err to w in the active locale.
func (s *Shell) PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}

	var (
		parseErr  *ArgumentParseError
		collabErr *CollaboratorError
		text      string
	)
	switch {
	case errors.As(err, &parseErr):
		text = s.tr.Localize(msgErrArguments, map[string]any{"Error": parseErr.Err.Error()})
	case errors.As(err, &collabErr):
		text = s.tr.Localize(msgErrBuild, map[string]any{"Error": collabErr.Err.Error()})
	default:
		text = err.Error()
	}

	prefix := lipgloss.NewRenderer(w).NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("196")).
		Render(s.tr.Localize(msgErrPrefix, nil))
	fmt.Fprintf(w, "%s %s\n", prefix, text)
}
