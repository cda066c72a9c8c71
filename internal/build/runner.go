package build

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/egoavara/cargo-i18n/internal/crate"
	"github.com/egoavara/cargo-i18n/internal/i18n"
)

// ErrMissingTools is returned when external tools required by the config are not installed.
var ErrMissingTools = errors.New("required tools are not installed")

// Request identifies the crate to localize and the config file that governs it.
type Request struct {
	Path           string
	ConfigFileName string
}

// Runner performs the localization build for a crate.
type Runner interface {
	Run(ctx context.Context, req Request) error
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(ctx context.Context, req Request) error

// Run calls f(ctx, req).
func (f RunnerFunc) Run(ctx context.Context, req Request) error {
	return f(ctx, req)
}

// gettextTools are needed by every crate using the gettext system.
var gettextTools = []string{"msgcat", "msginit", "msgmerge", "msgfmt"}

// Preflight opens the crate hierarchy, checks that the tools its config
// needs are on PATH and prints a report.
type Preflight struct {
	out      io.Writer
	tr       i18n.Translator
	lookPath func(file string) (string, error)
}

var _ Runner = (*Preflight)(nil)

// NewPreflight creates a Preflight runner writing its report to out
func NewPreflight(out io.Writer, tr i18n.Translator) *Preflight {
	return &Preflight{
		out:      out,
		tr:       tr,
		lookPath: exec.LookPath,
	}
}

// Tool is an external program and where it was found
type Tool struct {
	Name string
	Path string // empty when not found
}

// Run implements Runner.
func (p *Preflight) Run(ctx context.Context, req Request) error {
	root, err := crate.Open(req.Path, req.ConfigFileName, nil)
	if err != nil {
		return err
	}

	crates, err := collect(ctx, root)
	if err != nil {
		return err
	}

	tools := p.checkTools(requiredTools(crates))
	if err := p.report(crates, tools); err != nil {
		return err
	}

	var missing []string
	for _, t := range tools {
		if t.Path == "" {
			missing = append(missing, t.Name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingTools, strings.Join(missing, ", "))
	}
	return nil
}

// collect returns root followed by all of its subcrates, breadth first.
// A crate listed twice is visited once.
func collect(ctx context.Context, root *crate.Crate) ([]*crate.Crate, error) {
	crates := []*crate.Crate{root}
	seen := map[string]bool{cleanPath(root.Path): true}
	for i := 0; i < len(crates); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		subs, err := crates[i].Subcrates()
		if err != nil {
			return nil, err
		}
		for _, sub := range subs {
			if key := cleanPath(sub.Path); !seen[key] {
				seen[key] = true
				crates = append(crates, sub)
			}
		}
	}
	return crates, nil
}

func cleanPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

func requiredTools(crates []*crate.Crate) []string {
	var tools []string
	seen := make(map[string]bool)
	add := func(names ...string) {
		for _, n := range names {
			if !seen[n] {
				seen[n] = true
				tools = append(tools, n)
			}
		}
	}

	for _, c := range crates {
		g := c.Config.Gettext
		if g == nil {
			continue
		}
		add(gettextTools...)
		if g.UseXtr() {
			add("xtr")
		}
	}
	return tools
}

func (p *Preflight) checkTools(names []string) []Tool {
	tools := make([]Tool, 0, len(names))
	for _, name := range names {
		path, err := p.lookPath(name)
		if err != nil {
			path = ""
		}
		tools = append(tools, Tool{Name: name, Path: path})
	}
	return tools
}
