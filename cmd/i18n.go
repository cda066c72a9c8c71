package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/egoavara/cargo-i18n/internal/crate"
	"github.com/egoavara/cargo-i18n/internal/i18n"
	"github.com/egoavara/cargo-i18n/internal/version"
)

// SubcommandName is the cargo subcommand handled by this binary.
const SubcommandName = "i18n"

type i18nOptions struct {
	path           string
	configFileName string
}

// ShortAbout returns the one line description of the i18n subcommand.
func ShortAbout(tr i18n.Translator) string {
	return tr.Localize(msgShortAbout, nil)
}

// LongAbout returns the full description of the i18n subcommand. It embeds
// ShortAbout.
func LongAbout(tr i18n.Translator) string {
	return tr.Localize(msgLongAbout, map[string]any{"ShortAbout": ShortAbout(tr)})
}

func (s *Shell) newI18nCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     SubcommandName,
		Short:   ShortAbout(s.tr),
		Long:    LongAbout(s.tr),
		Version: version.Version,
		Args:    cobra.NoArgs,
		RunE:    s.runI18n,
	}

	cmd.Flags().StringVar(&s.opts.path, "path", "", s.tr.Localize(msgPathFlag, nil))
	cmd.Flags().StringVarP(&s.opts.configFileName, "config-file-name", "c", crate.DefaultConfigFileName,
		s.tr.Localize(msgConfigFileNameFlag, nil))

	return cmd
}

// runI18n records the invocation. The runner is called later by Dispatch.
func (s *Shell) runI18n(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("path") {
		info, err := os.Stat(s.opts.path)
		if err != nil || !info.IsDir() {
			return &ArgumentParseError{
				Token: s.opts.path,
				Err:   errors.New(s.tr.Localize(msgErrPath, map[string]any{"Path": s.opts.path})),
			}
		}
	}

	*s.inv = Invocation{
		Outcome:        OutcomeBuild,
		Subcommand:     SubcommandName,
		Path:           s.opts.path,
		ConfigFileName: s.opts.configFileName,
	}
	return nil
}
