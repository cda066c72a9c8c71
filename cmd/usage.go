package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/egoavara/cargo-i18n/internal/i18n"
	"github.com/egoavara/cargo-i18n/internal/version"
)

// usageTemplate is cobra's default usage template with translated headings.
func usageTemplate(tr i18n.Translator) string {
	heading := func(msg *i18n.Message) string {
		return escapeTemplate(tr.Localize(msg, nil))
	}
	more := escapeTemplate(tr.Localize(msgUsageMore, map[string]any{"Command": "\x00"}))
	more = strings.Replace(more, "\x00", "{{.CommandPath}}", 1)

	return heading(msgUsage) + `{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

` + heading(msgUsageAliases) + `
  {{.NameAndAliases}}{{end}}{{if .HasAvailableSubCommands}}

` + heading(msgUsageCommands) + `{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

` + heading(msgUsageFlags) + `
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

` + heading(msgUsageGlobalFlags) + `
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

` + more + `{{end}}
`
}

// versionTemplate renders the --version output for name.
func versionTemplate(tr i18n.Translator, name string) string {
	var b strings.Builder
	b.WriteString(tr.Localize(msgVersion, map[string]any{"Name": name, "Version": version.Version}))
	b.WriteString("\n")
	if version.GitCommit != "" {
		b.WriteString("  " + tr.Localize(msgVersionCommit, map[string]any{"Commit": version.GitCommit}) + "\n")
	}
	if version.BuildDate != "" {
		b.WriteString("  " + tr.Localize(msgVersionBuilt, map[string]any{"Date": version.BuildDate}) + "\n")
	}
	return escapeTemplate(b.String())
}

// escapeTemplate quotes text so cobra's template engine prints it verbatim.
func escapeTemplate(s string) string {
	if !strings.Contains(s, "{{") {
		return s
	}
	return strings.ReplaceAll(s, "{{", `{{"{{"}}`)
}

// localizeBuiltins translates the help and version flags and the help
// command that cobra adds on its own.
func localizeBuiltins(root *cobra.Command, tr i18n.Translator) {
	root.InitDefaultHelpCmd()

	var walk func(c *cobra.Command)
	walk = func(c *cobra.Command) {
		c.InitDefaultHelpFlag()
		if f := c.Flags().Lookup("help"); f != nil {
			f.Usage = tr.Localize(msgHelpFlag, map[string]any{"Command": c.Name()})
		}
		if c.Version != "" {
			c.InitDefaultVersionFlag()
			if f := c.Flags().Lookup("version"); f != nil {
				f.Usage = tr.Localize(msgVersionFlag, map[string]any{"Command": c.Name()})
			}
		}
		if c.Name() == "help" && c.Parent() == root {
			c.Short = tr.Localize(msgHelpCommand, nil)
		}
		for _, sub := range c.Commands() {
			walk(sub)
		}
	}
	walk(root)
}
