package cmd

import "github.com/egoavara/cargo-i18n/internal/i18n"

var (
	// Shown when running the binary directly as `cargo-i18n`.
	msgRootAbout = &i18n.Message{
		ID:    "cmd.root.about",
		Other: `This binary is designed to be executed as a cargo subcommand using "cargo i18n".`,
	}
	// Shown by `cargo i18n -h`.
	msgShortAbout = &i18n.Message{
		ID:    "cmd.i18n.short",
		Other: "A Cargo sub-command to extract and build localization resources.",
	}
	// Shown by `cargo i18n --help`. ShortAbout is the short about message.
	msgLongAbout = &i18n.Message{
		ID: "cmd.i18n.long",
		Other: `{{.ShortAbout}}

This command reads the "i18n.toml" config in your crate root, and based on the configuration there, proceeds to extract localization resources, and build them.

If you are using the gettext localization system, you will need to have the following gettext tools installed: "msgcat", "msginit", "msgmerge" and "msgfmt". You will also need to have the "xtr" tool installed, which can be installed using "cargo install xtr".`,
	}
	msgPathFlag = &i18n.Message{
		ID:    "cmd.i18n.flag.path",
		Other: `Path to the crate you want to localize (if not the current directory). The crate needs to contain "i18n.toml" in its root.`,
	}
	msgConfigFileNameFlag = &i18n.Message{
		ID:    "cmd.i18n.flag.configFileName",
		Other: "The name of the i18n config file for this crate",
	}
	msgHelpFlag = &i18n.Message{
		ID:    "cmd.flag.help",
		Other: "help for {{.Command}}",
	}
	msgVersionFlag = &i18n.Message{
		ID:    "cmd.flag.version",
		Other: "version for {{.Command}}",
	}
	msgHelpCommand = &i18n.Message{
		ID:    "cmd.help.short",
		Other: "Help about any command",
	}
	msgVersion = &i18n.Message{
		ID:    "cmd.version",
		Other: "{{.Name}} version {{.Version}}",
	}
	msgVersionCommit = &i18n.Message{
		ID:    "cmd.version.commit",
		Other: "commit: {{.Commit}}",
	}
	msgVersionBuilt = &i18n.Message{
		ID:    "cmd.version.built",
		Other: "built: {{.Date}}",
	}

	msgUsage = &i18n.Message{
		ID:    "cmd.usage.usage",
		Other: "Usage:",
	}
	msgUsageAliases = &i18n.Message{
		ID:    "cmd.usage.aliases",
		Other: "Aliases:",
	}
	msgUsageCommands = &i18n.Message{
		ID:    "cmd.usage.commands",
		Other: "Available Commands:",
	}
	msgUsageFlags = &i18n.Message{
		ID:    "cmd.usage.flags",
		Other: "Flags:",
	}
	msgUsageGlobalFlags = &i18n.Message{
		ID:    "cmd.usage.globalFlags",
		Other: "Global Flags:",
	}
	msgUsageMore = &i18n.Message{
		ID:    "cmd.usage.more",
		Other: `Use "{{.Command}} [command] --help" for more information about a command.`,
	}

	msgUnknownCommand = &i18n.Message{
		ID:    "cmd.unknown",
		Other: `Unknown command "{{.Command}}".`,
	}
	msgDidYouMean = &i18n.Message{
		ID:    "cmd.unknown.suggest",
		Other: `Unknown command "{{.Command}}". Did you mean "{{.Suggestion}}"?`,
	}

	msgErrPath = &i18n.Message{
		ID:    "err.path",
		Other: `The crate path "{{.Path}}" does not exist or is not a directory.`,
	}
	msgErrArguments = &i18n.Message{
		ID:    "err.arguments",
		Other: "Invalid arguments: {{.Error}}",
	}
	msgErrBuild = &i18n.Message{
		ID:    "err.build",
		Other: "Localization failed: {{.Error}}",
	}
	msgErrPrefix = &i18n.Message{
		ID:    "err.prefix",
		Other: "Error:",
	}
)
