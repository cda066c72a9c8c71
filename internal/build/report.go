package build

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/egoavara/cargo-i18n/internal/crate"
	"github.com/egoavara/cargo-i18n/internal/i18n"
)

var (
	msgReportCrate = &i18n.Message{
		ID:    "build.report.crate",
		Other: "Crate {{.Name}} {{.Version}} ({{.Path}})",
	}
	msgReportConfig = &i18n.Message{
		ID:    "build.report.config",
		Other: "Config file: {{.File}}",
	}
	msgReportFallback = &i18n.Message{
		ID:    "build.report.fallback",
		Other: "Fallback language: {{.Language}}",
	}
	msgReportGettext = &i18n.Message{
		ID:    "build.report.gettext",
		Other: "gettext: {{.Languages}} -> {{.OutputDir}}",
	}
	msgReportGettextDirs = &i18n.Message{
		ID:    "build.report.gettextDirs",
		Other: "pot: {{.PotDir}}, po: {{.PoDir}}, mo: {{.MoDir}}",
	}
	msgReportFluent = &i18n.Message{
		ID:    "build.report.fluent",
		Other: "fluent: {{.AssetsDir}}",
	}
	msgReportNoTargets = &i18n.Message{
		ID:    "build.report.noTargets",
		Other: "(no target languages)",
	}
	msgReportTools = &i18n.Message{
		ID:    "build.report.tools",
		Other: "Required tools:",
	}
	msgReportNoTools = &i18n.Message{
		ID:    "build.report.noTools",
		Other: "No external tools are required.",
	}
	msgReportToolMissing = &i18n.Message{
		ID:    "build.report.toolMissing",
		Other: "not found in PATH",
	}
)

type reportStyles struct {
	title   lipgloss.Style
	detail  lipgloss.Style
	ok      lipgloss.Style
	missing lipgloss.Style
}

func (p *Preflight) styles() reportStyles {
	r := lipgloss.NewRenderer(p.out)
	return reportStyles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		detail:  r.NewStyle().Foreground(lipgloss.Color("243")).MarginLeft(2),
		ok:      r.NewStyle().Foreground(lipgloss.Color("42")),
		missing: r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

func (p *Preflight) report(crates []*crate.Crate, tools []Tool) error {
	s := p.styles()
	var b strings.Builder

	for _, c := range crates {
		version := c.Version
		if version == "" {
			version = "-"
		}
		b.WriteString(s.title.Render(p.tr.Localize(msgReportCrate, map[string]any{
			"Name":    c.Name,
			"Version": version,
			"Path":    c.Path,
		})))
		b.WriteString("\n")

		lines := []string{
			p.tr.Localize(msgReportConfig, map[string]any{"File": c.ConfigPath()}),
			p.tr.Localize(msgReportFallback, map[string]any{"Language": c.Config.FallbackLanguage}),
		}
		if g := c.Config.Gettext; g != nil {
			langs := strings.Join(g.TargetLanguages, ", ")
			if langs == "" {
				langs = p.tr.Localize(msgReportNoTargets, nil)
			}
			lines = append(lines, p.tr.Localize(msgReportGettext, map[string]any{
				"Languages": langs,
				"OutputDir": g.OutputDir,
			}))
			lines = append(lines, p.tr.Localize(msgReportGettextDirs, map[string]any{
				"PotDir": g.PotPath(),
				"PoDir":  g.PoPath(),
				"MoDir":  g.MoPath(),
			}))
		}
		if f := c.Config.Fluent; f != nil {
			lines = append(lines, p.tr.Localize(msgReportFluent, map[string]any{"AssetsDir": f.AssetsDir}))
		}
		for _, line := range lines {
			b.WriteString(s.detail.Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(tools) == 0 {
		b.WriteString(p.tr.Localize(msgReportNoTools, nil))
		b.WriteString("\n")
	} else {
		b.WriteString(s.title.Render(p.tr.Localize(msgReportTools, nil)))
		b.WriteString("\n")
		for _, t := range tools {
			if t.Path != "" {
				b.WriteString(s.detail.Render(s.ok.Render("✓ "+t.Name) + "  " + t.Path))
			} else {
				b.WriteString(s.detail.Render(s.missing.Render("✗ "+t.Name) + "  " + p.tr.Localize(msgReportToolMissing, nil)))
			}
			b.WriteString("\n")
		}
	}

	_, err := fmt.Fprint(p.out, b.String())
	return err
}
