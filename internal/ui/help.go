// ABOUTME: Help and usage templates for plugin-readmes, styled with lipgloss
// ABOUTME: Groups commands and lists each global setting with its environment variable
package ui

import (
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Command group IDs shown as separate sections in root help.
const (
	GroupGenerate = "generate"
	GroupInspect  = "inspect"
)

// HelpConfig names the sources a setting can come from besides its flag.
type HelpConfig struct {
	EnvPrefix  string // PLUGIN_READMES
	ConfigFile string // .plugin-readmes.yaml
}

var (
	helpHeadingStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	helpCommandStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	helpMutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
)

// SetupHelpTemplate installs the templates on root and registers its command
// groups. Subcommands inherit both templates.
func SetupHelpTemplate(root *cobra.Command, hc HelpConfig) {
	root.AddGroup(
		&cobra.Group{ID: GroupGenerate, Title: "Generate READMEs:"},
		&cobra.Group{ID: GroupInspect, Title: "Inspect without writing:"},
	)

	cobra.AddTemplateFuncs(template.FuncMap{
		"heading":  func(s string) string { return helpHeadingStyle.Render(s) },
		"command":  func(s string) string { return helpCommandStyle.Render(s) },
		"muted":    func(s string) string { return helpMutedStyle.Render(s) },
		"examples": styleExamples,
		"settings": func(c *cobra.Command) string {
			return settingsTable(c.Root().PersistentFlags(), hc)
		},
		"settingsSource": func() string { return settingsSource(hc) },
	})

	root.SetUsageTemplate(usageTemplate)
	root.SetHelpTemplate(helpTemplate)
}

// envName is the environment variable that overrides a flag.
func envName(prefix, flag string) string {
	return prefix + "_" + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

// settingsTable lists flags with their environment variable and default.
func settingsTable(fs *pflag.FlagSet, hc HelpConfig) string {
	var rows [][]string
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		def := f.DefValue
		if def == "" {
			def = "-"
		}
		rows = append(rows, []string{"--" + f.Name, envName(hc.EnvPrefix, f.Name), def, f.Usage})
	})
	if len(rows) == 0 {
		return ""
	}
	columns := []Column{{Title: "FLAG"}, {Title: "ENVIRONMENT"}, {Title: "DEFAULT"}, {Title: "DESCRIPTION"}}
	lines := strings.Split(strings.TrimRight(RenderTable(columns, rows), "\n"), "\n")
	for i, line := range lines {
		lines[i] = Indent(line, 1)
	}
	return strings.Join(lines, "\n")
}

func settingsSource(hc HelpConfig) string {
	return helpMutedStyle.Render("Flags win over " + hc.EnvPrefix + "_* variables, which win over " +
		hc.ConfigFile + " in the working directory.")
}

// styleExamples mutes "#" comment lines and highlights the commands.
func styleExamples(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		switch trimmed := strings.TrimSpace(line); {
		case trimmed == "":
		case strings.HasPrefix(trimmed, "#"):
			lines[i] = helpMutedStyle.Render(line)
		default:
			lines[i] = helpCommandStyle.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

const helpTemplate = `{{with (or .Long .Short)}}{{. | trimTrailingWhitespaces}}

{{end}}{{if or .Runnable .HasSubCommands}}{{.UsageString}}{{end}}`

const usageTemplate = `{{heading "Usage:"}}{{if .Runnable}}
  {{command .UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{command .CommandPath}} {{muted "<command> [flags]"}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{range $group := .Groups}}

{{heading $group.Title}}{{range $cmds}}{{if (and (eq .GroupID $group.ID) .IsAvailableCommand)}}
  {{command (rpad .Name .NamePadding)}} {{.Short}}{{end}}{{end}}{{end}}{{if not .AllChildCommandsHaveGroup}}

{{heading "Other:"}}{{range $cmds}}{{if (and (eq .GroupID "") (or .IsAvailableCommand (eq .Name "help")))}}
  {{command (rpad .Name .NamePadding)}} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{with .LocalNonPersistentFlags}}{{if .HasAvailableFlags}}

{{heading "Flags:"}}
{{.FlagUsages | trimTrailingWhitespaces}}{{end}}{{end}}{{with settings .}}

{{heading "Settings:"}}
{{.}}
  {{settingsSource}}{{end}}{{if .HasExample}}

{{heading "Examples:"}}
{{examples .Example}}{{end}}{{if .HasAvailableSubCommands}}

Run "{{command (print .CommandPath " <command> --help")}}" for details on a command.{{end}}
`
