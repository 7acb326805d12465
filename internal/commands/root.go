package commands

import (
	"fmt"
	"os"

	"github.com/karthickk/tmplutil/internal/commands/filters"
	"github.com/karthickk/tmplutil/internal/commands/params"
	"github.com/karthickk/tmplutil/internal/commands/render"
	"github.com/karthickk/tmplutil/internal/services"
	"github.com/karthickk/tmplutil/internal/ui/components"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the base command with every subcommand registered
func NewRootCmd(version string) *cobra.Command {
	var (
		cfgFile string
		debug   bool
	)

	cmd := &cobra.Command{
		Use:   "tmplutil",
		Short: "Template formatting filters for phone numbers, prices, booleans, hashes and relative times",
		Long: `tmplutil formats values the way the utility template filters do:

- phone    (555) 123-4567 from 5551234567
- price    $1,234.50 from 1234.5
- boolean  Yes or No from truthy and falsy values
- md5      hex digest of a string
- timeago  "2 days 6 hours ago" from a date

Use render to apply the filters inside Go templates, and params to inspect the
configuration parameters they are built from.`,
		Version:       version,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			rt, err := services.Setup(services.Options{
				ConfigFile: cfgFile,
				Debug:      debug,
				LogWriter:  cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			cmd.SetContext(services.WithRuntime(cmd.Context(), rt))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./tmplutil.yaml or $HOME/.config/tmplutil/tmplutil.yaml)")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	cmd.SetUsageTemplate(customUsageTemplate())

	for _, filterCmd := range filters.NewFilterCmds() {
		cmd.AddCommand(filterCmd)
	}
	cmd.AddCommand(render.NewRenderCmd())
	cmd.AddCommand(params.NewParamsCmd())
	cmd.AddCommand(newInteractiveCmd())
	cmd.AddCommand(newManCmd())
	cmd.AddCommand(newVersionCmd(version))

	return cmd
}

// Execute executes the root command
func Execute(version string) {
	if err := NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, components.RenderMessage("error", err.Error()))
		os.Exit(1)
	}
}

// customUsageTemplate returns a custom usage template
func customUsageTemplate() string {
	return `Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

Available Commands:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasHelpSubCommands}}

Additional help topics:{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
  {{rpad .CommandPath .CommandPathPadding}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
}
