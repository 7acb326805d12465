package params

import (
	"fmt"
	"strings"

	"github.com/karthickk/tmplutil/internal/services"
	"github.com/karthickk/tmplutil/pkg/container"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewParamsCmd creates the params command
func NewParamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "params",
		Aliases: []string{"param", "parameters"},
		Short:   "Inspect the parameters published from configuration",
		Long: `Inspect the container built from configuration: every setting is published
as a utility.* parameter, and the services.yaml and branding.yaml resources
register their service definitions.`,
		Example: `  # List all parameters
  tmplutil params list

  # Only the filter defaults
  tmplutil params list --prefix utility.filters

  # Show one parameter
  tmplutil params get utility.filters.price

  # Show registered services
  tmplutil params services`,
	}

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newServicesCmd())

	return cmd
}

func loadContainer(cmd *cobra.Command) (*container.Container, error) {
	rt, err := services.FromCommand(cmd)
	if err != nil {
		return nil, err
	}
	return rt.Container()
}

func newListCmd() *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List parameters",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadContainer(cmd)
			if err != nil {
				return err
			}

			data := [][]string{{"NAME", "VALUE"}}
			for _, name := range c.ParameterNames() {
				if !strings.HasPrefix(name, prefix) {
					continue
				}
				value, _ := c.Parameter(name)
				data = append(data, []string{name, summarize(value)})
			}

			if len(data) == 1 {
				fmt.Fprintln(cmd.OutOrStdout(), "No parameters found")
				return nil
			}

			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}

	cmd.Flags().StringVarP(&prefix, "prefix", "p", "", "Only list parameters starting with prefix")

	return cmd
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get NAME",
		Short: "Print a parameter value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadContainer(cmd)
			if err != nil {
				return err
			}

			value, ok := c.Parameter(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", container.ErrUnknownParameter, args[0])
			}

			switch value.(type) {
			case map[string]any, []any:
				out, err := yaml.Marshal(value)
				if err != nil {
					return fmt.Errorf("failed to encode %s: %w", args[0], err)
				}
				fmt.Fprint(cmd.OutOrStdout(), string(out))
			default:
				fmt.Fprintln(cmd.OutOrStdout(), value)
			}
			return nil
		},
	}
}

func newServicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "services",
		Aliases: []string{"svc"},
		Short:   "List registered service definitions",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadContainer(cmd)
			if err != nil {
				return err
			}

			data := [][]string{{"NAME", "CLASS", "TAGS", "RESOURCE"}}
			for _, name := range c.DefinitionNames() {
				def, _ := c.Definition(name)
				data = append(data, []string{name, def.Class, strings.Join(def.Tags, ","), def.Resource})
			}

			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}
}

// summarize renders nested values as a count so the table stays readable
func summarize(value any) string {
	switch v := value.(type) {
	case map[string]any:
		return fmt.Sprintf("{%d keys}", len(v))
	case []any:
		return fmt.Sprintf("[%d items]", len(v))
	default:
		return fmt.Sprint(v)
	}
}
