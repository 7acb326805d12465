package filters

import (
	"github.com/karthickk/tmplutil/internal/services"
	"github.com/spf13/cobra"
)

func newBooleanCmd() *cobra.Command {
	var trueLabel, falseLabel string

	cmd := &cobra.Command{
		Use:     "boolean [value]",
		Aliases: []string{"bool"},
		Short:   "Print a label for a truthy or falsy value",
		Long: `Print the true label for true, t, yes, y, 1 and -1 (case-insensitive)
and the false label for anything else.`,
		Example: `  tmplutil boolean yes
  tmplutil boolean 0 --true Enabled --false Disabled`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := services.FromCommand(cmd)
			if err != nil {
				return err
			}

			value, err := valueArg(args, "Value:")
			if err != nil {
				return err
			}

			defaults := rt.Extension.Defaults()
			if !cmd.Flags().Changed("true") {
				trueLabel = defaults.TrueLabel
			}
			if !cmd.Flags().Changed("false") {
				falseLabel = defaults.FalseLabel
			}

			result, err := rt.Extension.Boolean(trueLabel, falseLabel, value)
			if err != nil {
				return err
			}
			printResult(cmd, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&trueLabel, "true", "", "Label for true values (default from config)")
	cmd.Flags().StringVar(&falseLabel, "false", "", "Label for false values (default from config)")

	return cmd
}
