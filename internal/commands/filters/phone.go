package filters

import (
	"github.com/karthickk/tmplutil/internal/services"
	"github.com/spf13/cobra"
)

func newPhoneCmd() *cobra.Command {
	var phoneFormat string

	cmd := &cobra.Command{
		Use:   "phone [number]",
		Short: "Format a ten or eleven digit phone number",
		Long: `Format a phone number using a template of $1 (country code), $2 (area code),
$3 (exchange) and $4 (line). Numbers without ten or eleven digits are printed unchanged.`,
		Example: `  # Default format
  tmplutil phone 5551234567

  # Custom format
  tmplutil phone 15551234567 --format '+$1 $2.$3.$4'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := services.FromCommand(cmd)
			if err != nil {
				return err
			}

			value, err := valueArg(args, "Phone number:")
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("format") {
				phoneFormat = rt.Extension.Defaults().PhoneFormat
			}

			result, err := rt.Extension.Phone(phoneFormat, value)
			if err != nil {
				return err
			}
			printResult(cmd, result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&phoneFormat, "format", "f", "", "Phone template (default from config)")

	return cmd
}
