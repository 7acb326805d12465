package filters

import (
	"github.com/karthickk/tmplutil/internal/services"
	"github.com/spf13/cobra"
)

func newPriceCmd() *cobra.Command {
	var (
		decimals           int
		decimalSeparator   string
		thousandsSeparator string
	)

	cmd := &cobra.Command{
		Use:   "price [amount]",
		Short: "Format an amount as a dollar price",
		Example: `  tmplutil price 1234.5
  tmplutil price 1234567.891 --decimals 3 --decimal-sep , --thousands-sep .`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := services.FromCommand(cmd)
			if err != nil {
				return err
			}

			value, err := valueArg(args, "Amount:")
			if err != nil {
				return err
			}

			f := rt.Extension.Defaults().Price
			if cmd.Flags().Changed("decimals") {
				f.Decimals = decimals
			}
			if cmd.Flags().Changed("decimal-sep") {
				f.DecimalSeparator = decimalSeparator
			}
			if cmd.Flags().Changed("thousands-sep") {
				f.ThousandsSeparator = thousandsSeparator
			}

			result, err := rt.Extension.Price(f.Decimals, f.DecimalSeparator, f.ThousandsSeparator, value)
			if err != nil {
				return err
			}
			printResult(cmd, result)
			return nil
		},
	}

	cmd.Flags().IntVarP(&decimals, "decimals", "d", 0, "Number of decimal places (default from config)")
	cmd.Flags().StringVar(&decimalSeparator, "decimal-sep", "", "Decimal separator (default from config)")
	cmd.Flags().StringVar(&thousandsSeparator, "thousands-sep", "", "Thousands separator (default from config)")

	return cmd
}
