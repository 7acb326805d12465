package filters

import (
	"github.com/karthickk/tmplutil/internal/services"
	"github.com/spf13/cobra"
)

func newMD5Cmd() *cobra.Command {
	return &cobra.Command{
		Use:     "md5 [text]",
		Short:   "Print the MD5 digest of a string",
		Example: `  tmplutil md5 user@example.com`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := services.FromCommand(cmd)
			if err != nil {
				return err
			}

			value, err := valueArg(args, "Text:")
			if err != nil {
				return err
			}

			result, err := rt.Extension.MD5(value)
			if err != nil {
				return err
			}
			printResult(cmd, result)
			return nil
		},
	}
}
