package commands

import (
	"github.com/karthickk/tmplutil/internal/services"
	"github.com/karthickk/tmplutil/internal/ui/views"
	"github.com/spf13/cobra"
)

// newInteractiveCmd creates the interactive mode command
func newInteractiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i", "ui", "playground"},
		Short:   "Launch the filter playground",
		Long:    `Launch a terminal UI that applies every filter to the value you type.`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := services.FromCommand(cmd)
			if err != nil {
				return err
			}
			return views.ShowPlayground(rt.Extension)
		},
	}
}
