package filters

import (
	"fmt"
	"time"

	"github.com/karthickk/tmplutil/internal/services"
	"github.com/karthickk/tmplutil/pkg/format"
	"github.com/spf13/cobra"
)

func newTimeAgoCmd() *cobra.Command {
	var (
		granularity int
		suffix      string
		from        string
	)

	cmd := &cobra.Command{
		Use:     "timeago [date]",
		Aliases: []string{"time-ago", "ago"},
		Short:   "Describe how long ago a date was",
		Long: `Describe the time between a date and now (or --from) as a phrase such as
"2 hours ago". Dates may be absolute ("2026-03-01 14:00") or relative
("-3 days", "2 weeks ago", "yesterday").`,
		Example: `  tmplutil timeago "2026-01-01"
  tmplutil timeago --granularity 2 -- "-90 minutes"
  tmplutil timeago "2020-02-29" --from "2026-10-14" -g 3 --suffix earlier`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := services.FromCommand(cmd)
			if err != nil {
				return err
			}

			value, err := valueArg(args, "Date:")
			if err != nil {
				return err
			}

			instant, err := rt.Extension.ParseInstant(value)
			if err != nil {
				return err
			}

			var reference *time.Time
			if from != "" {
				ref, err := rt.Extension.ParseInstant(from)
				if err != nil {
					return fmt.Errorf("invalid --from: %w", err)
				}
				reference = &ref
			}

			defaults := rt.Extension.Defaults()
			if !cmd.Flags().Changed("granularity") {
				granularity = defaults.Granularity
			}
			if !cmd.Flags().Changed("suffix") {
				suffix = defaults.Suffix
			}

			rt.Logger.Debug("computing time ago", rt.Logger.Args("instant", instant, "granularity", granularity))

			phrase, ok := rt.Extension.FormatTimeAgo(instant, reference, format.Granularity(granularity), suffix)
			if !ok {
				printWarning(cmd.ErrOrStderr(), fmt.Sprintf("%s is in the future", instant.Format(time.RFC3339)))
				return nil
			}
			printResult(cmd, phrase)
			return nil
		},
	}

	cmd.Flags().IntVarP(&granularity, "granularity", "g", 0, "Number of units to show, 1 to 6 (default from config)")
	cmd.Flags().StringVarP(&suffix, "suffix", "s", "", "Text after the phrase (default from config)")
	cmd.Flags().StringVar(&from, "from", "", "Reference date instead of now")

	return cmd
}
