package filters

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ErrMissingValue is returned when no value is given and stdin is not a terminal
var ErrMissingValue = errors.New("missing value")

// isInteractive reports whether missing values can be prompted for
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// ask prompts for a value on the terminal
var ask = func(message string) (string, error) {
	var value string
	prompt := &survey.Input{
		Message: message,
	}
	if err := survey.AskOne(prompt, &value, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}
	return value, nil
}

// NewFilterCmds creates one command per template filter
func NewFilterCmds() []*cobra.Command {
	return []*cobra.Command{
		newPhoneCmd(),
		newPriceCmd(),
		newBooleanCmd(),
		newMD5Cmd(),
		newTimeAgoCmd(),
	}
}

// valueArg returns the positional value, prompting for it when possible
func valueArg(args []string, message string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if !isInteractive() {
		return "", fmt.Errorf("%w: pass it as an argument", ErrMissingValue)
	}
	value, err := ask(message)
	if err != nil {
		return "", fmt.Errorf("failed to read value: %w", err)
	}
	return value, nil
}

func printResult(cmd *cobra.Command, result string) {
	fmt.Fprintln(cmd.OutOrStdout(), result)
}

func printWarning(w io.Writer, msg string) {
	yellow := color.New(color.FgYellow).SprintFunc()
	fmt.Fprintf(w, "%s %s\n", yellow("Warning:"), msg)
}
