package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/termfold/ttyprompt/pkg/console"
	"github.com/termfold/ttyprompt/pkg/lineio"
	"github.com/termfold/ttyprompt/pkg/prompt"
	"github.com/termfold/ttyprompt/pkg/tty"
)

var askSensitiveFlag bool
var askConfirmFlag bool

func newAskCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <label>",
		Short: "Prompt for a single value and print it to stdout",
		Long: `Prompt for a single value and print it to stdout.

The prompt is written to the terminal itself, not to stdout, so the value
can be captured while the prompt stays visible:

  TOKEN="$(ttyprompt ask --sensitive 'API token: ')"`,
		RunE: ask,
		Args: cobra.ExactArgs(1),
	}

	cmd.Flags().BoolVarP(&askSensitiveFlag, "sensitive", "s", false, "Disable echo while the value is typed")
	cmd.Flags().Bool("confirm", false, "Ask for the value twice and require both entries to match")
	return cmd
}

func ask(cmd *cobra.Command, args []string) error {
	confirm, err := cmd.Flags().GetBool("confirm")
	if err != nil {
		return err
	}
	askConfirmFlag = confirm

	term, err := prompt.Open()
	if err != nil {
		if errors.Is(err, tty.ErrNoTerminal) {
			return fmt.Errorf("an interactive terminal is required: %w", err)
		}
		return err
	}
	defer term.Close()
	console.Debugf("prompting on %s", term.Source())

	value, err := readValue(term, args[0], askSensitiveFlag)
	if err != nil {
		return err
	}

	if askConfirmFlag {
		again, err := readValue(term, "Confirm: ", askSensitiveFlag)
		if err != nil {
			return err
		}
		if again != value {
			return errors.New("entries do not match")
		}
	}

	console.Output(value)
	return nil
}

func readValue(term *prompt.Terminal, label string, sensitive bool) (string, error) {
	read := term.Prompt
	if sensitive {
		read = term.PromptSensitive
	}
	value, err := read(label)
	if errors.Is(err, lineio.ErrEndOfInput) {
		return "", fmt.Errorf("terminal closed before a value was entered: %w", err)
	}
	return value, err
}
