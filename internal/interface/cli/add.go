package cli

import (
	"fmt"
	"unicode"

	"github.com/spf13/cobra"
)

var addName string

var addCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a new reminder",
	Long: `Add a new reminder.

The filename is derived from the reminder text (letters and digits only,
truncated, uniqued against existing files), or supplied with -n.

Examples:
  remindwindows add "buy milk"
  remindwindows add "buy milk" -n groceries`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addName, "filename", "n", "", `The filename to use; ".rem" is appended`)
}

func runAdd(cmd *cobra.Command, args []string) error {
	text := args[0]
	if text == "" {
		return fmt.Errorf("reminder cannot be empty")
	}
	for _, r := range text {
		if !unicode.IsPrint(r) && r != '\n' && r != '\t' {
			return fmt.Errorf("reminder must be printable")
		}
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}

	var name string
	if addName != "" {
		name, err = st.ResolveNew(addName)
		if err != nil {
			return err
		}
		if err := st.AddNamed(name, text); err != nil {
			return err
		}
	} else {
		name, err = st.Add(text)
		if err != nil {
			return err
		}
	}

	fmt.Printf("Added %s\n", name)
	return nil
}
