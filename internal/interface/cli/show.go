package cli

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var showCopy bool

var showCmd = &cobra.Command{
	Use:     "show <ref>",
	Aliases: []string{"cat"},
	Short:   "Show a reminder, by filename or index",
	Long: `Print the raw text of one reminder.

The reference is a filename ("groceries" or "groceries.rem") or a
zero-based index into the list output.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showCopy, "copy", false, "Also copy the text to the clipboard")
}

func runShow(cmd *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}

	name, err := st.ResolveExisting(args[0])
	if err != nil {
		return err
	}

	text, err := st.Read(name)
	if err != nil {
		return err
	}

	fmt.Println(text)

	if showCopy {
		if err := clipboard.WriteAll(text); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
	}
	return nil
}
