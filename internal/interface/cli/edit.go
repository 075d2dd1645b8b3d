package cli

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:     "edit <ref>",
	Aliases: []string{"vim"},
	Short:   "Edit an existing reminder",
	Long: `Open the backing file of a reminder in your editor.

The editor comes from config, $VISUAL, or $EDITOR, falling back to vim.
A running watch process picks the change up as soon as the editor writes
the file.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}

	name, err := st.ResolveExisting(args[0])
	if err != nil {
		return err
	}

	// The configured editor may carry flags ("code --wait").
	editorArgs := strings.Fields(cfg.EditorCommand())
	editorArgs = append(editorArgs, st.Path(name))

	editor := exec.Command(editorArgs[0], editorArgs[1:]...)
	editor.Stdin = os.Stdin
	editor.Stdout = os.Stdout
	editor.Stderr = os.Stderr
	if err := editor.Run(); err != nil {
		return fmt.Errorf("editor exited with error: %w", err)
	}
	return nil
}
