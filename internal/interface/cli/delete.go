package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:     "delete <ref>...",
	Aliases: []string{"rm", "del"},
	Short:   "Delete one or more reminders",
	Long: `Delete reminder files, by filename or index.

Prompts per file unless --force. Indexes are resolved against the listing
before anything is deleted, so "delete 0 1" removes the first two entries
of the current list.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Do not prompt for deletion")
}

func runDelete(cmd *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}

	// Resolve everything up front: index references must all point at the
	// listing as it stands now, and a bad reference aborts before any file
	// is touched.
	names := make([]string, 0, len(args))
	for _, ref := range args {
		name, err := st.ResolveExisting(ref)
		if err != nil {
			return err
		}
		names = append(names, name)
	}

	in := bufio.NewScanner(os.Stdin)
	for _, name := range names {
		if !deleteForce {
			fmt.Printf("Delete %s? (Y/n): ", name)
			if !in.Scan() {
				break
			}
			answer := strings.TrimSpace(in.Text())
			if answer != "" && answer != "y" && answer != "Y" {
				continue
			}
		}
		if err := st.Delete(name); err != nil {
			return err
		}
	}
	return nil
}
