package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List reminder files",
	Long: `List all reminders, alphabetically by filename.

The index column is the zero-based reference accepted by show, delete,
and edit. It is assigned over the same alphabetical order on every call,
so indexes are stable while the file set is unchanged.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}

	entries, err := st.ListEntries()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No reminders. Add one with: remindwindows add <text>")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for i, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i, e.Name, humanize.Time(e.ModTime), humanize.Bytes(uint64(e.Size)))
	}
	return w.Flush()
}
