package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkells/remindwindows/internal/core/config"
	"github.com/mkells/remindwindows/internal/core/store"
)

var (
	remindDir   string
	versionInfo string
)

// SetVersion sets the version information from build-time ldflags
func SetVersion(version, commit, date string) {
	versionInfo = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
	rootCmd.Version = versionInfo
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "remindwindows",
	Short: "Display reminders as persistent windows",
	Long: `remindwindows - keep reminders in front of you until they are done

Each reminder is one flat text file in the reminder directory. The watch
command displays every reminder as a window and keeps the display in sync
with the directory; add, list, show, delete, and edit manipulate the files.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		// No subcommand: show usage and fail, so scripts notice.
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&remindDir, "dir", "", "Reminder directory (default ~/.remindwindows)")
}

// openStore loads config, applies the --dir override, and opens the
// reminder directory.
func openStore() (*store.Store, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if remindDir != "" {
		cfg.Dir = remindDir
	}

	st, err := store.Open(cfg.Dir)
	if err != nil {
		return nil, nil, err
	}
	st.SetMaxBase(cfg.MaxBaseLen)
	return st, cfg, nil
}
