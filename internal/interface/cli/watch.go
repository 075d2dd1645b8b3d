package cli

import (
	"fmt"
	"io"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mkells/remindwindows/internal/core/daemon"
	"github.com/mkells/remindwindows/internal/core/reminder"
	"github.com/mkells/remindwindows/internal/interface/display"
)

var watchNoDisplay bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Display reminders and keep them in sync with the directory",
	Long: `Run the display process.

Every reminder file becomes a window on the board. Files added, edited, or
deleted while watching - from another terminal, an editor, anything - are
reflected immediately. Runs until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().BoolVar(&watchNoDisplay, "no-display", false, "Log reminder changes instead of drawing the board")
}

func runWatch(cmd *cobra.Command, args []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if watchNoDisplay {
		return daemon.New(st, logPresenter{log.WithPrefix("display")}).Run(ctx)
	}

	// The board owns the terminal; daemon logging would tear it up.
	log.SetOutput(io.Discard)

	program := tea.NewProgram(display.New(st, cfg.TitleTemplate), tea.WithAltScreen())
	d := daemon.New(st, display.NewPresenter(program))

	daemonDone := make(chan error, 1)
	go func() {
		daemonDone <- d.Run(ctx)
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		stop()
		<-daemonDone
		return fmt.Errorf("display error: %w", err)
	}
	stop()
	return <-daemonDone
}

// logPresenter is the headless display: one log line per signal.
type logPresenter struct {
	logger *log.Logger
}

func (p logPresenter) ReminderAppeared(rec reminder.Record) {
	p.logger.Info("reminder appeared", "name", rec.Name, "text", rec.Text)
}

func (p logPresenter) ReminderRemoved(rec reminder.Record) {
	p.logger.Info("reminder removed", "name", rec.Name)
}
