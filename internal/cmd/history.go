package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"focado/internal/domain"
)

// HistoryCmd groups the history subcommands
type HistoryCmd struct {
	List   HistoryListCmd   `cmd:"" help:"List recorded sessions (default)" default:"1"`
	Stats  HistoryStatsCmd  `cmd:"" help:"Show per-day totals"`
	Export HistoryExportCmd `cmd:"" help:"Export history as JSON"`
}

// HistoryListCmd lists recorded sessions
type HistoryListCmd struct {
	Today bool `help:"Only show today's sessions"`
}

// Run executes the list command
func (h *HistoryListCmd) Run(cli *CLI) error {
	ctx := context.Background()

	var (
		entries []domain.HistoryEntry
		err     error
	)
	if h.Today {
		entries, err = cli.Container.HistoryService.Today(ctx)
	} else {
		entries, err = cli.Container.HistoryService.List(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("No sessions recorded yet.")
		return nil
	}

	for _, entry := range entries {
		ordinal := ""
		if entry.PomodoroNumber > 0 {
			ordinal = fmt.Sprintf("  #%d", entry.PomodoroNumber)
		}
		fmt.Printf("%s  %s %-11s %3dm%s\n",
			entry.CompletedAt.Local().Format("2006-01-02 15:04"),
			entry.SessionType.Symbol(),
			entry.SessionType.Label(),
			entry.DurationMinutes,
			ordinal)
	}

	return nil
}

// HistoryStatsCmd shows per-day aggregates
type HistoryStatsCmd struct{}

// Run executes the stats command
func (h *HistoryStatsCmd) Run(cli *CLI) error {
	days, total, err := cli.Container.HistoryService.Stats(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	if len(days) == 0 {
		fmt.Println("No sessions recorded yet.")
		return nil
	}

	fmt.Println("Date        Pomodoros  Breaks  Focus time")
	fmt.Println(strings.Repeat("─", 42))
	for _, day := range days {
		fmt.Printf("%s  %9d  %6d  %s\n",
			day.Date, day.Pomodoros, day.Breaks, formatMinutes(day.TotalMinutes))
	}
	fmt.Println(strings.Repeat("─", 42))
	fmt.Printf("Total pomodoros: %d\n", total)

	return nil
}

// HistoryExportCmd writes the history as JSON
type HistoryExportCmd struct {
	Output string `help:"Write to a file instead of stdout" short:"o" type:"path"`
}

// Run executes the export command
func (h *HistoryExportCmd) Run(cli *CLI) error {
	w := os.Stdout
	if h.Output != "" {
		f, err := os.Create(h.Output)
		if err != nil {
			return fmt.Errorf("failed to create export file: %w", err)
		}
		defer f.Close()
		w = f
	}

	return cli.Container.HistoryService.Export(context.Background(), w)
}

// formatMinutes renders minutes as "4h 35m" or "35m"
func formatMinutes(minutes int) string {
	if minutes >= 60 {
		return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}
