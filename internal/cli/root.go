// Package cli wires the cobra command tree for the soundqueue demo
// binary: a root command that loads configuration, optionally seeds a
// catalog, and launches the interactive queue TUI, plus a "version"
// subcommand.
package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rina-voss/soundqueue/internal/catalog"
	"github.com/rina-voss/soundqueue/internal/config"
	"github.com/rina-voss/soundqueue/internal/errmsg"
	"github.com/rina-voss/soundqueue/internal/manager"
	"github.com/rina-voss/soundqueue/internal/store"
	"github.com/rina-voss/soundqueue/internal/tui"
)

// Execute builds and runs the root command.
func Execute() error {
	return rootCmd().Execute()
}

func rootCmd() *cobra.Command {
	var seedPath string

	root := &cobra.Command{
		Use:   "soundqueue",
		Short: "In-memory music queue engine demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(seedPath)
		},
	}
	root.Flags().StringVar(&seedPath, "seed", "", "path to a JSON song catalog to preload")
	root.AddCommand(versionCmd())
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the engine's data model version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("soundqueue core v1")
		},
	}
}

func run(seedPathFlag string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("%s", errmsg.Format(errmsg.OpConfigLoad, err))
	}

	mgr, ok := manager.New(cfg.HeapCapacity)
	if !ok {
		return fmt.Errorf("%s", errmsg.Format(errmsg.OpInitialize, fmt.Errorf("invalid heap capacity %d", cfg.HeapCapacity)))
	}

	seedPath := seedPathFlag
	if seedPath == "" {
		seedPath = cfg.SeedCatalog
	}
	if seedPath != "" {
		songs, err := catalog.Load(seedPath)
		if err != nil {
			return err
		}
		for _, s := range songs {
			mgr.AddSong(s.ID, s.Title, s.Artist, s.Likes, s.PlayCount)
		}
	}

	snap, err := store.Open(cfg.SnapshotPath)
	if err != nil {
		return fmt.Errorf("%s", errmsg.Format(errmsg.OpSnapshotLoad, err))
	}
	defer snap.Close()

	if saved, err := snap.Load(); err == nil && saved != nil {
		for _, id := range saved.SongIDs {
			mgr.EnqueueUpcoming(id)
		}
	}

	sessionID := catalog.SessionID()
	p := tea.NewProgram(tui.New(mgr, snap, sessionID), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
