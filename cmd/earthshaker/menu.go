package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Aleks-Che/earth-shaker-zx/internal/platform/tui"
	"github.com/Aleks-Che/earth-shaker-zx/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Earthshaker with the interactive menu",
	Long: `Start Earthshaker in interactive menu mode.

Pick a campaign, a start level and the movement mode, then play.
After a run ends, press Esc to return to the menu.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change the selected option
  Enter/Space     - Select
  Tab             - High scores
  Q               - Quit

Examples:
  earthshaker menu
  earthshaker menu --fps 60
  earthshaker menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	logger, closeLog := sessionLogger()
	runErr := tui.RunSession(store, runtimeConfig(1), gameCfg, tui.SessionOptions{
		Logger: logger,
	})

	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
