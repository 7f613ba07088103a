package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Aleks-Che/earth-shaker-zx/internal/games/earthshaker"
	"github.com/Aleks-Che/earth-shaker-zx/internal/platform/tui"
	"github.com/Aleks-Che/earth-shaker-zx/internal/registry"
	"github.com/Aleks-Che/earth-shaker-zx/internal/storage"
)

var (
	flagLevel    int
	flagMovement string
)

var playCmd = &cobra.Command{
	Use:   "play [campaign]",
	Short: "Play a campaign",
	Long: `Start playing the specified campaign (default: earthshaker).

Controls:
  Arrows/WASD  - Move and dig (hold to keep moving)
  P            - Pause
  K            - Give up when trapped (costs a life)
  M            - Switch smooth/grid movement
  R            - Restart (after game over)
  Esc/B        - Back (when paused or game over)
  Ctrl+S       - Screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 5 lives, slower gravity, difficulty starts low
  normal - Difficulty starts at 20% and grows each level
  hard   - 2 lives, extra bubbles, difficulty starts at 60%
  fixed  - No progression, every cave uses the base settings

Examples:
  earthshaker play
  earthshaker play earthshaker_classic
  earthshaker play --level 5 --difficulty hard
  earthshaker play --movement grid
  earthshaker play --seed 42
  earthshaker play earthshaker_pack --levels ./my-caves`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start at")
	playCmd.Flags().StringVar(&flagMovement, "movement", "", "Movement mode: smooth or grid (default from config)")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := earthshaker.IDCaves
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown campaign %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'earthshaker list' to see available campaigns.")
		os.Exit(1)
	}

	cfg := gameCfg
	switch flagMovement {
	case "":
	case "smooth":
		cfg.Movement.Smooth = true
	case "grid":
		cfg.Movement.Smooth = false
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown movement %q (use smooth or grid)\n", flagMovement)
		os.Exit(1)
	}

	game, err := registry.Create(gameID, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	logger, closeLog := sessionLogger()
	runErr := tui.Run(game, store, runtimeConfig(flagLevel), tui.GameOptions{
		HoldWindow: cfg.Movement.HoldWindow,
		Logger:     logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
