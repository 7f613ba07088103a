// earthshaker is a terminal cave-digging game: collect every crystal,
// dodge falling stones and reach the exit.
//
// Usage:
//
//	earthshaker list                 - List available campaigns
//	earthshaker play [campaign]      - Play a campaign
//	earthshaker menu                 - Start the interactive menu
//	earthshaker serve                - Start SSH server for remote play
//	earthshaker scores [campaign]    - Show high scores and best times
//	earthshaker levels ...           - Inspect and generate levels
//	earthshaker config ...           - Write or print the configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Offset generated cave seeds (0 = per-level seeds)
//	--db <path>           - Set database path (default: ~/.earthshaker/scores.db)
//	--config <path>       - Use a custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--levels <dir>        - Load a level pack from a directory
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Aleks-Che/earth-shaker-zx/internal/config"
	"github.com/Aleks-Che/earth-shaker-zx/internal/core"
	"github.com/Aleks-Che/earth-shaker-zx/internal/games/earthshaker"
	"github.com/Aleks-Che/earth-shaker-zx/internal/games/earthshaker/levels"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
	flagLogLevel   string
	flagLogFile    string

	// gameCfg is loaded once before any subcommand runs.
	gameCfg config.EarthshakerConfig

	// packSource holds the --levels pack once registered.
	packSource levels.Source
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "earthshaker",
	Short: "Earthshaker - dig for crystals in your terminal",
	Long: `Earthshaker is a cave-digging puzzle game for the terminal.
Dig through earth, collect every crystal and reach the exit
before the stones and crystals above you come crashing down.

Available commands:
  list     - Show all campaigns
  play     - Play a campaign directly
  menu     - Interactive menu
  serve    - Start SSH server for remote play
  scores   - View high scores and best level times
  levels   - List, show and generate levels
  config   - Write or print the configuration

Examples:
  earthshaker play
  earthshaker play earthshaker_classic --level 2
  earthshaker menu --difficulty hard
  earthshaker serve --ssh :2222
  earthshaker levels generate 3 --out cave3.yaml`,
	PersistentPreRun: loadSettings,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "Offset for generated cave seeds (0 = per-level seeds)")
	pf.StringVar(&flagDBPath, "db", "~/.earthshaker/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLevelsDir, "levels", "", "Directory with a YAML level pack (registered as earthshaker_pack)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write game logs to this file (terminal sessions log nowhere by default)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadSettings loads the configuration, applies the difficulty preset and
// registers the optional level pack.
func loadSettings(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadEarthshaker(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch preset := config.DifficultyPreset(flagDifficulty); preset {
	case "":
	case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
		config.ApplyEarthshakerPreset(&cfg, preset)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (use easy, normal, hard or fixed)\n", flagDifficulty)
		os.Exit(1)
	}
	gameCfg = cfg

	if flagLevelsDir != "" {
		registerPack(flagLevelsDir)
	}
}

// registerPack loads a level directory and registers it as a campaign.
// Files that fail to load are reported and skipped.
func registerPack(dir string) {
	lvls, err := levels.NewLoader(dir).LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if len(lvls) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no valid levels in %s\n", dir)
		os.Exit(1)
	}
	packSource = levels.NewPack(lvls)
	earthshaker.RegisterPack(filepath.Base(filepath.Clean(dir)), packSource)
}

// newLogger creates a logger at the --log-level level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using info\n", err)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// sessionLogger returns the logger for full-screen sessions. Output would
// corrupt the alternate screen, so it only goes to --log-file when set.
func sessionLogger() (*log.Logger, func()) {
	if flagLogFile == "" {
		return newLogger(io.Discard, "earthshaker"), func() {}
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return newLogger(io.Discard, "earthshaker"), func() {}
	}
	return newLogger(f, "earthshaker"), func() { f.Close() }
}

// runtimeConfig builds the platform config from flags and the terminal size.
func runtimeConfig(startLevel int) core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		StartLevel: startLevel,
	}
}
