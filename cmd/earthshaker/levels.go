package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Aleks-Che/earth-shaker-zx/internal/games/earthshaker"
	"github.com/Aleks-Che/earth-shaker-zx/internal/games/earthshaker/engine"
	"github.com/Aleks-Che/earth-shaker-zx/internal/games/earthshaker/levels"
	"github.com/Aleks-Che/earth-shaker-zx/internal/games/earthshaker/levels/formats"
)

var (
	flagOut    string
	flagSettle float64
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List, show and generate levels",
	Long: `Inspect campaign levels without starting the game.

Examples:
  earthshaker levels list
  earthshaker levels list earthshaker_classic
  earthshaker levels show earthshaker 4
  earthshaker levels show earthshaker_classic 1 --settle 3
  earthshaker levels generate 7 --seed 99 --out cave7.yaml`,
}

var levelsListCmd = &cobra.Command{
	Use:   "list [campaign]",
	Short: "List the levels of a campaign",
	Args:  cobra.MaximumNArgs(1),
	Run:   runLevelsList,
}

var levelsShowCmd = &cobra.Command{
	Use:   "show <campaign> <level>",
	Short: "Print a level layout, optionally after letting it settle",
	Args:  cobra.ExactArgs(2),
	Run:   runLevelsShow,
}

var levelsGenerateCmd = &cobra.Command{
	Use:   "generate <level>",
	Short: "Generate a cave and write it as level YAML",
	Args:  cobra.ExactArgs(1),
	Run:   runLevelsGenerate,
}

func init() {
	levelsShowCmd.Flags().Float64Var(&flagSettle, "settle", 0, "Simulate this many seconds with no input before printing")
	levelsGenerateCmd.Flags().StringVar(&flagOut, "out", "", "Output file (default: stdout)")

	levelsCmd.AddCommand(levelsListCmd)
	levelsCmd.AddCommand(levelsShowCmd)
	levelsCmd.AddCommand(levelsGenerateCmd)
}

// openCampaign returns the level source behind a campaign ID.
func openCampaign(id string) (levels.Source, error) {
	switch id {
	case earthshaker.IDCaves:
		if flagSeed != 0 {
			return levels.NewGeneratedSource(gameCfg.Campaign.MaxLevel, earthshaker.GenParamsFunc(gameCfg, flagSeed)), nil
		}
		return earthshaker.OpenGenerated(gameCfg)
	case earthshaker.IDClassic:
		return earthshaker.OpenClassic(gameCfg)
	case earthshaker.IDPack:
		if packSource != nil {
			return packSource, nil
		}
		return nil, fmt.Errorf("campaign %q needs --levels <dir>", id)
	}
	return nil, fmt.Errorf("unknown campaign %q", id)
}

func mustOpenCampaign(id string) levels.Source {
	src, err := openCampaign(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return src
}

func parseLevelNumber(arg string, count int) int {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > count {
		fmt.Fprintf(os.Stderr, "Error: level must be a number from 1 to %d, got %q\n", count, arg)
		os.Exit(1)
	}
	return n
}

func runLevelsList(_ *cobra.Command, args []string) {
	id := earthshaker.IDCaves
	if len(args) > 0 {
		id = args[0]
	}
	src := mustOpenCampaign(id)

	fmt.Printf("Levels - %s\n\n", id)
	fmt.Printf("  %-3s  %-10s  %-20s  %-7s  %-8s  %s\n", "#", "ID", "Name", "Size", "Crystals", "Seed")
	fmt.Printf("  %-3s  %-10s  %-20s  %-7s  %-8s  %s\n", "-", "--", "----", "----", "--------", "----")

	for n := 1; n <= src.Count(); n++ {
		lvl, err := src.Level(n)
		if err != nil {
			fmt.Printf("  %-3d  error: %v\n", n, err)
			continue
		}
		size := fmt.Sprintf("%dx%d", lvl.Layout.Grid.W, lvl.Layout.Grid.H)
		seed := "-"
		if lvl.Seed != 0 {
			seed = strconv.FormatInt(lvl.Seed, 10)
		}
		fmt.Printf("  %-3d  %-10s  %-20s  %-7s  %-8d  %s\n", n, lvl.ID, lvl.Name, size, lvl.CrystalCount(), seed)
	}
}

func runLevelsShow(_ *cobra.Command, args []string) {
	src := mustOpenCampaign(args[0])
	n := parseLevelNumber(args[1], src.Count())

	lvl, err := src.Level(n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Level %d - %s (%s)\n\n", n, lvl.Name, lvl.ID)
	if flagSettle <= 0 {
		fmt.Println(lvl.Layout.String())
		return
	}

	session := lvl.NewSession(gameCfg.EngineSettings())
	counts := settle(session, flagSettle, flagFPS)
	snap := session.Snapshot()

	fmt.Println(snap.Layout().String())
	fmt.Println()
	fmt.Printf("After %.2fs (%d ticks): crystals %d/%d", flagSettle, snap.Tick, snap.RemainingCrystals, snap.TotalCrystals)
	if !snap.Player.Alive {
		fmt.Print(", player destroyed")
	}
	fmt.Println()

	kinds := make([]engine.EventKind, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, k := range kinds {
		fmt.Printf("  %-16s %d\n", k, counts[k])
	}
}

// settle ticks a session with no input and counts the events it emits.
func settle(l *engine.Level, seconds float64, fps int) map[engine.EventKind]int {
	if fps <= 0 {
		fps = 30
	}
	dt := 1.0 / float64(fps)
	counts := make(map[engine.EventKind]int)
	for elapsed := 0.0; elapsed < seconds; elapsed += dt {
		for _, e := range l.Tick(engine.TickInput{DT: dt}).Events {
			counts[e.Kind]++
		}
	}
	return counts
}

func runLevelsGenerate(_ *cobra.Command, args []string) {
	n := parseLevelNumber(args[0], max(gameCfg.Campaign.MaxLevel, 1))

	params := earthshaker.GenParamsFunc(gameCfg, flagSeed)(n)
	lvl, err := levels.GenerateLevel(n, params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := formats.MarshalYAML(lvl.ID, lvl.Name, lvl.Layout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagOut == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(flagOut, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", flagOut, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote level %d (seed %d) to %s\n", n, lvl.Seed, flagOut)
}
