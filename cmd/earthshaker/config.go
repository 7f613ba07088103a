package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Aleks-Che/earth-shaker-zx/internal/config"
)

var flagForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Write or print the game configuration",
	Long: `Manage the YAML configuration.

Config search order: --config, ~/.earthshaker/configs/earthshaker.yaml,
./configs/earthshaker.yaml, then built-in defaults. Keys a file omits
keep their default values.

Examples:
  earthshaker config init
  earthshaker config init ./configs/earthshaker.yaml --force
  earthshaker config show --difficulty hard`,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default configuration (default: user config path)",
	Args:  cobra.MaximumNArgs(1),
	Run:   runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration after flags and presets",
	Args:  cobra.NoArgs,
	Run:   runConfigShow,
}

func init() {
	configInitCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(_ *cobra.Command, args []string) {
	path := config.UserConfigPath()
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: cannot resolve home directory, pass a path")
		os.Exit(1)
	}

	if err := config.WriteDefault(path, flagForce); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote default configuration to %s\n", path)
}

func runConfigShow(_ *cobra.Command, _ []string) {
	data, err := config.Marshal(gameCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
