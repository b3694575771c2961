// Command snaplist-bench is a demo/benchmark shell over package snaplist.
// It is explicitly peripheral to the library -- the library has no
// CLI/env/file surface of its own -- but carries the teacher's ambient CLI
// stack (Cobra, pflag, BurntSushi/toml, signal-driven shutdown) so the
// scenarios in SPEC_FULL.md can be driven against a real list from the
// command line.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(0)

	rootCmd := &cobra.Command{
		Use:   "snaplist-bench",
		Short: "Drive a snaplist.List through demo and stress scenarios",
	}
	rootCmd.AddCommand(makeRunCmd(), makeDemoCmd(), makeGenConfigCmd())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func makeRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the concurrent append/iterate/clear stress scenario",
		Run:   runRun,
	}
	flags := cmd.Flags()
	flags.StringP("config", "c", "", "Path to a TOML config file")
	flags.Int("producers", 0, "Number of producer goroutines (overrides config)")
	flags.Int("consumers", 0, "Number of consumer goroutines (overrides config)")
	flags.Int("per-producer", 0, "Appends per producer (overrides config)")
	flags.Duration("clear-every", 0, "Clear interval, 0 disables (overrides config)")
	flags.Bool("no-watch", false, "Disable the live status line")
	return cmd
}

func runRun(cmd *cobra.Command, args []string) {
	flags := cmd.Flags()
	cfg := DefaultBenchConfig()

	if cfgPath, _ := flags.GetString("config"); cfgPath != "" {
		var err error
		cfg, err = LoadConfigAndCheck(cfgPath)
		if err != nil {
			Dief(1, "error loading config: %v", err)
		}
	}

	if v, _ := flags.GetInt("producers"); v > 0 {
		cfg.Producers = v
	}
	if v, _ := flags.GetInt("consumers"); v > 0 {
		cfg.Consumers = v
	}
	if v, _ := flags.GetInt("per-producer"); v > 0 {
		cfg.PerProducer = v
	}
	if v, _ := flags.GetDuration("clear-every"); v > 0 {
		cfg.ClearEvery = v
	}
	if noWatch, _ := flags.GetBool("no-watch"); noWatch {
		cfg.Watch = false
	}

	if err := cfg.CheckValid(); err != nil {
		Dief(1, "invalid config: %v", err)
	}

	NewHarness(cfg).Run()
}

func makeGenConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-config",
		Short: "Write a starter TOML config to stdout",
		Run: func(cmd *cobra.Command, args []string) {
			s, err := DefaultBenchConfig().EncodeString()
			if err != nil {
				Dief(1, "error encoding config: %v", err)
			}
			os.Stdout.WriteString(s)
		},
	}
	return cmd
}
