package main

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"os-scheduler/api"
	"os-scheduler/config"
	"os-scheduler/internal/report"
	"os-scheduler/internal/simulation"
	"os-scheduler/internal/tracing"
)

var (
	configFile   string
	verbose      bool
	outputFormat string
)

// simulationFlags is shared by the root and simulate commands.
var simulationFlags = pflag.NewFlagSet("simulation", pflag.ExitOnError)

var rootCmd = &cobra.Command{
	Use:   "os-scheduler",
	Short: "Simulate SJF and priority-with-aging CPU scheduling",
	Long: `Generates a random workload and simulates Shortest Job First and
Priority Scheduling with Aging on independent copies of it. Without a
subcommand it behaves like "simulate".`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runSimulate,
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run both schedulers on a generated workload and print the report",
	Example: `
# Reproduce a run
os-scheduler simulate --seed 42

# Eight processes as yaml
os-scheduler simulate --count 8 -o yaml`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the schedulers over HTTP",
	Example: `
# Listen on :9095 and simulate a posted workload
os-scheduler serve --port 9095
curl -XPOST localhost:9095/api/v1/all`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	cobra.OnInitialize(func() {
		if configFile != "" {
			viper.SetConfigFile(configFile)
		}
	})

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log scheduler events to stderr")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if !verbose && cmd != serveCmd {
			log.SetOutput(io.Discard)
		}
	}

	simulationFlags.Int64("seed", 0, "workload seed, 0 picks one from the clock")
	simulationFlags.Int("count", 5, "number of processes to generate")
	simulationFlags.Int("aging-threshold", 5, "time since arrival after which a queued process ages")
	simulationFlags.StringVarP(&outputFormat, "output", "o", "text", "output format: text, json or yaml")
	rootCmd.Flags().AddFlagSet(simulationFlags)
	simulateCmd.Flags().AddFlagSet(simulationFlags)

	serveCmd.Flags().Int("port", 9095, "HTTP listen port")

	mustBind("workload.seed", simulationFlags.Lookup("seed"))
	mustBind("workload.process_count", simulationFlags.Lookup("count"))
	mustBind("scheduler.priority_aging.threshold", simulationFlags.Lookup("aging-threshold"))
	mustBind("port", serveCmd.Flags().Lookup("port"))

	rootCmd.AddCommand(simulateCmd, serveCmd)
}

func mustBind(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		log.Fatalln(err)
	}
}

func runSimulate(cmd *cobra.Command, args []string) error {
	format, err := report.ParseFormat(outputFormat)
	if err != nil {
		return err
	}
	cfg, err := config.GetSchedulerConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	shutdown, err := initTracing(cfg)
	if err != nil {
		return err
	}
	defer shutdown()

	runner := simulation.NewRunner(cfg)
	processes, seed, err := runner.Generate(cfg.Seed, cfg.ProcessCount)
	if err != nil {
		return err
	}
	result, err := runner.Run(cmd.Context(), processes, seed)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	return report.Write(cmd.OutOrStdout(), format, result)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetSchedulerConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	shutdown, err := initTracing(cfg)
	if err != nil {
		return err
	}
	defer shutdown()
	log.Printf("os-scheduler %s (%s) listening on :%d", version, commit, cfg.Port)
	return api.NewApp(cfg).Listen(fmt.Sprintf(":%d", cfg.Port))
}

// initTracing returns a func that flushes and closes the exporter.
func initTracing(cfg *config.SchedulerConfig) (func(), error) {
	if !cfg.TracingEnabled {
		return func() {}, nil
	}
	shutdown, err := tracing.Init("os-scheduler", version, cfg.TracingOutputFile)
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}
	return func() {
		if err := shutdown(context.Background()); err != nil {
			log.Println("tracing shutdown:", err)
		}
	}, nil
}
