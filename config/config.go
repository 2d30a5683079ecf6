package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"os-scheduler/internal/workload"
)

const envPrefix = "scheduler"

type SchedulerConfig struct {
	Port              int
	ProcessCount      int
	Seed              int64
	MaxArrivalTime    int
	MaxBurstTime      int
	MaxPriority       int
	AgingThreshold    int
	TracingEnabled    bool
	TracingOutputFile string
}

func (c *SchedulerConfig) Limits() workload.Limits {
	return workload.Limits{
		MaxArrivalTime: c.MaxArrivalTime,
		MaxBurstTime:   c.MaxBurstTime,
		MaxPriority:    c.MaxPriority,
	}
}

func (c *SchedulerConfig) Validate() error {
	if c.ProcessCount < 0 {
		return fmt.Errorf("workload.process_count must not be negative, got %d", c.ProcessCount)
	}
	if c.AgingThreshold < 0 {
		return fmt.Errorf("scheduler.priority_aging.threshold must not be negative, got %d", c.AgingThreshold)
	}
	if err := c.Limits().Validate(); err != nil {
		return fmt.Errorf("workload: %w", err)
	}
	return nil
}

var once sync.Once

// GetSchedulerConfig loads the config from ./config.yaml, .env, SCHEDULER_*
// variables and flags bound to the global viper instance.
func GetSchedulerConfig() (*SchedulerConfig, error) {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file found, using environment variables")
		}
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./")
	})

	return LoadSchedulerConfig(viper.GetViper())
}

func SetDefaults(v *viper.Viper) {
	defaults := workload.DefaultLimits()
	v.SetDefault("port", 9095)
	v.SetDefault("workload.process_count", 5)
	v.SetDefault("workload.seed", 0)
	v.SetDefault("workload.max_arrival_time", defaults.MaxArrivalTime)
	v.SetDefault("workload.max_burst_time", defaults.MaxBurstTime)
	v.SetDefault("workload.max_priority", defaults.MaxPriority)
	v.SetDefault("scheduler.priority_aging.threshold", 5)
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.output_file", "")
}

// LoadSchedulerConfig reads v. A missing config file is not an error.
func LoadSchedulerConfig(v *viper.Viper) (*SchedulerConfig, error) {
	SetDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &SchedulerConfig{
		Port:              v.GetInt("port"),
		ProcessCount:      v.GetInt("workload.process_count"),
		Seed:              v.GetInt64("workload.seed"),
		MaxArrivalTime:    v.GetInt("workload.max_arrival_time"),
		MaxBurstTime:      v.GetInt("workload.max_burst_time"),
		MaxPriority:       v.GetInt("workload.max_priority"),
		AgingThreshold:    v.GetInt("scheduler.priority_aging.threshold"),
		TracingEnabled:    v.GetBool("tracing.enabled"),
		TracingOutputFile: v.GetString("tracing.output_file"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
