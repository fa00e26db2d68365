package config

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	ReplayStepDelay       time.Duration
	ServerURL             string
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads ./config.yaml once and exits if it is unusable.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		var err error
		config, err = LoadSchedulerConfig("./config.yaml")
		if err != nil {
			log.Fatalln(err)
		}
	})

	return config
}

// LoadSchedulerConfig reads the YAML file at path. Missing keys fall back to
// defaults and SCHEDULER_* environment variables override the file, e.g.
// SCHEDULER_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM=4.
func LoadSchedulerConfig(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("replay.step_delay", 300*time.Millisecond)
	v.SetDefault("client.server_url", "http://localhost:9095")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	return &SchedulerConfig{
		Port:                  v.GetInt("port"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		ReplayStepDelay:       v.GetDuration("replay.step_delay"),
		ServerURL:             v.GetString("client.server_url"),
	}, nil
}
