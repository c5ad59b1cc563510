package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                                     int
	RoundRobinTimeQuantum                    int
	MultilevelFeedbackQueueLevelsTimeQuantum []int
	LogLevel                                 string
	LogFormat                                string
	DatabasePath                             string
}

var ErrInvalidConfig = errors.New("invalid config")

// Load reads configuration from path, or from config.yaml in the working
// directory when path is empty. A missing default file is not an error.
// Environment variables prefixed with SCHEDSIM_ override file values, e.g.
// SCHEDSIM_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.multilevel_feedback_queue.levels_time_quantum", []int{4, 8})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("database.path", "schedsim.db")

	v.SetEnvPrefix("schedsim")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	levels, err := intSlice(v, "scheduler.multilevel_feedback_queue.levels_time_quantum")
	if err != nil {
		return nil, err
	}

	cfg := &SchedulerConfig{
		Port:                                     v.GetInt("port"),
		RoundRobinTimeQuantum:                    v.GetInt("scheduler.round_robin.time_quantum"),
		MultilevelFeedbackQueueLevelsTimeQuantum: levels,
		LogLevel:                                 v.GetString("log.level"),
		LogFormat:                                v.GetString("log.format"),
		DatabasePath:                             v.GetString("database.path"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// intSlice reads an integer list. Environment overrides arrive as a single
// string such as "3,6" or "3 6".
func intSlice(v *viper.Viper, key string) ([]int, error) {
	raw, ok := v.Get(key).(string)
	if !ok {
		return v.GetIntSlice(key), nil
	}
	fields := strings.FieldsFunc(strings.Trim(raw, "[] "), func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %q is not an integer", ErrInvalidConfig, key, f)
		}
		values = append(values, n)
	}
	return values, nil
}

func (c *SchedulerConfig) Validate() error {
	var errs []error
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Port))
	}
	if c.RoundRobinTimeQuantum < 1 {
		errs = append(errs, fmt.Errorf("%w: round robin time quantum must be positive", ErrInvalidConfig))
	}
	for i, q := range c.MultilevelFeedbackQueueLevelsTimeQuantum {
		if q < 1 {
			errs = append(errs, fmt.Errorf("%w: feedback queue level %d quantum must be positive", ErrInvalidConfig, i))
		}
	}
	return errors.Join(errs...)
}
