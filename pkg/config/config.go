package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the config file looked up in the config directory.
const FileName = "junkyard.cfg.json"

// Load reads configuration from the JSON file in configDir and sets default
// values. A missing file leaves the defaults in place.
func Load(configDir string) error {
	viper.SetDefault("window.scale", 2)
	viper.SetDefault("window.title", "Junkyard Jump")

	viper.SetDefault("assets.dir", "./assets")
	viper.SetDefault("assets.perTick", 4)

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.pretty", true)

	viper.SetDefault("audio.sampleRate", 44100)
	viper.SetDefault("audio.synth", true)

	viper.SetDefault("telemetry.enabled", false)
	viper.SetDefault("seed", 0)

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	viper.SetEnvPrefix("junkyard")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// LoadTuning returns the default constants overlaid with whatever the
// "tuning" section of the loaded config sets.
func LoadTuning() (Tuning, error) {
	t := DefaultTuning()
	if !viper.IsSet("tuning") {
		return t, nil
	}
	if err := viper.UnmarshalKey("tuning", &t); err != nil {
		return t, fmt.Errorf("error decoding tuning: %w", err)
	}
	if t.TickRate <= 0 {
		return t, fmt.Errorf("tuning.tickRate must be positive, got %d", t.TickRate)
	}
	return t, nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetInt64 returns an int64 config value.
func GetInt64(key string) int64 {
	return viper.GetInt64(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}
