// Package config loads the wiscayenne CLI configuration.
//
// Sources, highest precedence first:
//  1. Command-line flags bound to the viper instance
//  2. Environment variables (WISCAYENNE_*)
//  3. Configuration file (YAML), if given
//  4. Default values
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variable overrides, e.g. WISCAYENNE_CAPACITY.
const EnvPrefix = "WISCAYENNE"

// Precision names accepted by the encode command.
const (
	PrecisionStandard = "standard"
	PrecisionHigh     = "high"
	PrecisionTracker  = "tracker"
)

// Config is the encode command configuration.
type Config struct {
	// Capacity is the frame size in bytes. 51 fits LoRaWAN DR0 in most regions.
	Capacity int `mapstructure:"capacity" validate:"min=1,max=255" yaml:"capacity"`

	// Precision selects the GNSS record: standard (0x88), high (0x89) or tracker (0x8B).
	Precision string `mapstructure:"precision" validate:"oneof=standard high tracker" yaml:"precision"`

	// Channel is the LPP channel of GNSS records. Ignored for tracker precision.
	Channel uint8 `mapstructure:"channel" yaml:"channel"`

	// Device is a device name; when set, every frame starts with its derived id.
	Device string `mapstructure:"device" yaml:"device"`

	// DeviceChannel is the channel of device id records.
	DeviceChannel uint8 `mapstructure:"device_channel" yaml:"device_channel"`

	// VOC appends a fixed VOC index after each fix. -1 disables it.
	VOC int `mapstructure:"voc" validate:"min=-1,max=65535" yaml:"voc"`

	// VOCChannel is the channel of VOC index records.
	VOCChannel uint8 `mapstructure:"voc_channel" yaml:"voc_channel"`

	// Battery is the battery level written with tracker precision.
	Battery int16 `mapstructure:"battery" yaml:"battery"`

	// Sentences restricts the NMEA sentence types used as fixes.
	Sentences []string `mapstructure:"sentences" validate:"dive,oneof=GGA RMC gga rmc" yaml:"sentences"`

	// LogLevel is the minimum log level.
	LogLevel string `mapstructure:"log_level" validate:"oneof=debug info warn error" yaml:"log_level"`
}

// SetDefaults registers the default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("capacity", 51)
	v.SetDefault("precision", PrecisionStandard)
	v.SetDefault("channel", 1)
	v.SetDefault("device", "")
	v.SetDefault("device_channel", 0)
	v.SetDefault("voc", -1)
	v.SetDefault("voc_channel", 2)
	v.SetDefault("battery", 0)
	v.SetDefault("sentences", []string{"GGA"})
	v.SetDefault("log_level", "info")
}

// Load reads configuration into a validated Config.
//
// Parameters:
//   - v: viper instance, optionally with command flags already bound
//   - configPath: YAML file to read, empty to skip
//
// Returns:
//   - *Config: loaded and validated configuration
//   - error: read, decode or validation error
func Load(v *viper.Viper, configPath string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("configuration file not found: %s", configPath)
			}

			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%s: invalid value %v (rule %s)", fe.Namespace(), fe.Value(), fe.Tag())
		}

		return err
	}

	return nil
}
