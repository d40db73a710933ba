package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Keys understood by the harness.
const (
	KeySuite            = "suite"
	KeyCaptureOutput    = "capture_output"
	KeyKeepOutput       = "keep_output"
	KeyVerbose          = "verbose"
	KeyLogFile          = "log_file"
	KeyMetricsFile      = "metrics_file"
	KeyFormat           = "format"
	KeyRegistryCapacity = "registry_capacity"
	KeyOutputFile       = "output_file"
)

// Load initializes the configuration from file and environment variables.
// captureDefault is the build's default for capture_output.
func Load(cfgFile string, captureDefault bool) error {
	// .env is optional
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("BENCHSCORE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeySuite, "small")
	viper.SetDefault(KeyCaptureOutput, captureDefault)
	viper.SetDefault(KeyKeepOutput, false)
	viper.SetDefault(KeyVerbose, false)
	viper.SetDefault(KeyLogFile, "")
	viper.SetDefault(KeyMetricsFile, "")
	viper.SetDefault(KeyFormat, "text")
	viper.SetDefault(KeyRegistryCapacity, 32)
	viper.SetDefault(KeyOutputFile, "")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		if cfgFile == "" && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	return nil
}

// Settings is a typed snapshot of the loaded configuration.
type Settings struct {
	Suite            string
	CaptureOutput    bool
	KeepOutput       bool
	Verbose          bool
	LogFile          string
	MetricsFile      string
	Format           string
	RegistryCapacity int
	OutputFile       string
}

// Current reads the settings viper resolved from defaults, file, env and
// bound flags.
func Current() Settings {
	return Settings{
		Suite:            strings.ToLower(viper.GetString(KeySuite)),
		CaptureOutput:    viper.GetBool(KeyCaptureOutput),
		KeepOutput:       viper.GetBool(KeyKeepOutput),
		Verbose:          viper.GetBool(KeyVerbose),
		LogFile:          viper.GetString(KeyLogFile),
		MetricsFile:      viper.GetString(KeyMetricsFile),
		Format:           strings.ToLower(viper.GetString(KeyFormat)),
		RegistryCapacity: viper.GetInt(KeyRegistryCapacity),
		OutputFile:       viper.GetString(KeyOutputFile),
	}
}
