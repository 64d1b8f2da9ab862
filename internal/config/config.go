// SPDX-License-Identifier: Apache-2.0

package config

import (
	"strings"

	"github.com/joomcode/errorx"
	"github.com/spf13/viper"

	"github.com/raven-assistant/ravenctl/pkg/logx"
	"github.com/raven-assistant/ravenctl/pkg/sanity"
)

// Config holds the global configuration for the application.
type Config struct {
	Log       logx.LoggingConfig `yaml:"log" json:"log"`
	Installer InstallerConfig    `yaml:"installer" json:"installer"`
}

// InstallerConfig represents the `installer` configuration block.
type InstallerConfig struct {
	// ProjectDir is the assistant project directory. Defaults to the working directory.
	ProjectDir string `yaml:"projectDir" json:"projectDir"`

	// Delegate, when set, points at an external installer program that is run
	// as a child process instead of the native install workflow.
	Delegate string `yaml:"delegate" json:"delegate"`

	// RequirementsFile overrides the Python requirements file location.
	RequirementsFile string `yaml:"requirementsFile" json:"requirementsFile"`

	// WhisperModel is the speech recognition model downloaded during install.
	WhisperModel string `yaml:"whisperModel" json:"whisperModel"`

	// OllamaModels are the language and vision models pulled during install.
	OllamaModels []string `yaml:"ollamaModels" json:"ollamaModels"`

	// AssumeYes skips the interactive confirmation prompt.
	AssumeYes bool `yaml:"assumeYes" json:"assumeYes"`
}

// Validate validates installer configuration fields to catch unsafe
// user-provided values before workflow execution begins.
func (c *InstallerConfig) Validate() error {
	if c.ProjectDir != "" {
		if _, err := sanity.SanitizePath(c.ProjectDir); err != nil {
			return errorx.IllegalArgument.Wrap(err, "invalid project directory: %s", c.ProjectDir)
		}
	}

	if c.Delegate != "" {
		if _, err := sanity.SanitizePath(c.Delegate); err != nil {
			return errorx.IllegalArgument.Wrap(err, "invalid delegate path: %s", c.Delegate)
		}
	}

	if c.RequirementsFile != "" {
		if _, err := sanity.SanitizePath(c.RequirementsFile); err != nil {
			return errorx.IllegalArgument.Wrap(err, "invalid requirements file path: %s", c.RequirementsFile)
		}
	}

	if c.WhisperModel != "" {
		if err := sanity.ValidateModelName(c.WhisperModel); err != nil {
			return errorx.IllegalArgument.Wrap(err, "invalid Whisper model name: %s", c.WhisperModel)
		}
	}

	for _, model := range c.OllamaModels {
		if err := sanity.ValidateModelName(model); err != nil {
			return errorx.IllegalArgument.Wrap(err, "invalid Ollama model name: %s", model)
		}
	}

	return nil
}

// Validate validates all configuration fields to ensure they are safe and secure.
func (c Config) Validate() error {
	return c.Installer.Validate()
}

var globalConfig = Config{
	Log: logx.LoggingConfig{
		Level:          "debug",
		ConsoleLogging: true,
		FileLogging:    false,
	},
	Installer: InstallerConfig{
		WhisperModel: "medium",
		OllamaModels: []string{"llama3.1:8b", "qwen2.5vl:7b"},
	},
}

// Initialize loads the configuration from the specified file.
//
// Parameters:
//   - path: The path to the configuration file.
//
// Returns:
//   - An error if the configuration cannot be loaded.
func Initialize(path string) error {
	if path != "" {
		globalConfig = Config{}
		viper.Reset()
		viper.SetConfigFile(path)
		viper.SetEnvPrefix("RAVEN")
		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

		err := viper.ReadInConfig()
		if err != nil {
			return NotFoundError.Wrap(err, "failed to read config file: %s", path).
				WithProperty(errorx.PropertyPayload(), path)
		}

		if err := viper.Unmarshal(&globalConfig); err != nil {
			return errorx.IllegalFormat.Wrap(err, "failed to parse configuration").
				WithProperty(errorx.PropertyPayload(), path)
		}
	}

	return nil
}

// Get returns the loaded configuration.
func Get() Config {
	return globalConfig
}

func Set(c *Config) error {
	globalConfig = *c
	return nil
}

// OverrideInstallerConfig updates the installer configuration with provided
// overrides. Empty values are ignored (not applied).
func OverrideInstallerConfig(overrides InstallerConfig) {
	if overrides.ProjectDir != "" {
		globalConfig.Installer.ProjectDir = overrides.ProjectDir
	}
	if overrides.Delegate != "" {
		globalConfig.Installer.Delegate = overrides.Delegate
	}
	if overrides.RequirementsFile != "" {
		globalConfig.Installer.RequirementsFile = overrides.RequirementsFile
	}
	if overrides.WhisperModel != "" {
		globalConfig.Installer.WhisperModel = overrides.WhisperModel
	}
	if len(overrides.OllamaModels) > 0 {
		globalConfig.Installer.OllamaModels = overrides.OllamaModels
	}
	if overrides.AssumeYes {
		globalConfig.Installer.AssumeYes = true
	}
}
