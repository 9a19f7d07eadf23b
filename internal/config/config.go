// Package config handles application configuration using Viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rusifikator/pkg/assemble"
	"github.com/rusifikator/pkg/langfile"
	"github.com/rusifikator/pkg/langmap"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "rusifikator"
	// ConfigFileName is the name of the optional config file (without extension).
	ConfigFileName = "rusifikator"
	// EnvPrefix prefixes environment overrides, e.g. RUSIFIKATOR_OUTPUT_DIR.
	EnvPrefix = "RUSIFIKATOR"
	// OutputDirName is the output tree's directory next to the executable.
	OutputDirName = "unarchived_mods"
)

var ErrConfigNotFound = errors.New("config file not found")

// Config holds the settings the menu operations run with.
type Config struct {
	MappingFile    string `mapstructure:"mapping_file"`
	OutputDir      string `mapstructure:"output_dir"`
	InstanceMarker string `mapstructure:"instance_marker"`
	AssetsDir      string `mapstructure:"assets_dir"`
	KeepDir        string `mapstructure:"keep_dir"`
	Extension      string `mapstructure:"extension"`
	Verbose        bool   `mapstructure:"verbose"`
}

// LoadOptions defines explicit configuration loading inputs.
type LoadOptions struct {
	// ConfigFilePath forces loading from a specific config file when set.
	ConfigFilePath string
	// SearchDir is where rusifikator.{yaml,toml,json} is looked up (default: working directory).
	SearchDir string
	// ProgramDir overrides the executable's directory used for the default output tree.
	ProgramDir string
}

// DefaultConfig returns the built-in settings for a program living in programDir.
func DefaultConfig(programDir string) Config {
	return Config{
		MappingFile:    langmap.DefaultFile,
		OutputDir:      filepath.Join(programDir, OutputDirName),
		InstanceMarker: assemble.DefaultMarker,
		AssetsDir:      assemble.DefaultAssetsDir,
		KeepDir:        assemble.DefaultKeepDir,
		Extension:      langfile.Extension,
	}
}

// ProgramDir returns the directory containing the running executable.
func ProgramDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// Load merges defaults, the optional config file and environment overrides.
func Load(opts LoadOptions) (*Config, error) {
	programDir := opts.ProgramDir
	if programDir == "" {
		dir, err := ProgramDir()
		if err != nil {
			return nil, err
		}
		programDir = dir
	}

	v := viper.New()

	defaults := DefaultConfig(programDir)
	v.SetDefault("mapping_file", defaults.MappingFile)
	v.SetDefault("output_dir", defaults.OutputDir)
	v.SetDefault("instance_marker", defaults.InstanceMarker)
	v.SetDefault("assets_dir", defaults.AssetsDir)
	v.SetDefault("keep_dir", defaults.KeepDir)
	v.SetDefault("extension", defaults.Extension)
	v.SetDefault("verbose", defaults.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if opts.ConfigFilePath != "" {
		if _, err := os.Stat(opts.ConfigFilePath); os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, opts.ConfigFilePath)
		}
		v.SetConfigFile(opts.ConfigFilePath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", opts.ConfigFilePath, err)
		}
	} else {
		searchDir := opts.SearchDir
		if searchDir == "" {
			searchDir = "."
		}
		v.SetConfigName(ConfigFileName)
		v.AddConfigPath(searchDir)
		if err := v.ReadInConfig(); err != nil {
			// No config file is fine; defaults apply.
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
