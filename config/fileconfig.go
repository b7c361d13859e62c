// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const AppName = "chartcore"
const configFileName = "chartconfig.yaml"
const configFileVersion = 1

var ErrNewerVersion = errors.New("configuration file is from a newer release")

// FileConfig stores the chart configuration in a YAML file.
// It is safe for concurrent use.
type FileConfig struct {
	path             string
	logger           *zap.Logger
	loaded           bool
	version          VersionConfig
	chartConfig      ChartConfig
	chartConfigMutex sync.Mutex
}

type VersionConfig struct {
	FileVersion int
}

// DefaultPath returns the configuration file path in the user configuration directory.
func DefaultPath() (string, error) {
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("unable to determine configuration path: %w", err)
	}
	return filepath.Join(userConfigDir, AppName, configFileName), nil
}

// NewFileConfig returns a configuration stored at path. The file is read on first access.
func NewFileConfig(path string, logger *zap.Logger) *FileConfig {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileConfig{
		path:   path,
		logger: logger,
		version: VersionConfig{
			FileVersion: configFileVersion,
		},
		chartConfig: NewChartConfig(),
	}
}

func (f *FileConfig) Path() string {
	return f.path
}

// Locks access to the configuration and returns a copy which can be modified.
// Unlock needs to be called afterwards, if no error was returned.
func (f *FileConfig) Lock() (*ChartConfig, error) {
	f.chartConfigMutex.Lock()
	if !f.loaded {
		err := f.read()
		if err != nil {
			f.chartConfigMutex.Unlock()
			return nil, err
		}
	}
	chartConfigCopy := f.chartConfig.deepCopy()
	return &chartConfigCopy, nil
}

// Update the configuration and unlock access.
// If the configuration was changed, the configuration will be written before unlocking.
func (f *FileConfig) Unlock(c *ChartConfig) error {
	var err error
	if !cmp.Equal(f.chartConfig, *c, cmpopts.EquateEmpty()) {
		f.chartConfig = *c
		err = f.write()
	}
	f.chartConfigMutex.Unlock()
	return err
}

func (f *FileConfig) Copy() (ChartConfig, error) {
	f.chartConfigMutex.Lock()
	defer f.chartConfigMutex.Unlock()
	if !f.loaded {
		err := f.read()
		if err != nil {
			return ChartConfig{}, err
		}
	}
	return f.chartConfig.deepCopy(), nil
}

// Save writes the current configuration, even if it was not changed.
func (f *FileConfig) Save() error {
	f.chartConfigMutex.Lock()
	defer f.chartConfigMutex.Unlock()
	return f.write()
}

func (f *FileConfig) read() error {
	if _, err := os.Stat(f.path); os.IsNotExist(err) {
		// It is fine if the configuration file does not yet exist.
		f.logger.Info("Configuration file does not yet exist, using defaults.", zap.String("Path", f.path))
		f.loaded = true
		return nil
	}
	file, err := os.ReadFile(f.path)
	if err != nil {
		return fmt.Errorf("failed to read configuration file: %w", err)
	}
	var version VersionConfig
	err = yaml.Unmarshal(file, &version)
	if err != nil {
		return fmt.Errorf("failed to parse configuration version: %w", err)
	}
	// Avoid removing new unknown settings if an old release is started with a newer config file.
	if version.FileVersion > configFileVersion {
		return fmt.Errorf("%w: version %d instead of %d", ErrNewerVersion, version.FileVersion, configFileVersion)
	}
	chartConfig := NewChartConfig()
	err = yaml.Unmarshal(file, &chartConfig)
	if err != nil {
		return fmt.Errorf("failed to parse chart configuration: %w", err)
	}
	chartConfig.Sanitize()
	f.chartConfig = chartConfig
	f.loaded = true
	f.logger.Debug("Configuration loaded.", zap.String("Path", f.path), zap.Int("FileVersion", version.FileVersion))
	return nil
}

func (f *FileConfig) write() error {
	err := os.MkdirAll(filepath.Dir(f.path), 0700)
	if err != nil {
		return fmt.Errorf("failed to create configuration directory: %w", err)
	}
	f.chartConfig.Sanitize()
	stored := f.chartConfig.deepCopy()
	stored.RemoveDefaults()
	fileVersion, err := yaml.Marshal(&f.version)
	if err != nil {
		return fmt.Errorf("error generating configuration version: %w", err)
	}
	fileChartConfig, err := yaml.Marshal(&stored)
	if err != nil {
		return fmt.Errorf("error generating chart configuration: %w", err)
	}

	file := append(fileVersion, fileChartConfig...)
	tmpFileName := f.path + ".tmp"
	// Writing may fail, so we write to a temporary file and replace afterwards.
	err = os.WriteFile(tmpFileName, file, 0600)
	if err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}
	err = os.Rename(tmpFileName, f.path)
	if err != nil {
		return fmt.Errorf("failed to replace configuration file: %w", err)
	}
	f.logger.Debug("Configuration written.", zap.String("Path", f.path))
	return nil
}
