package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"timerbox/internal/core/model"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	Vibration *bool  `yaml:"vibration"`
	SoundType string `yaml:"sound_type"`
	AutoStart *bool  `yaml:"auto_start"`
}

// LoadSettings reads the startup settings for appName from the user config
// directory. If the file does not exist, default settings are returned.
func LoadSettings(appName string) (model.Settings, error) {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return model.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// LoadSettingsFile reads settings from configPath. Keys missing from the
// file keep their default values.
func LoadSettingsFile(configPath string) (model.Settings, error) {
	settings := model.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *model.Settings, fileData yamlSettings) {
	if fileData.Vibration != nil {
		settings.VibrationEnabled = *fileData.Vibration
	}
	if fileData.AutoStart != nil {
		settings.AutoStartEnabled = *fileData.AutoStart
	}
	if soundType := model.SoundType(fileData.SoundType); model.ValidSoundType(soundType) {
		settings.SoundType = soundType
	}
}
