package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for kernup settings.
const envPrefix = "KERNUP"

// Load loads Settings from the given file path, with environment variables
// taking precedence over file values and defaults filling the rest. If
// settingsFile is empty, the default settings file path is used. A missing
// settings file is not an error; the defaults simply apply.
func Load(settingsFile string) (Settings, error) {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultSettings()
	v.SetDefault("urlBase", defaults.URLBase)
	v.SetDefault("sourceBase", defaults.SourceBase)
	v.SetDefault("moduleBase", defaults.ModuleBase)
	v.SetDefault("configBase", defaults.ConfigBase)
	v.SetDefault("bootDir", defaults.BootDir)
	v.SetDefault("suffix", defaults.Suffix)
	v.SetDefault("downloader", defaults.Downloader)
	v.SetDefault("dkmsModule", defaults.DKMSModule)
	v.SetDefault("initramfsTool", defaults.InitramfsTool)
	v.SetDefault("bootloaderTool", defaults.BootloaderTool)

	if settingsFile == "" {
		var err error
		settingsFile, err = SettingsFile()
		if err != nil {
			return Settings{}, fmt.Errorf("getting settings file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(settingsFile)
	if err != nil {
		return Settings{}, fmt.Errorf("expanding settings path: %w", err)
	}

	v.SetConfigFile(expandedPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Settings{}, fmt.Errorf("reading settings file: %w", err)
			}
		}
		// A missing settings file is fine; defaults plus env vars apply.
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshaling settings: %w", err)
	}

	return s, nil
}
