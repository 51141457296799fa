package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/tagirov/rusk/types"
)

const (
	configName = ".rusk"
	envPrefix  = "RUSK"

	defaultDirName  = ".rusk"
	defaultFileName = "tasks.json"
	// debugTaskFile is the fixed development path used when --debug or
	// RUSK_DEBUG is set. It is deliberately not configurable.
	debugTaskFile = ".rusk-dev/tasks.json"
)

// GlobalAppConfig holds the application configuration resolved by InitConfig.
var GlobalAppConfig types.AppConfig

// InitConfig reads in the config file and RUSK_* environment variables if set.
func InitConfig() {
	// Load .env file first if present. It's fine if it doesn't exist.
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// RUSK_DB is the historical name for the task file location.
	_ = viper.BindEnv("db.path", "RUSK_DB")
	_ = viper.BindEnv("debug", "RUSK_DEBUG")

	viper.SetDefault("db.path", "")
	viper.SetDefault("verbose", false)
	viper.SetDefault("debug", false)

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(configName)
	}

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
		fmt.Fprintln(os.Stderr, "Error reading config file:", viper.ConfigFileUsed(), "-", err)
	}

	if err := viper.Unmarshal(&GlobalAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error unmarshaling config: %s\n", err)
		os.Exit(1)
	}
}

// resolveTaskFilePath turns the configuration into the absolute location of
// the task file. A configured path may name a file directly or a directory
// (trailing separator or an existing directory), in which case the default
// filename is appended.
func resolveTaskFilePath(cfg types.AppConfig) (string, error) {
	if cfg.Debug {
		return debugTaskFile, nil
	}
	if p := cfg.DB.Path; p != "" {
		if strings.HasSuffix(p, "/") || strings.HasSuffix(p, string(os.PathSeparator)) {
			return filepath.Join(p, defaultFileName), nil
		}
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			return filepath.Join(p, defaultFileName), nil
		}
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, defaultDirName, defaultFileName), nil
}
