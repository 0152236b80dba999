// Config loading for the osrmkit CLI. Flags override config file
// values; the config file supplies defaults for the persistent flags.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configFileName = ".osrmkit"
	configFileType = "yaml"

	cfgKeyDataset      = "dataset"
	cfgKeyAlgorithm    = "algorithm"
	cfgKeyMmap         = "mmap"
	cfgKeySharedMemory = "shared-memory"
	cfgKeyDatasetName  = "dataset-name"
	cfgKeyVerbosity    = "verbosity"
)

// loadConfig reads the config file (when present) and binds the
// persistent flags over it.
func loadConfig(path string, cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is only an error when asked for
		// explicitly.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	return v, nil
}
