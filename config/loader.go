package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// flagKeys maps command line flags onto nested config keys
var flagKeys = map[string]string{
	"transport":    "Jenkins.transport",
	"host":         "Jenkins.host",
	"jenkins-port": "Jenkins.port",
	"jenkins-path": "Jenkins.path",
	"user":         "Jenkins.user",
	"token":        "Jenkins.token",
	"timeout":      "Jenkins.timeout",
	"max-retries":  "Jenkins.maxRetries",
	"schedule":     "Watch.schedule",
	"targets":      "Watch.targetsFile",
}

// LoadConfig loads config from command instance to predefined config variables
func LoadConfig(cmd *cobra.Command) (*Config, error) {
	err := viper.BindPFlags(cmd.Flags())
	if err != nil {
		return nil, err
	}
	for flag, key := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := viper.BindPFlag(key, f); err != nil {
				return nil, err
			}
		}
	}

	// default viper configs
	viper.SetEnvPrefix("COVBRIDGE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// set default configs
	setDefaultConfig()

	if configFile, _ := cmd.Flags().GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".covbridge")
		viper.AddConfigPath("./")
		viper.AddConfigPath("$HOME/.covbridge")
	}

	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: No configuration file found. Proceeding with defaults")
	}

	return populateConfig(new(Config))
}
