package config

import (
	"github.com/LambdaTest/coverage-bridge/pkg/global"
	"github.com/spf13/viper"
)

func setDefaultConfig() {
	viper.SetDefault("LogConfig.EnableConsole", true)
	viper.SetDefault("LogConfig.ConsoleJSONFormat", false)
	viper.SetDefault("LogConfig.ConsoleLevel", "info")
	viper.SetDefault("LogConfig.EnableFile", false)
	viper.SetDefault("LogConfig.FileJSONFormat", true)
	viper.SetDefault("LogConfig.FileLevel", "debug")
	viper.SetDefault("LogConfig.FileLocation", "./covbridge.log")
	viper.SetDefault("Env", "prod")
	viper.SetDefault("Port", global.DefaultPort)
	viper.SetDefault("Verbose", false)
	viper.SetDefault("Jenkins.transport", "http")
	viper.SetDefault("Jenkins.port", 8080)
	viper.SetDefault("Jenkins.path", global.DefaultJobPath)
	viper.SetDefault("Jenkins.timeout", int(global.DefaultHTTPTimeout.Seconds()))
	viper.SetDefault("Jenkins.maxRetries", global.DefaultMaxRetries)
	viper.SetDefault("Watch.schedule", global.DefaultWatchSchedule)
	viper.SetDefault("Watch.targetsFile", "targets.yaml")
}
