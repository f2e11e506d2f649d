package main

import (
	"github.com/LambdaTest/coverage-bridge/pkg/core"
	"github.com/LambdaTest/coverage-bridge/pkg/global"
	"github.com/LambdaTest/coverage-bridge/pkg/summary"
	"github.com/spf13/cobra"
)

// AttachCLIFlags attaches command line flags to command
func AttachCLIFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().StringP("config", "c", "", "the config file to use")
	rootCmd.PersistentFlags().BoolP("verbose", "", false, "Run in verbose mode")
	rootCmd.PersistentFlags().StringP("env", "e", "prod", "Environment.")
	rootCmd.PersistentFlags().String("logFile", "", "Directory of the log file")

	rootCmd.PersistentFlags().String("transport", "", "Transport of the jenkins server, http or https")
	rootCmd.PersistentFlags().String("host", "", "Host of the jenkins server")
	rootCmd.PersistentFlags().Int("jenkins-port", 0, "Port of the jenkins server")
	rootCmd.PersistentFlags().String("jenkins-path", "", "Path under which jenkins jobs live")
	rootCmd.PersistentFlags().StringP("user", "u", "", "Jenkins user")
	rootCmd.PersistentFlags().StringP("token", "t", "", "Jenkins api token")
	rootCmd.PersistentFlags().Int("timeout", 0, "Jenkins request timeout in seconds")
	rootCmd.PersistentFlags().Int("max-retries", 0, "Retries of a failed jenkins request")
}

// attachTargetFlags attaches the flags describing one coverage report
func attachTargetFlags(cmd *cobra.Command) {
	cmd.Flags().String("provider", core.ProviderCobertura, "Coverage provider, cobertura, jacoco or a custom plugin path")
	cmd.Flags().String("filter", "", "Glob selecting nodes of a tree report, e.g. **/util")
	cmd.Flags().StringP("output", "o", summary.FormatJSON, "Output format, json or yaml")
}

// AttachFetchFlags attaches flags of the fetch command
func AttachFetchFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("job", "j", "", "Jenkins job name")
	cmd.Flags().IntP("build", "b", 0, "Build number, 0 for the last successful build")
	cmd.Flags().IntP("depth", "d", global.DefaultDepth, "Depth of the cobertura tree")
	attachTargetFlags(cmd)
	// nolint: errcheck
	cmd.MarkFlagRequired("job")
}

// AttachInspectFlags attaches flags of the inspect command
func AttachInspectFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "Coverage document to inspect, optionally compressed")
	attachTargetFlags(cmd)
	// nolint: errcheck
	cmd.MarkFlagRequired("file")
}

// AttachServeFlags attaches flags of the serve command
func AttachServeFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("port", "p", "", "Port for api server to run")
	cmd.Flags().String("schedule", "", "Cron schedule of the coverage poll")
	cmd.Flags().String("targets", "", "Yaml file listing the watched targets")
}
