package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"time"

	"github.com/LambdaTest/coverage-bridge/config"
	"github.com/LambdaTest/coverage-bridge/pkg/api"
	"github.com/LambdaTest/coverage-bridge/pkg/core"
	"github.com/LambdaTest/coverage-bridge/pkg/coverage"
	"github.com/LambdaTest/coverage-bridge/pkg/cron"
	"github.com/LambdaTest/coverage-bridge/pkg/document"
	"github.com/LambdaTest/coverage-bridge/pkg/errs"
	"github.com/LambdaTest/coverage-bridge/pkg/jenkins"
	"github.com/LambdaTest/coverage-bridge/pkg/lumber"
	"github.com/LambdaTest/coverage-bridge/pkg/requestutils"
	"github.com/LambdaTest/coverage-bridge/pkg/server"
	"github.com/LambdaTest/coverage-bridge/pkg/summary"
	"github.com/LambdaTest/coverage-bridge/pkg/watcher"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const gracefulTimeout = 15 * time.Second

// RootCommand will setup and return the root command
func RootCommand(version string) *cobra.Command {
	rootCmd := cobra.Command{
		Use:     "covbridge",
		Long:    `covbridge reads jenkins cobertura and jacoco coverage into one normalized model`,
		Version: version,
	}
	AttachCLIFlags(&rootCmd)

	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch the coverage report of a jenkins job",
		Args:  cobra.NoArgs,
		RunE:  runFetch,
	}
	AttachFetchFlags(fetchCmd)

	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize a coverage document saved on disk",
		Args:  cobra.NoArgs,
		RunE:  runInspect,
	}
	AttachInspectFlags(inspectCmd)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Watch jenkins coverage and serve it over http",
		Args:  cobra.NoArgs,
		Run:   runServe,
	}
	AttachServeFlags(serveCmd)

	rootCmd.AddCommand(fetchCmd, inspectCmd, serveCmd)
	return &rootCmd
}

// setup loads the configuration and the logger shared by every command
func setup(cmd *cobra.Command) (*config.Config, lumber.Logger) {
	// Load environment variables from .env if available
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: No .env file found")
	}

	cfg, err := config.LoadConfig(cmd)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// patch logconfig file location with root level log file location
	if cfg.LogFile != "" {
		cfg.LogConfig.EnableFile = true
		cfg.LogConfig.FileLocation = filepath.Join(cfg.LogFile, "covbridge.log")
	}

	cfg.LogConfig.Secrets = []string{cfg.Jenkins.Token}

	// You can also use logrus implementation
	// by using lumber.InstanceLogrusLogger
	logger, err := lumber.NewLogger(cfg.LogConfig, cfg.Verbose, lumber.InstanceZapLogger)
	if err != nil {
		log.Fatalf("Could not instantiate logger %s", err.Error())
	}
	logger.Debugf("jenkins config %+v", cfg.Jenkins)
	return cfg, logger
}

func newJenkinsClient(cfg *config.Config, logger lumber.Logger) *jenkins.Client {
	requests := requestutils.New(logger,
		cfg.Jenkins.RequestTimeout(),
		requestutils.ExponentialBackOff(cfg.Jenkins.MaxRetries),
		requestutils.WithBasicAuth(cfg.Jenkins.User, cfg.Jenkins.Token))
	return jenkins.New(&cfg.Jenkins, requests, logger)
}

// targetFromFlags reads the report target of fetch and inspect
func targetFromFlags(cmd *cobra.Command) *core.JobTarget {
	target := &core.JobTarget{}
	target.Job, _ = cmd.Flags().GetString("job")
	target.Build, _ = cmd.Flags().GetInt("build")
	target.Depth, _ = cmd.Flags().GetInt("depth")
	target.Provider, _ = cmd.Flags().GetString("provider")
	target.Filter, _ = cmd.Flags().GetString("filter")
	return target
}

// render writes the summary of report, or of its filtered nodes
func render(cmd *cobra.Command, target *core.JobTarget, report coverage.Report) error {
	format, _ := cmd.Flags().GetString("output")
	if target.Filter == "" {
		return summary.Render(cmd.OutOrStdout(), format, summary.Summarize(target, report))
	}
	tree, ok := report.(*coverage.TreeReport)
	if !ok {
		return errs.New("filter requires a tree report")
	}
	selections, err := tree.Select(target.Filter)
	if err != nil {
		return err
	}
	return summary.Render(cmd.OutOrStdout(), format, summary.SummarizeSelections(target, selections))
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, logger := setup(cmd)
	if err := config.ValidateCfg(cfg, logger); err != nil {
		return err
	}
	target := targetFromFlags(cmd)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	report, err := newJenkinsClient(cfg, logger).Fetch(ctx, target)
	if err != nil {
		return err
	}
	return render(cmd, target, report)
}

func runInspect(cmd *cobra.Command, args []string) error {
	_, logger := setup(cmd)
	target := targetFromFlags(cmd)
	file, _ := cmd.Flags().GetString("file")
	target.Job = filepath.Base(file)

	doc, err := document.Load(file)
	if err != nil {
		logger.Errorf("failed to load %s, error %v", file, err)
		return err
	}
	report, err := jenkins.BuildReport(target.Provider, doc)
	if err != nil {
		return err
	}
	return render(cmd, target, report)
}

func runServe(cmd *cobra.Command, args []string) {
	// create a context that we can cancel
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	// a WaitGroup for the goroutines to tell us they've stopped
	wg := sync.WaitGroup{}

	cfg, logger := setup(cmd)
	if err := config.ValidateCfg(cfg, logger); err != nil {
		logger.Fatalf("Error loading covbridge config: %v", err)
	}

	targets, targetsErr := config.LoadTargets(cfg.Watch.TargetsFile)
	if targetsErr != nil {
		logger.Warnf("No watch targets loaded from %s: %v", cfg.Watch.TargetsFile, targetsErr)
	}
	client := newJenkinsClient(cfg, logger)
	coverageWatcher := watcher.New(client, logger, targets)

	// setting up cron handler
	wg.Add(1)
	go cron.Setup(ctx, &wg, logger, cfg.Watch.Schedule, coverageWatcher)

	if targetsErr == nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := config.WatchTargets(ctx, cfg.Watch.TargetsFile, logger, coverageWatcher.SetTargets); err != nil {
				logger.Errorf("Error watching targets file: %v", err)
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer cancel()
		defer wg.Done()
		router := api.NewRouter(logger, coverageWatcher, client)
		if err := server.ListenAndServe(ctx, router, cfg, logger); err != nil {
			logger.Errorf("Error starting api server: %v", err)
		}
	}()

	// listen for C-cInterrupt
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)

	// create channel to mark status of waitgroup
	// this is required to brutally kill application in case of
	// timeout
	done := make(chan struct{})

	// asynchronously wait for all the go routines
	go func() {
		// and wait for all go routines
		wg.Wait()
		logger.Debugf("main: all goroutines have finished.")
		close(done)
	}()

	// wait for signal channel
	select {
	case <-c:
		logger.Debugf("main: received OS Interrupt signal, attempting graceful shutdown ....")
		// tell the goroutines to stop
		logger.Debugf("main: telling goroutines to stop")
		cancel()
		select {
		case <-done:
			logger.Debugf("Go routines exited within timeout")
		case <-time.After(gracefulTimeout):
			logger.Errorf("Graceful timeout exceeded. Brutally killing the application")
		}
	case <-ctx.Done():
		// the api server stopped on its own
		select {
		case <-done:
		case <-time.After(gracefulTimeout):
			logger.Errorf("Graceful timeout exceeded. Brutally killing the application")
		}
		os.Exit(1)
	}
}
