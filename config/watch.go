package config

import (
	"context"
	"path/filepath"

	"github.com/LambdaTest/coverage-bridge/pkg/core"
	"github.com/LambdaTest/coverage-bridge/pkg/lumber"
	"github.com/LambdaTest/coverage-bridge/pkg/utils"
	"github.com/fsnotify/fsnotify"
)

// WatchTargets reloads the targets file each time it is written or replaced
// and hands the new targets to onChange. A reload that fails keeps the previous
// targets. The parent directory is watched so that a rename over the file is
// seen as well. It runs until ctx is cancelled.
func WatchTargets(ctx context.Context, path string, logger lumber.Logger, onChange func([]*core.JobTarget)) error {
	path, err := utils.ResolveYAMLFile(path)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	path = filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}
	logger.Debugf("watching targets file %s", path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			targets, err := LoadTargets(path)
			if err != nil {
				logger.Errorf("failed to reload targets file %s, keeping previous targets: %v", path, err)
				continue
			}
			logger.Infof("reloaded %d targets from %s", len(targets), path)
			onChange(targets)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Errorf("targets watcher error: %v", err)
		}
	}
}
