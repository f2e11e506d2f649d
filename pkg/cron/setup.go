package cron

import (
	"context"
	"sync"

	"github.com/LambdaTest/coverage-bridge/pkg/core"
	"github.com/LambdaTest/coverage-bridge/pkg/lumber"
	"github.com/robfig/cron/v3"
)

// Setup polls the watched targets once, then on every tick of schedule,
// until ctx is cancelled.
func Setup(ctx context.Context, wg *sync.WaitGroup, logger lumber.Logger, schedule string, poller core.Poller) {
	defer wg.Done()

	poll := func() {
		if err := poller.Poll(ctx); err != nil {
			logger.Errorf("error polling coverage: %v", err)
		}
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := c.AddFunc(schedule, poll); err != nil {
		logger.Errorf("error setting up cron with schedule %q: %v", schedule, err)
		return
	}
	c.Start()
	go poll()

	<-ctx.Done()
	<-c.Stop().Done()
	logger.Infof("Caller has requested graceful shutdown. Returning.....")
}
