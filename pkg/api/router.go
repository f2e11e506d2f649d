package api

import (
	"github.com/LambdaTest/coverage-bridge/pkg/api/coverage"
	"github.com/LambdaTest/coverage-bridge/pkg/api/health"
	"github.com/LambdaTest/coverage-bridge/pkg/api/metrics"
	"github.com/LambdaTest/coverage-bridge/pkg/core"
	"github.com/LambdaTest/coverage-bridge/pkg/lumber"
	"github.com/gin-gonic/gin"
)

// Router for covbridge
type Router struct {
	logger  lumber.Logger
	store   core.SummaryStore
	fetcher core.CoverageFetcher
}

// NewRouter returns instance of Router
func NewRouter(logger lumber.Logger, store core.SummaryStore, fetcher core.CoverageFetcher) Router {
	return Router{
		logger:  logger,
		store:   store,
		fetcher: fetcher,
	}
}

// Handler function will perform all route operations
func (r Router) Handler() *gin.Engine {
	r.logger.Infof("Setting up routes")
	router := gin.New()
	router.Use(gin.LoggerWithWriter(lumber.NewWriter(r.logger)), gin.Recovery())
	router.GET("/health", health.Handler)
	router.GET("/coverage", coverage.Handler(r.store))
	router.GET("/coverage/live", coverage.LiveHandler(r.logger, r.fetcher))
	router.GET("/metrics", metrics.Handler(r.logger, r.store))

	return router
}
