package coverage

import (
	"errors"
	"net/http"

	"github.com/LambdaTest/coverage-bridge/pkg/core"
	"github.com/LambdaTest/coverage-bridge/pkg/coverage"
	"github.com/LambdaTest/coverage-bridge/pkg/errs"
	"github.com/LambdaTest/coverage-bridge/pkg/lumber"
	"github.com/LambdaTest/coverage-bridge/pkg/summary"
	"github.com/gin-gonic/gin"
)

type liveQuery struct {
	Job      string `form:"job" binding:"required"`
	Provider string `form:"provider,default=cobertura"`
	Build    int    `form:"build" binding:"min=0"`
	Depth    int    `form:"depth,default=2" binding:"min=0"`
	Filter   string `form:"filter"`
}

// Handler serves the latest summaries of the watched targets
func Handler(store core.SummaryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, store.Snapshot())
	}
}

// LiveHandler fetches the coverage of one job on request
func LiveHandler(logger lumber.Logger, fetcher core.CoverageFetcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := liveQuery{}
		if err := c.ShouldBindQuery(&query); err != nil {
			logger.Errorf("error while binding query %v", err)
			c.JSON(http.StatusBadRequest, errs.ErrBadRequest(err.Error()))
			return
		}
		target := &core.JobTarget{
			Job:      query.Job,
			Build:    query.Build,
			Provider: query.Provider,
			Depth:    query.Depth,
			Filter:   query.Filter,
		}

		report, err := fetcher.Fetch(c.Request.Context(), target)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) || errors.Is(err, errs.ErrNoReport) {
				c.JSON(http.StatusNotFound, errs.ErrCoverageNotFound(err.Error()))
				return
			}
			logger.Errorf("error while fetching coverage of %s: %v", target.Key(), err)
			remark := errs.GenericErrRemark.Error()
			var known *errs.Error
			if errors.As(err, &known) {
				remark = known.Message
			}
			c.JSON(http.StatusBadGateway, errs.ErrUpstream(remark))
			return
		}
		if query.Filter == "" {
			c.JSON(http.StatusOK, summary.Summarize(target, report))
			return
		}

		tree, ok := report.(*coverage.TreeReport)
		if !ok {
			c.JSON(http.StatusBadRequest, errs.ErrBadRequest("filter requires a tree report"))
			return
		}
		selections, err := tree.Select(query.Filter)
		if err != nil {
			c.JSON(http.StatusBadRequest, errs.ErrBadRequest(err.Error()))
			return
		}
		c.JSON(http.StatusOK, summary.SummarizeSelections(target, selections))
	}
}
