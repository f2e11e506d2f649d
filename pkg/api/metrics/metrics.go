package metrics

import (
	"bytes"
	"net/http"

	"github.com/LambdaTest/coverage-bridge/pkg/core"
	"github.com/LambdaTest/coverage-bridge/pkg/errs"
	"github.com/LambdaTest/coverage-bridge/pkg/lumber"
	"github.com/LambdaTest/coverage-bridge/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// Handler exposes the watched summaries as prometheus gauges
func Handler(logger lumber.Logger, store core.SummaryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var buf bytes.Buffer
		if err := metrics.Write(&buf, store.Snapshot()); err != nil {
			logger.Errorf("error while encoding metrics %v", err)
			c.JSON(http.StatusInternalServerError, errs.ErrMetricsEncode(err.Error()))
			return
		}
		c.Data(http.StatusOK, metrics.ContentType, buf.Bytes())
	}
}
