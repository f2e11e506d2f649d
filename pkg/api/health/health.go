package health

import (
	"net/http"

	"github.com/LambdaTest/coverage-bridge/pkg/global"
	"github.com/gin-gonic/gin"
)

// VersionHeader carries the running covbridge version
const VersionHeader = "X-Covbridge-Version"

// Handler for health API
func Handler(c *gin.Context) {
	c.Header(VersionHeader, global.BinaryVersion)
	c.Data(http.StatusOK, gin.MIMEPlain, []byte(http.StatusText(http.StatusOK)))
}
