// Package worksheet exposes the per-strategy calculate endpoints. One POST
// route per strategy, flat numeric payloads, whole-percent rates on the wire.
package worksheet

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"deal_analyzer/pkg/core/metrics"
	"deal_analyzer/pkg/core/strategy"
	"deal_analyzer/pkg/core/worksheet"
)

// Response is the calculate endpoint reply: the flattened strategy result
// plus its display metric.
type Response struct {
	Strategy strategy.Name          `json:"strategy"`
	Result   map[string]float64     `json:"result"`
	Metric   metrics.StrategyMetric `json:"metric"`
}

// Register mounts the worksheet routes under /api/v1.
func Register(r *gin.Engine) {
	v1 := r.Group("/api/v1")
	{
		v1.POST("/worksheet/:strategy/calculate", Calculate)
	}
}

// Calculate handles POST /api/v1/worksheet/:strategy/calculate.
func Calculate(c *gin.Context) {
	name := strategy.Name(c.Param("strategy"))
	if !strategy.Valid(name) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown strategy: " + string(name)})
		return
	}

	var req worksheet.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		zap.L().Warn("worksheet: bad calculate payload",
			zap.String("strategy", string(name)), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a := req.ToAssumptions()
	c.JSON(http.StatusOK, Response{
		Strategy: name,
		Result:   worksheet.Flatten(name, a),
		Metric:   metrics.EvaluateOne(name, a),
	})
}
