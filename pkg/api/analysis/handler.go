// Package analysis exposes the full-property analysis endpoints: run every
// strategy against a property record, rank them, and optionally persist the
// result.
package analysis

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"deal_analyzer/pkg/core/assumption"
	"deal_analyzer/pkg/core/metrics"
	"deal_analyzer/pkg/core/property"
	"deal_analyzer/pkg/core/report"
	"deal_analyzer/pkg/core/store"
	"deal_analyzer/pkg/core/strategy"
)

var repo = store.NewAnalysisRepo()

// Response is the analyze endpoint reply.
type Response struct {
	ID          string                   `json:"id,omitempty"`
	Address     string                   `json:"address"`
	Assumptions assumption.Assumptions   `json:"assumptions"`
	Results     strategy.Results         `json:"results"`
	Metrics     []metrics.StrategyMetric `json:"metrics"`
	Best        metrics.StrategyMetric   `json:"best"`
	Report      string                   `json:"report"`
	Saved       bool                     `json:"saved"`
}

// Register mounts the analysis routes under /api/v1.
func Register(r *gin.Engine) {
	v1 := r.Group("/api/v1")
	{
		v1.POST("/analysis", Analyze)
		v1.GET("/analysis/:id", Get)
	}
}

// Analyze handles POST /api/v1/analysis. The body is a raw property feed
// record; ?save=true persists the result when a database is configured.
func Analyze(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := property.Parse(raw)
	if err != nil {
		zap.L().Warn("analysis: unparseable property payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a := assumption.LoadProperty(data)
	results := strategy.CalculateAll(a)
	ms := metrics.Evaluate(a, results)
	best := metrics.Best(ms)
	address := data.Address.String()

	resp := Response{
		Address:     address,
		Assumptions: a,
		Results:     results,
		Metrics:     ms,
		Best:        best,
		Report:      report.Comparison(address, ms, best),
	}

	if c.Query("save") == "true" {
		id, err := repo.Save(c.Request.Context(), &store.SavedAnalysis{
			Address:     address,
			Assumptions: a,
			Metrics:     ms,
			Best:        best,
		})
		if err != nil {
			// Persistence is best-effort; the analysis itself still succeeds.
			zap.L().Warn("analysis: save failed", zap.Error(err))
		} else {
			resp.ID = id.String()
			resp.Saved = true
		}
	}

	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/v1/analysis/:id.
func Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid analysis id"})
		return
	}

	sa, err := repo.Load(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sa)
}
