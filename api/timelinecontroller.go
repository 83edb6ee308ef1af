package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"chronicle/config"
	"chronicle/orchestrator"
)

// TimelineRequest is the JSON payload for a timeline generation run.
type TimelineRequest struct {
	Query       string `json:"query" binding:"required"`
	MaxArticles int    `json:"max_articles"`
	Strategy    string `json:"strategy"`
}

type timelineHandler struct {
	orch *orchestrator.Orchestrator
}

// RegisterTimelineRoutes registers timeline generation routes.
func RegisterTimelineRoutes(r *gin.Engine, orch *orchestrator.Orchestrator) {
	h := &timelineHandler{orch: orch}
	r.POST("/api/timeline", h.handleGenerate)
}

// handleGenerate runs the full pipeline for the requested query.
// POST /api/timeline
func (h *timelineHandler) handleGenerate(c *gin.Context) {
	var req TimelineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	maxArticles := req.MaxArticles
	if maxArticles == 0 {
		maxArticles = config.DefaultMaxArticles
	}
	if maxArticles < config.MinArticles {
		maxArticles = config.MinArticles
	}
	if maxArticles > config.MaxArticles {
		maxArticles = config.MaxArticles
	}

	log.Printf("Timeline request: query=%q max_articles=%d strategy=%q",
		req.Query, maxArticles, req.Strategy)

	result := h.orch.Run(c.Request.Context(), orchestrator.Request{
		Query:       req.Query,
		MaxArticles: maxArticles,
		Strategy:    req.Strategy,
	})

	c.JSON(http.StatusOK, result)
}
