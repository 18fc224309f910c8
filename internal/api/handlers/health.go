package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/johndn/portfolio/internal/api/dto/common"
	"github.com/johndn/portfolio/internal/utils"
	"github.com/johndn/portfolio/internal/version"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		utils.HandleAPIError(c, err, http.StatusServiceUnavailable, "Database connection error")
		return
	}

	info := version.GetBuildInfo()
	c.JSON(http.StatusOK, common.NewSuccessResponse(HealthResponse{
		Status:    "ok",
		Database:  "ok",
		Version:   info.Version,
		GitCommit: info.GitCommit,
	}))
}
