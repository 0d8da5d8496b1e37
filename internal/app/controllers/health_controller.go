package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/campus/internal/app/models/dto"
)

// Pinger is anything whose reachability /health reports, such as the database pool
// or the remote catalog.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController answers liveness and readiness checks
type HealthController struct {
	role   string
	checks map[string]Pinger
}

// NewHealthController creates a new HealthController. checks may be empty.
func NewHealthController(role string, checks map[string]Pinger) *HealthController {
	return &HealthController{role: role, checks: checks}
}

// Ping is the liveness check
func (c *HealthController) Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
}

// Health is the readiness check; it pings every registered dependency
func (c *HealthController) Health(ctx *gin.Context) {
	checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	report := gin.H{"role": c.role}
	for name, check := range c.checks {
		if err := check.Ping(checkCtx); err != nil {
			report[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		report[name] = "ok"
	}

	if status != http.StatusOK {
		ctx.JSON(status, dto.Result{Code: status, Message: "Unhealthy", Data: report})
		return
	}
	ctx.JSON(status, dto.Success(report))
}
