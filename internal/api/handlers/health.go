package handlers

import (
	"net/http"
	"time"

	"saas-signup-backend/internal/database"
	"saas-signup-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{
		db: db,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Message string `json:"message" example:"error message"`
}

// StatusResponse is returned by the root endpoint
type StatusResponse struct {
	Status  string `json:"status" example:"ok"`
	Message string `json:"message" example:"SaaS backend is running"`
}

// DBTestResponse carries the row returned by SELECT NOW()
type DBTestResponse struct {
	Status string `json:"status" example:"success"`
	Time   NowRow `json:"time"`
}

// NowRow is the single column row of SELECT NOW()
type NowRow struct {
	Now time.Time `json:"now"`
}

// Root reports that the service is up
// @Summary Service status
// @Tags health
// @Produce json
// @Success 200 {object} StatusResponse
// @Router / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{Status: "ok", Message: "SaaS backend is running"})
}

// DBTest runs a trivial query to prove the database is reachable
// @Summary Database connectivity test
// @Description Runs SELECT NOW() against the database
// @Tags health
// @Produce json
// @Success 200 {object} DBTestResponse
// @Failure 500 {object} map[string]interface{} "Database unreachable"
// @Router /db-test [get]
func (h *HealthHandler) DBTest(c *gin.Context) {
	now, err := database.Now(c.Request.Context(), h.db)
	if err != nil {
		logger.WithContext(c.Request.Context()).WithError(err).Error("database connectivity test failed")
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "database connection failed"})
		return
	}

	c.JSON(http.StatusOK, DBTestResponse{Status: "success", Time: NowRow{Now: now}})
}

// Health returns the health status of the application
// @Summary Health check
// @Description Get the overall health status of the application including database connectivity
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Services:  make(map[string]string),
	}

	if err := h.ping(c); err != nil {
		logger.WithContext(c.Request.Context()).WithError(err).Warn("health check: database unreachable")
		response.Status = "unhealthy"
		response.Services["database"] = "unhealthy"
	} else {
		response.Services["database"] = "healthy"
	}

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Ready returns the readiness status of the application
// @Summary Readiness check
// @Description Check if the application is ready to serve requests
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Failure 503 {object} map[string]interface{} "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ready := true
	services := make(map[string]string)

	if err := h.ping(c); err != nil {
		logger.WithContext(c.Request.Context()).WithError(err).Warn("readiness check: database unreachable")
		ready = false
		services["database"] = "not ready"
	} else {
		services["database"] = "ready"
	}

	response := map[string]interface{}{
		"ready":     ready,
		"timestamp": time.Now(),
		"services":  services,
	}

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Description Check if the application is alive and responding
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	// Simple liveness check - if we can respond, we're alive
	c.JSON(http.StatusOK, map[string]interface{}{
		"alive":     true,
		"timestamp": time.Now(),
	})
}

func (h *HealthHandler) ping(c *gin.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(c.Request.Context())
}
