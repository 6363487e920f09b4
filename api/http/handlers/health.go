package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resumeparser/pkg/health"
)

// HealthHandler serves liveness and readiness checks.
type HealthHandler struct {
	svc     health.ReadinessUseCase
	timeout time.Duration
}

func NewHealthHandler(svc health.ReadinessUseCase) *HealthHandler {
	return &HealthHandler{svc: svc, timeout: 2 * time.Second}
}

type readinessResponse struct {
	Status string `json:"status"`
	// Checks maps checker name to "ok" or the failure text.
	Checks map[string]string `json:"checks"`
}

// Health: процесс жив, зависимости не проверяются.
// @Summary Liveness check
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]string
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
}

// Ready: проверяет БД, каталог загрузок и, если включён, кеш поиска.
// @Summary Readiness check
// @Tags    health
// @Produce json
// @Success 200 {object} readinessResponse
// @Failure 503 {object} readinessResponse
// @Router  /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	resp := readinessResponse{Status: "ready", Checks: map[string]string{}}
	status := fiber.StatusOK
	for _, r := range h.svc.Results(ctx) {
		if r.Err != nil {
			resp.Checks[r.Name] = r.Err.Error()
			resp.Status = "not_ready"
			status = fiber.StatusServiceUnavailable
			continue
		}
		resp.Checks[r.Name] = "ok"
	}
	return c.Status(status).JSON(resp)
}
