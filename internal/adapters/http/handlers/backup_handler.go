package handlers

import (
	"crypto/subtle"

	"iadev-dashboard/internal/config"
	"iadev-dashboard/internal/core/services"
	"iadev-dashboard/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// BackupHandler handles backup endpoints
type BackupHandler struct {
	backupService *services.BackupService
	cfg           *config.Config
}

// NewBackupHandler creates a new backup handler
func NewBackupHandler(backupService *services.BackupService, cfg *config.Config) *BackupHandler {
	return &BackupHandler{backupService: backupService, cfg: cfg}
}

// BackupResponse describes an uploaded backup
type BackupResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	FileName string `json:"fileName"`
	FileID   string `json:"fileId"`
	Link     string `json:"link,omitempty"`
}

// Manual exports the dataset on demand
// @Summary Manual backup
// @Description Export every member, transaction and the organization profile. Master only.
// @Tags Backup
// @Produce json
// @Security BearerAuth
// @Success 200 {object} BackupResponse
// @Failure 403 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /api/backup [post]
func (h *BackupHandler) Manual(c *fiber.Ctx) error {
	return h.run(c, services.TriggerManual)
}

// Auto exports the dataset for an external scheduler holding the shared key
// @Summary Automatic backup
// @Tags Backup
// @Produce json
// @Param key query string true "Shared cron secret"
// @Success 200 {object} BackupResponse
// @Failure 401 {object} response.Response
// @Router /api/backup/auto [get]
func (h *BackupHandler) Auto(c *fiber.Ctx) error {
	secret := h.cfg.Backup.CronSecret
	key := c.Query("key")
	if secret == "" || subtle.ConstantTimeCompare([]byte(key), []byte(secret)) != 1 {
		return response.Unauthorized(c, "Unauthorized access to automatic backup")
	}
	return h.run(c, services.TriggerAuto)
}

func (h *BackupHandler) run(c *fiber.Ctx, trigger services.BackupTrigger) error {
	result, err := h.backupService.Run(c.Context(), trigger)
	if err != nil {
		return writeError(c, err, "Failed to save backup")
	}

	return response.JSON(c, BackupResponse{
		Success:  true,
		Message:  "Backup saved",
		FileName: result.FileName,
		FileID:   result.FileID,
		Link:     result.Link,
	})
}
