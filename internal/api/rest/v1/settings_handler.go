package v1

import (
	"fmt"
	"net/http"

	"github.com/DarkestAbed/fridai-backend/internal/domain/settings"

	"github.com/gin-gonic/gin"
)

// SettingsHandler defines the interface for handling runtime configuration operations
type SettingsHandler interface {
	Get(ctx *gin.Context)
	Update(ctx *gin.Context)
}

// SettingsHandler struct holds the services
type settingsHandler struct {
	settingsService settings.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService settings.SettingsService) SettingsHandler {
	return &settingsHandler{
		settingsService: settingsService,
	}
}

// Get handles the GET request to fetch the runtime configuration
// @Summary Retrieve the runtime configuration
// @Description Fetch the current settings, creating them with defaults on first read.
// @Tags Config
// @Accept json
// @Produce json
// @Success 200 {object} SettingsResponse
// @Failure 400 {object} ErrorResponse
// @Router /config [get]
func (handler *settingsHandler) Get(ctx *gin.Context) {
	current, err := handler.settingsService.Get(ctx)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("settings query failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toSettingsResponse(current))
}

// Update handles the PATCH request to apply a partial settings update
// @Summary Apply a partial settings update
// @Description Merge the given fields into the stored settings, validate the result and hot-reload the cache.
// @Tags Config
// @Accept json
// @Produce json
// @Param requestBody body UpdateSettingsRequest true "Settings Data"
// @Success 200 {object} SettingsResponse
// @Failure 400 {object} ErrorResponse
// @Router /config [patch]
func (handler *settingsHandler) Update(ctx *gin.Context) {
	var request UpdateSettingsRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid settings data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	patch := &settings.Patch{
		Timezone:                 request.Timezone,
		Theme:                    request.Theme,
		NotificationsEnabled:     request.NotificationsEnabled,
		NearDueHours:             request.NearDueHours,
		SchedulerIntervalSeconds: request.SchedulerIntervalSeconds,
		NotifyURLs:               request.NotifyURLs,
	}

	updated, err := handler.settingsService.Apply(ctx, patch)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error applying settings: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toSettingsResponse(updated))
}

func toSettingsResponse(current *settings.AppSettings) SettingsResponse {
	return SettingsResponse{
		Timezone:                 current.Timezone,
		Theme:                    current.Theme,
		NotificationsEnabled:     current.NotificationsEnabled,
		NearDueHours:             current.NearDueHours,
		SchedulerIntervalSeconds: current.SchedulerIntervalSeconds,
		NotifyURLs:               current.NotifyURLs,
	}
}
