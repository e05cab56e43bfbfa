package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/DarkestAbed/fridai-backend/internal/domain/notifications"

	"github.com/gin-gonic/gin"
)

// DefaultLogLimit is the number of log rows returned when no limit is given.
const DefaultLogLimit = 50

// NotificationHandler defines the interface for handling notification operations
type NotificationHandler interface {
	RunCron(ctx *gin.Context)
	SendTest(ctx *gin.Context)
	ListLogs(ctx *gin.Context)
	GetTemplate(ctx *gin.Context)
	UpdateTemplate(ctx *gin.Context)
}

// NotificationHandler struct holds the services
type notificationHandler struct {
	notificationService notifications.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService notifications.NotificationService) NotificationHandler {
	return &notificationHandler{
		notificationService: notificationService,
	}
}

// RunCron handles the POST request to run a reminder sweep
// @Summary Run a reminder sweep
// @Description Send reminders for near-due tasks, overdue tasks or both, and report how many went out.
// @Tags Notification
// @Accept json
// @Produce json
// @Param mode query string false "Sweep mode (near_due/overdue/both)"
// @Success 200 {object} SentResponse
// @Failure 400 {object} ErrorResponse
// @Router /notifications/cron [post]
func (handler *notificationHandler) RunCron(ctx *gin.Context) {
	mode := ctx.DefaultQuery("mode", "both")

	sent := 0
	switch mode {
	case "near_due":
		count, err := handler.notificationService.TriggerDueSoon(ctx)
		if err != nil {
			handler.respondSweepError(ctx, err)
			return
		}
		sent = count
	case "overdue":
		count, err := handler.notificationService.TriggerOverdue(ctx)
		if err != nil {
			handler.respondSweepError(ctx, err)
			return
		}
		sent = count
	case "both":
		dueSoon, err := handler.notificationService.TriggerDueSoon(ctx)
		if err != nil {
			handler.respondSweepError(ctx, err)
			return
		}
		overdue, err := handler.notificationService.TriggerOverdue(ctx)
		if err != nil {
			handler.respondSweepError(ctx, err)
			return
		}
		sent = dueSoon + overdue
	default:
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid mode %q; use near_due, overdue or both", mode)
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, SentResponse{Sent: sent})
}

// SendTest handles the POST request to send a test notification
// @Summary Send a test notification
// @Description Deliver a fixed test message to every configured destination.
// @Tags Notification
// @Accept json
// @Produce json
// @Success 200 {object} TestNotificationResponse
// @Failure 400 {object} ErrorResponse
// @Router /notifications/test [post]
func (handler *notificationHandler) SendTest(ctx *gin.Context) {
	reached, err := handler.notificationService.SendTest(ctx)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("test notification failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, TestNotificationResponse{Destinations: reached})
}

// ListLogs handles the GET request to list recent notification logs
// @Summary List recent notification logs
// @Description Fetch the most recent notification log entries, newest first.
// @Tags Notification
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of rows"
// @Success 200 {array} NotificationLogResponse
// @Failure 400 {object} ErrorResponse
// @Router /notifications/logs [get]
func (handler *notificationHandler) ListLogs(ctx *gin.Context) {
	limit := DefaultLogLimit
	if raw := ctx.Query("limit"); len(raw) > 0 {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			var errorResponse ErrorResponse
			errorResponse.Message = fmt.Sprintf("invalid limit %q", raw)
			ctx.JSON(http.StatusBadRequest, errorResponse)
			return
		}
		limit = parsed
	}

	logs, err := handler.notificationService.ListLogs(ctx, limit)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	var listResponse = []NotificationLogResponse{}
	for _, log := range logs {
		listResponse = append(listResponse, NotificationLogResponse{
			ID:          log.ID,
			TaskID:      log.TaskID,
			Kind:        log.Kind,
			Destination: log.Destination,
			Payload:     log.Payload,
			SentAt:      log.SentAt,
		})
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetTemplate handles the GET request to fetch a notification template
// @Summary Retrieve a notification template by key
// @Description Fetch the markdown template for a notification kind; a missing key yields empty markdown.
// @Tags Notification
// @Accept json
// @Produce json
// @Param key path string true "Template key"
// @Success 200 {object} TemplateResponse
// @Failure 400 {object} ErrorResponse
// @Router /notifications/templates/{key} [get]
func (handler *notificationHandler) GetTemplate(ctx *gin.Context) {
	key := ctx.Param("key")

	template, err := handler.notificationService.GetTemplate(ctx, key)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("template query failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, TemplateResponse{Key: template.Key, Markdown: template.Markdown})
}

// UpdateTemplate handles the PATCH request to upsert a notification template
// @Summary Create or replace a notification template
// @Description Store the markdown template used for a notification kind.
// @Tags Notification
// @Accept json
// @Produce json
// @Param key path string true "Template key"
// @Param requestBody body UpdateTemplateRequest true "Template Data"
// @Success 200 {object} TemplateResponse
// @Failure 400 {object} ErrorResponse
// @Router /notifications/templates/{key} [patch]
func (handler *notificationHandler) UpdateTemplate(ctx *gin.Context) {
	key := ctx.Param("key")

	var request UpdateTemplateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid template data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := handler.notificationService.UpsertTemplate(ctx, key, request.Markdown); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error updating template: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, TemplateResponse{Key: key, Markdown: request.Markdown})
}

func (handler *notificationHandler) respondSweepError(ctx *gin.Context, err error) {
	var errorResponse ErrorResponse
	errorResponse.Message = fmt.Sprintf("reminder sweep failed: %v", err.Error())
	ctx.JSON(http.StatusBadRequest, errorResponse)
}
