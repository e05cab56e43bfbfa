package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/DarkestAbed/fridai-backend/internal/domain/attachments"
	"github.com/DarkestAbed/fridai-backend/internal/domain/tasks"

	"github.com/gin-gonic/gin"
)

// AttachmentHandler defines the interface for handling task attachment operations
type AttachmentHandler interface {
	Upload(ctx *gin.Context)
	ListByTaskID(ctx *gin.Context)
}

// AttachmentHandler struct holds the services
type attachmentHandler struct {
	attachmentService attachments.AttachmentService
}

// NewAttachmentHandler creates a new AttachmentHandler
func NewAttachmentHandler(attachmentService attachments.AttachmentService) AttachmentHandler {
	return &attachmentHandler{
		attachmentService: attachmentService,
	}
}

// Upload handles the POST request to attach a file to a task
// @Summary Upload a task attachment
// @Description Store an uploaded file for the task with the given ID and serve it under /static/.
// @Tags Attachment
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Task ID"
// @Param file formData file true "File content"
// @Success 201 {object} AttachmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tasks/{id}/attachments [post]
func (handler *attachmentHandler) Upload(ctx *gin.Context) {
	taskID, ok := taskIDParam(ctx)
	if !ok {
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = "no file provided in upload request"
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("failed to open uploaded file: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}
	defer func() {
		_ = file.Close()
	}()

	attachment, err := handler.attachmentService.Upload(ctx, taskID, fileHeader.Filename, file)
	if err != nil {
		var errorResponse ErrorResponse
		if errors.Is(err, tasks.ErrNotFound) {
			errorResponse.Message = fmt.Sprintf("task with id %d not found", taskID)
			ctx.JSON(http.StatusNotFound, errorResponse)
			return
		}
		errorResponse.Message = fmt.Sprintf("error uploading attachment: %v", err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, toAttachmentResponse(attachment))
}

// ListByTaskID handles the GET request to list attachments of a task
// @Summary List task attachments
// @Description Fetch the attachments stored for the task with the given ID.
// @Tags Attachment
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {array} AttachmentResponse
// @Failure 400 {object} ErrorResponse
// @Router /tasks/{id}/attachments [get]
func (handler *attachmentHandler) ListByTaskID(ctx *gin.Context) {
	taskID, ok := taskIDParam(ctx)
	if !ok {
		return
	}

	attachmentList, err := handler.attachmentService.ListByTaskID(ctx, taskID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	var listResponse = []AttachmentResponse{}
	for _, attachment := range attachmentList {
		listResponse = append(listResponse, toAttachmentResponse(attachment))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

func toAttachmentResponse(attachment *attachments.Attachment) AttachmentResponse {
	return AttachmentResponse{
		ID:        attachment.ID,
		TaskID:    attachment.TaskID,
		FileName:  attachment.FileName,
		URL:       attachment.URL,
		CreatedAt: attachment.CreatedAt,
	}
}
