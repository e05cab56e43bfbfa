package v1

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/DarkestAbed/fridai-backend/internal/domain/tasks"

	"github.com/gin-gonic/gin"
)

// DefaultNextWindowHours is the horizon applied when /tasks/next gets no bound.
const DefaultNextWindowHours = 48

// TaskHandler defines the interface for handling task-related operations
type TaskHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	Search(ctx *gin.Context)
	Next(ctx *gin.Context)
	Complete(ctx *gin.Context)
	SetDescription(ctx *gin.Context)
	SetDue(ctx *gin.Context)
	AddTags(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// TaskHandler struct holds the services
type taskHandler struct {
	taskService tasks.TaskService
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService tasks.TaskService) TaskHandler {
	return &taskHandler{
		taskService: taskService,
	}
}

// Create handles the POST request to create a task
// @Summary Create a task
// @Description Create a task with an optional description, due date, category and tags.
// @Tags Task
// @Accept json
// @Produce json
// @Param requestBody body CreateTaskRequest true "Task Data"
// @Success 201 {object} TaskResponse
// @Failure 400 {object} ErrorResponse
// @Router /tasks [post]
func (handler *taskHandler) Create(ctx *gin.Context) {
	var request CreateTaskRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid task data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	task := &tasks.Task{
		Title:       request.Title,
		Description: request.Description,
		DueAt:       request.DueAt,
		CategoryID:  request.CategoryID,
		TagIDs:      request.TagIDs,
	}

	created, err := handler.taskService.Create(ctx, task)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error creating task: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, toTaskResponse(created))
}

// List handles the GET request to list tasks with optional query parameters
// @Summary List tasks based on query parameters
// @Description Fetch tasks filtered by search text, tag, category, status or overdue state, ordered by due date with undated tasks last.
// @Tags Task
// @Accept json
// @Produce json
// @Param q query string false "Case-insensitive substring over title and description"
// @Param tag query int false "Tag ID"
// @Param category query int false "Category ID"
// @Param status query string false "Task status (pending/completed)"
// @Param overdue_only query bool false "Only pending tasks past their due date"
// @Param show_completed query bool false "Include completed tasks"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Success 200 {array} TaskResponse
// @Failure 400 {object} ErrorResponse
// @Router /tasks [get]
func (handler *taskHandler) List(ctx *gin.Context) {
	query := tasks.NewTaskQuery()

	if search := ctx.Query("q"); len(search) > 0 {
		query.Search = search
	}

	if tagID := ctx.Query("tag"); len(tagID) > 0 {
		parsed, err := strconv.ParseUint(tagID, 10, 32)
		if err != nil {
			var errorResponse ErrorResponse
			errorResponse.Message = fmt.Sprintf("invalid tag id %q", tagID)
			ctx.JSON(http.StatusBadRequest, errorResponse)
			return
		}
		id := uint(parsed)
		query.TagID = &id
	}

	if categoryID := ctx.Query("category"); len(categoryID) > 0 {
		parsed, err := strconv.ParseUint(categoryID, 10, 32)
		if err != nil {
			var errorResponse ErrorResponse
			errorResponse.Message = fmt.Sprintf("invalid category id %q", categoryID)
			ctx.JSON(http.StatusBadRequest, errorResponse)
			return
		}
		id := uint(parsed)
		query.CategoryID = &id
	}

	if status := ctx.Query("status"); len(status) > 0 {
		parsed := tasks.Status(status)
		query.Status = &parsed
	}

	if overdueOnly := ctx.Query("overdue_only"); len(overdueOnly) > 0 {
		query.OverdueOnly = overdueOnly == "true" || overdueOnly == "1"
	}

	if showCompleted := ctx.Query("show_completed"); len(showCompleted) > 0 {
		query.ShowCompleted = showCompleted == "true" || showCompleted == "1"
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		if parsed, err := strconv.Atoi(limit); err == nil {
			query.Limit = parsed
		}
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		if parsed, err := strconv.Atoi(offset); err == nil {
			query.Offset = parsed
		}
	}

	if err := query.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	handler.respondWithList(ctx, query)
}

// Search handles the GET request to search tasks by text
// @Summary Search tasks by title or description substring
// @Description Fetch tasks whose title or description contains the given text, case-insensitively.
// @Tags Task
// @Accept json
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {array} TaskResponse
// @Failure 400 {object} ErrorResponse
// @Router /tasks/search [get]
func (handler *taskHandler) Search(ctx *gin.Context) {
	search := ctx.Query("q")
	if len(search) == 0 {
		var errorResponse ErrorResponse
		errorResponse.Message = "missing search parameter q"
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	query := tasks.NewTaskQuery()
	query.Search = search

	handler.respondWithList(ctx, query)
}

// Next handles the GET request to list tasks due within a window
// @Summary List tasks due within the coming window
// @Description Fetch pending dated tasks due within the given days or hours, ordered by due date ascending. Defaults to 48 hours.
// @Tags Task
// @Accept json
// @Produce json
// @Param days query int false "Window length in days"
// @Param hours query int false "Window length in hours"
// @Success 200 {array} TaskResponse
// @Failure 400 {object} ErrorResponse
// @Router /tasks/next [get]
func (handler *taskHandler) Next(ctx *gin.Context) {
	window := time.Duration(DefaultNextWindowHours) * time.Hour

	days := ctx.Query("days")
	hours := ctx.Query("hours")
	switch {
	case len(days) > 0:
		parsed, err := strconv.Atoi(days)
		if err != nil || parsed <= 0 {
			var errorResponse ErrorResponse
			errorResponse.Message = fmt.Sprintf("invalid days value %q", days)
			ctx.JSON(http.StatusBadRequest, errorResponse)
			return
		}
		window = time.Duration(parsed) * 24 * time.Hour
	case len(hours) > 0:
		parsed, err := strconv.Atoi(hours)
		if err != nil || parsed <= 0 {
			var errorResponse ErrorResponse
			errorResponse.Message = fmt.Sprintf("invalid hours value %q", hours)
			ctx.JSON(http.StatusBadRequest, errorResponse)
			return
		}
		window = time.Duration(parsed) * time.Hour
	}

	taskList, err := handler.taskService.NextWindow(ctx, time.Now().Add(window))
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toTaskResponses(taskList))
}

// Complete handles the POST request to mark a task as completed
// @Summary Mark a task as completed
// @Description Set the status of the task with the given ID to completed.
// @Tags Task
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} TaskResponse
// @Failure 404 {object} ErrorResponse
// @Router /tasks/{id}/complete [post]
func (handler *taskHandler) Complete(ctx *gin.Context) {
	taskID, ok := taskIDParam(ctx)
	if !ok {
		return
	}

	task, err := handler.taskService.Complete(ctx, taskID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("task with id %d not found", taskID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toTaskResponse(task))
}

// SetDescription handles the PATCH request to replace a task description
// @Summary Replace a task description
// @Description Replace the description of the task with the given ID. A null description clears it.
// @Tags Task
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param requestBody body SetDescriptionRequest true "Description Data"
// @Success 200 {object} TaskResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tasks/{id}/description [patch]
func (handler *taskHandler) SetDescription(ctx *gin.Context) {
	taskID, ok := taskIDParam(ctx)
	if !ok {
		return
	}

	var request SetDescriptionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid description data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	task, err := handler.taskService.SetDescription(ctx, taskID, request.Description)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("task with id %d not found", taskID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toTaskResponse(task))
}

// SetDue handles the PATCH request to replace a task due date
// @Summary Replace a task due date
// @Description Replace the due date of the task with the given ID. A null due date clears it.
// @Tags Task
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param requestBody body SetDueRequest true "Due Date Data"
// @Success 200 {object} TaskResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tasks/{id}/due [patch]
func (handler *taskHandler) SetDue(ctx *gin.Context) {
	taskID, ok := taskIDParam(ctx)
	if !ok {
		return
	}

	var request SetDueRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid due date data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	task, err := handler.taskService.SetDue(ctx, taskID, request.DueAt)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("task with id %d not found", taskID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toTaskResponse(task))
}

// AddTags handles the POST request to attach tags to a task
// @Summary Attach tags to a task
// @Description Attach existing tags to the task with the given ID, keeping ones already attached.
// @Tags Task
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param requestBody body AddTagsRequest true "Tag IDs"
// @Success 200 {object} TaskTagsResponse
// @Failure 400 {object} ErrorResponse
// @Router /tasks/{id}/tags [post]
func (handler *taskHandler) AddTags(ctx *gin.Context) {
	taskID, ok := taskIDParam(ctx)
	if !ok {
		return
	}

	var request AddTagsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid tag data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	tagIDs, err := handler.taskService.AddTags(ctx, taskID, request.TagIDs)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error attaching tags: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, TaskTagsResponse{TaskID: taskID, TagIDs: tagIDs})
}

// DeleteByID handles the DELETE request to remove a task by ID
// @Summary Delete a task by ID
// @Description Delete the task with the given ID along with its attachments.
// @Tags Task
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /tasks/{id} [delete]
func (handler *taskHandler) DeleteByID(ctx *gin.Context) {
	taskID, ok := taskIDParam(ctx)
	if !ok {
		return
	}

	if err := handler.taskService.DeleteByID(ctx, taskID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("task with id %d not found", taskID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = fmt.Sprintf("task with id %d deleted", taskID)
	ctx.JSON(http.StatusOK, infoResponse)
}

func (handler *taskHandler) respondWithList(ctx *gin.Context, query *tasks.TaskQuery) {
	taskList, err := handler.taskService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toTaskResponses(taskList))
}

// taskIDParam parses the :id path parameter, answering 400 on garbage input
func taskIDParam(ctx *gin.Context) (uint, bool) {
	return pathIDParam(ctx, "task")
}

func toTaskResponse(task *tasks.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		DueAt:       task.DueAt,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
		CategoryID:  task.CategoryID,
		TagIDs:      task.TagIDs,
	}
}

func toTaskResponses(taskList []*tasks.Task) []TaskResponse {
	var listResponse = []TaskResponse{}
	for _, task := range taskList {
		listResponse = append(listResponse, toTaskResponse(task))
	}
	return listResponse
}
