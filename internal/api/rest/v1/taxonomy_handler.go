package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/DarkestAbed/fridai-backend/internal/domain/tasks"
	"github.com/DarkestAbed/fridai-backend/internal/domain/taxonomy"

	"github.com/gin-gonic/gin"
)

// TaxonomyHandler defines the interface for handling category and tag operations
type TaxonomyHandler interface {
	CreateCategory(ctx *gin.Context)
	ListCategories(ctx *gin.Context)
	ListCategoryTasks(ctx *gin.Context)
	CreateTag(ctx *gin.Context)
	ListTags(ctx *gin.Context)
	ListTagTasks(ctx *gin.Context)
}

// TaxonomyHandler struct holds the services
type taxonomyHandler struct {
	categoryService taxonomy.CategoryService
	tagService      taxonomy.TagService
	taskService     tasks.TaskService
}

// NewTaxonomyHandler creates a new TaxonomyHandler
func NewTaxonomyHandler(categoryService taxonomy.CategoryService, tagService taxonomy.TagService, taskService tasks.TaskService) TaxonomyHandler {
	return &taxonomyHandler{
		categoryService: categoryService,
		tagService:      tagService,
		taskService:     taskService,
	}
}

// CreateCategory handles the POST request to create a category
// @Summary Create a category
// @Description Create a category with a unique name.
// @Tags Taxonomy
// @Accept json
// @Produce json
// @Param requestBody body CreateCategoryRequest true "Category Data"
// @Success 201 {object} CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /categories [post]
func (handler *taxonomyHandler) CreateCategory(ctx *gin.Context) {
	var request CreateCategoryRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid category data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	category, err := handler.categoryService.Create(ctx, &taxonomy.Category{Name: request.Name})
	if err != nil {
		var errorResponse ErrorResponse
		if errors.Is(err, taxonomy.ErrDuplicateName) {
			errorResponse.Message = fmt.Sprintf("category %q already exists", request.Name)
			ctx.JSON(http.StatusConflict, errorResponse)
			return
		}
		errorResponse.Message = fmt.Sprintf("error creating category: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, CategoryResponse{ID: category.ID, Name: category.Name})
}

// ListCategories handles the GET request to list categories
// @Summary List categories
// @Description Fetch categories, optionally filtered by a name substring.
// @Tags Taxonomy
// @Accept json
// @Produce json
// @Param q query string false "Name substring"
// @Success 200 {array} CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Router /categories [get]
func (handler *taxonomyHandler) ListCategories(ctx *gin.Context) {
	categories, err := handler.categoryService.List(ctx, ctx.Query("q"))
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	var listResponse = []CategoryResponse{}
	for _, category := range categories {
		listResponse = append(listResponse, CategoryResponse{ID: category.ID, Name: category.Name})
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// ListCategoryTasks handles the GET request to list tasks in a category
// @Summary List tasks belonging to a category
// @Description Fetch tasks filed under the category with the given ID.
// @Tags Taxonomy
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param show_completed query bool false "Include completed tasks"
// @Success 200 {array} TaskResponse
// @Failure 400 {object} ErrorResponse
// @Router /categories/{id}/tasks [get]
func (handler *taxonomyHandler) ListCategoryTasks(ctx *gin.Context) {
	categoryID, ok := pathIDParam(ctx, "category")
	if !ok {
		return
	}

	query := tasks.NewTaskQuery()
	query.CategoryID = &categoryID
	applyShowCompleted(ctx, query)

	handler.respondWithTasks(ctx, query)
}

// CreateTag handles the POST request to create a tag
// @Summary Create a tag
// @Description Create a tag with a unique name.
// @Tags Taxonomy
// @Accept json
// @Produce json
// @Param requestBody body CreateTagRequest true "Tag Data"
// @Success 201 {object} TagResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /tags [post]
func (handler *taxonomyHandler) CreateTag(ctx *gin.Context) {
	var request CreateTagRequest

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

	tag, err := handler.tagService.Create(ctx, &taxonomy.Tag{Name: request.Name})
	if err != nil {
		var errorResponse ErrorResponse
		if errors.Is(err, taxonomy.ErrDuplicateName) {
			errorResponse.Message = fmt.Sprintf("tag %q already exists", request.Name)
			ctx.JSON(http.StatusConflict, errorResponse)
			return
		}
		errorResponse.Message = fmt.Sprintf("error creating tag: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, TagResponse{ID: tag.ID, Name: tag.Name})
}

// ListTags handles the GET request to list tags
// @Summary List tags
// @Description Fetch tags, optionally filtered by a name substring.
// @Tags Taxonomy
// @Accept json
// @Produce json
// @Param q query string false "Name substring"
// @Success 200 {array} TagResponse
// @Failure 400 {object} ErrorResponse
// @Router /tags [get]
func (handler *taxonomyHandler) ListTags(ctx *gin.Context) {
	tags, err := handler.tagService.List(ctx, ctx.Query("q"))
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	var listResponse = []TagResponse{}
	for _, tag := range tags {
		listResponse = append(listResponse, TagResponse{ID: tag.ID, Name: tag.Name})
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// ListTagTasks handles the GET request to list tasks carrying a tag
// @Summary List tasks carrying a tag
// @Description Fetch tasks labeled with the tag with the given ID.
// @Tags Taxonomy
// @Accept json
// @Produce json
// @Param id path int true "Tag ID"
// @Param show_completed query bool false "Include completed tasks"
// @Success 200 {array} TaskResponse
// @Failure 400 {object} ErrorResponse
// @Router /tags/{id}/tasks [get]
func (handler *taxonomyHandler) ListTagTasks(ctx *gin.Context) {
	tagID, ok := pathIDParam(ctx, "tag")
	if !ok {
		return
	}

	query := tasks.NewTaskQuery()
	query.TagID = &tagID
	applyShowCompleted(ctx, query)

	handler.respondWithTasks(ctx, query)
}

func (handler *taxonomyHandler) respondWithTasks(ctx *gin.Context, query *tasks.TaskQuery) {
	taskList, err := handler.taskService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toTaskResponses(taskList))
}

// pathIDParam parses the :id path parameter, answering 400 on garbage input
func pathIDParam(ctx *gin.Context, kind string) (uint, bool) {
	raw := ctx.Param("id")
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid %s id %q", kind, raw)
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return 0, false
	}
	return uint(parsed), true
}

func applyShowCompleted(ctx *gin.Context, query *tasks.TaskQuery) {
	if showCompleted := ctx.Query("show_completed"); len(showCompleted) > 0 {
		query.ShowCompleted = showCompleted == "true" || showCompleted == "1"
	}
}
