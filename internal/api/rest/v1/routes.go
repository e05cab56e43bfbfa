package v1

import (
	"github.com/DarkestAbed/fridai-backend/internal/domain/attachments"
	"github.com/DarkestAbed/fridai-backend/internal/domain/notifications"
	"github.com/DarkestAbed/fridai-backend/internal/domain/settings"
	"github.com/DarkestAbed/fridai-backend/internal/domain/tasks"
	"github.com/DarkestAbed/fridai-backend/internal/domain/taxonomy"
	"github.com/DarkestAbed/fridai-backend/internal/domain/views"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	taskService tasks.TaskService,
	relationshipService tasks.RelationshipService,
	categoryService taxonomy.CategoryService,
	tagService taxonomy.TagService,
	attachmentService attachments.AttachmentService,
	viewService views.ViewService,
	notificationService notifications.NotificationService,
	settingsService settings.SettingsService) {

	api := r.Group(BasePath) // lookup in version file

	// Tasks Routes
	taskHandler := NewTaskHandler(taskService)
	api.POST("/tasks", taskHandler.Create)
	api.GET("/tasks", taskHandler.List)
	api.GET("/tasks/all", taskHandler.List)
	api.GET("/tasks/search", taskHandler.Search)
	api.GET("/tasks/next", taskHandler.Next)
	api.POST("/tasks/:id/complete", taskHandler.Complete)
	api.PATCH("/tasks/:id/description", taskHandler.SetDescription)
	api.PATCH("/tasks/:id/due", taskHandler.SetDue)
	api.POST("/tasks/:id/tags", taskHandler.AddTags)
	api.DELETE("/tasks/:id", taskHandler.DeleteByID)

	// Attachments Routes
	attachmentHandler := NewAttachmentHandler(attachmentService)
	api.POST("/tasks/:id/attachments", attachmentHandler.Upload)
	api.GET("/tasks/:id/attachments", attachmentHandler.ListByTaskID)

	// Categories and Tags Routes
	taxonomyHandler := NewTaxonomyHandler(categoryService, tagService, taskService)
	api.POST("/categories", taxonomyHandler.CreateCategory)
	api.GET("/categories", taxonomyHandler.ListCategories)
	api.GET("/categories/:id/tasks", taxonomyHandler.ListCategoryTasks)
	api.POST("/tags", taxonomyHandler.CreateTag)
	api.GET("/tags", taxonomyHandler.ListTags)
	api.GET("/tags/:id/tasks", taxonomyHandler.ListTagTasks)

	// Relationships Routes
	relationshipHandler := NewRelationshipHandler(relationshipService)
	api.POST("/relationships", relationshipHandler.Create)
	api.GET("/relationships", relationshipHandler.List)

	// Views Routes
	viewHandler := NewViewHandler(viewService)
	api.GET("/views/categories-summary", viewHandler.CategorySummary)
	api.GET("/views/status-summary", viewHandler.StatusSummary)
	api.GET("/views/tags-summary", viewHandler.TagSummary)

	// Notifications Routes
	notificationHandler := NewNotificationHandler(notificationService)
	api.POST("/notifications/cron", notificationHandler.RunCron)
	api.POST("/notifications/test", notificationHandler.SendTest)
	api.GET("/notifications/logs", notificationHandler.ListLogs)
	api.GET("/notifications/templates/:key", notificationHandler.GetTemplate)
	api.PATCH("/notifications/templates/:key", notificationHandler.UpdateTemplate)

	// Config Routes
	settingsHandler := NewSettingsHandler(settingsService)
	api.GET("/config", settingsHandler.Get)
	api.PATCH("/config", settingsHandler.Update)
}
