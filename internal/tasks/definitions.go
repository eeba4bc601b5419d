package tasks

import (
	"time"

	"docshelf_app_echo/internal/models"
	"docshelf_app_echo/internal/notif"
)

// DefineTasks registers all available tasks against the given event queue.
func DefineTasks(events notif.Backend) {
	IndexAddNodeTask.Events = events
	IndexRemoveNodeTask.Events = events
	ReindexAllTask.Events = events

	RegisterHandler(IndexAddNodeTask.TaskID(), IndexAddNodeTask.HandleExecution)
	RegisterHandler(IndexRemoveNodeTask.TaskID(), IndexRemoveNodeTask.HandleExecution)
	RegisterHandler(ReindexAllTask.TaskID(), ReindexAllTask.HandleExecution)
}

// DefaultReindexRule runs the full index sweep once a day.
const DefaultReindexRule = "FREQ=DAILY"

// NewReindexAllTask builds the recurring maintenance sweep, first due at
// the given time and repeating per DefaultReindexRule.
func NewReindexAllTask(due time.Time) (*models.ScheduledTask, error) {
	rule := DefaultReindexRule
	return BuildScheduledTask(ReindexAllTask.TaskID(), map[string]interface{}{}, due, &rule, models.ScheduledTaskTypeRecurring, 1)
}
