package tasks

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"docshelf_app_echo/internal/models"
	"docshelf_app_echo/internal/notif"
)

// IndexAddNodeTaskDef pushes index-add events for a list of node ids.
type IndexAddNodeTaskDef struct {
	Events notif.Backend
}

// TaskID returns the unique identifier for this task
func (t *IndexAddNodeTaskDef) TaskID() string {
	return "index_add_node"
}

// HandleExecution verifies the nodes still exist and forwards them to the
// indexer queue.
func (t *IndexAddNodeTaskDef) HandleExecution(ctx context.Context, db *gorm.DB, task models.ScheduledTask) (map[string]interface{}, error) {
	nodeIDs := stringArgs(task.Arguments, "node_ids")
	if len(nodeIDs) == 0 {
		return nil, fmt.Errorf("no node_ids provided")
	}

	var existing []string
	if err := db.WithContext(ctx).Model(&models.Node{}).Where("id IN ?", nodeIDs).Pluck("id", &existing).Error; err != nil {
		return nil, fmt.Errorf("verify nodes: %w", err)
	}
	if len(existing) == 0 {
		return map[string]interface{}{"status": "skipped", "reason": "nodes no longer exist"}, nil
	}

	if t.Events != nil {
		if err := t.Events.Push(ctx, notif.IndexAdd(existing...)); err != nil {
			return nil, fmt.Errorf("push index event: %w", err)
		}
	}

	return map[string]interface{}{"status": "success", "indexed": len(existing)}, nil
}

// IndexRemoveNodeTaskDef pushes index-remove events for deleted node ids.
type IndexRemoveNodeTaskDef struct {
	Events notif.Backend
}

// TaskID returns the unique identifier for this task
func (t *IndexRemoveNodeTaskDef) TaskID() string {
	return "index_remove_node"
}

// HandleExecution forwards the removed ids to the indexer queue. The nodes
// are already gone from the database, so no verification happens here.
func (t *IndexRemoveNodeTaskDef) HandleExecution(ctx context.Context, db *gorm.DB, task models.ScheduledTask) (map[string]interface{}, error) {
	nodeIDs := stringArgs(task.Arguments, "node_ids")
	if len(nodeIDs) == 0 {
		return nil, fmt.Errorf("no node_ids provided")
	}

	if t.Events != nil {
		if err := t.Events.Push(ctx, notif.IndexRemove(nodeIDs...)); err != nil {
			return nil, fmt.Errorf("push index event: %w", err)
		}
	}

	return map[string]interface{}{"status": "success", "removed": len(nodeIDs)}, nil
}

const reindexBatchSize = 500

// ReindexAllTaskDef sweeps the whole node table and re-queues every node
// for indexing. Scheduled as a recurring task (RRULE) to repair index
// drift.
type ReindexAllTaskDef struct {
	Events notif.Backend
}

// TaskID returns the unique identifier for this task
func (t *ReindexAllTaskDef) TaskID() string {
	return "reindex_all"
}

// HandleExecution walks node ids in batches and pushes one index-add event
// per batch.
func (t *ReindexAllTaskDef) HandleExecution(ctx context.Context, db *gorm.DB, task models.ScheduledTask) (map[string]interface{}, error) {
	var total int
	lastID := ""
	for {
		var batch []string
		q := db.WithContext(ctx).Model(&models.Node{}).Order("id ASC").Limit(reindexBatchSize)
		if lastID != "" {
			q = q.Where("id > ?", lastID)
		}
		if err := q.Pluck("id", &batch).Error; err != nil {
			return nil, fmt.Errorf("list nodes after %q: %w", lastID, err)
		}
		if len(batch) == 0 {
			break
		}

		if t.Events != nil {
			if err := t.Events.Push(ctx, notif.IndexAdd(batch...)); err != nil {
				return nil, fmt.Errorf("push index event: %w", err)
			}
		}
		total += len(batch)
		lastID = batch[len(batch)-1]

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	log.Printf("[Task: reindex_all] queued %d nodes", total)
	return map[string]interface{}{"status": "success", "queued": total}, nil
}

// Singleton instances wired up by DefineTasks.
var (
	IndexAddNodeTask    = &IndexAddNodeTaskDef{}
	IndexRemoveNodeTask = &IndexRemoveNodeTaskDef{}
	ReindexAllTask      = &ReindexAllTaskDef{}
)
