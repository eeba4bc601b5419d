package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"docshelf_app_echo/internal/loader"
	"docshelf_app_echo/internal/models"
	"docshelf_app_echo/internal/notif"
	"docshelf_app_echo/internal/viewstate"
)

// ErrNodeNotFound is returned for lookups of nodes the user does not own.
var ErrNodeNotFound = errors.New("node not found")

// ErrInvalidMove is returned when a move would place a folder inside its
// own subtree.
var ErrInvalidMove = errors.New("cannot move a node into its own subtree")

// NodeService owns the node tree: paginated child listings written into
// the shared view state, folder CRUD, moves and breadcrumb resolution.
// Mutations push index events to the notification queue on a best-effort
// basis.
type NodeService struct {
	db     *gorm.DB
	state  *viewstate.Store
	events notif.Backend
}

// NewNodeService creates a NodeService. events may be nil, in which case
// no index events are published.
func NewNodeService(db *gorm.DB, state *viewstate.Store, events notif.Backend) *NodeService {
	return &NodeService{db: db, state: state, events: events}
}

// FetchPage loads one page of the folder's children and stores it as the
// panel's current listing. The folder must exist and belong to the
// requesting user. The remembered page size of the panel is updated only
// here, on success.
func (s *NodeService) FetchPage(ctx context.Context, req loader.FetchRequest) error {
	if _, err := s.GetFolder(ctx, req.UserID, req.FolderID); err != nil {
		return err
	}

	var total int64
	q := s.db.WithContext(ctx).Model(&models.Node{}).
		Where("parent_id = ? AND user_id = ?", req.FolderID, req.UserID)
	if err := q.Count(&total).Error; err != nil {
		return fmt.Errorf("count children of %s: %w", req.FolderID, err)
	}

	var nodes []models.Node
	err := s.db.WithContext(ctx).
		Where("parent_id = ? AND user_id = ?", req.FolderID, req.UserID).
		Order("ctype ASC, title ASC"). // folders sort before documents
		Limit(req.PageSize).
		Offset(models.PageOffset(req.PageNumber, req.PageSize)).
		Find(&nodes).Error
	if err != nil {
		return fmt.Errorf("list children of %s: %w", req.FolderID, err)
	}

	s.state.SetListing(req.Panel, viewstate.Listing{
		Items:      nodes,
		PageSize:   req.PageSize,
		PageNumber: req.PageNumber,
		NumPages:   models.NumPages(total, req.PageSize),
	})
	return nil
}

// GetFolder returns a folder owned by the user.
func (s *NodeService) GetFolder(ctx context.Context, userID uint, folderID string) (*models.Node, error) {
	var node models.Node
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ? AND ctype = ?", folderID, userID, models.NodeTypeFolder).
		First(&node).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNodeNotFound
		}
		return nil, err
	}
	return &node, nil
}

// GetNode returns any node, folder or document, owned by the user.
func (s *NodeService) GetNode(ctx context.Context, userID uint, nodeID string) (*models.Node, error) {
	return s.getOwned(ctx, userID, nodeID)
}

// CreateFolder creates a folder under the given parent. Titles are unique
// per parent per user; a duplicate surfaces as the database error.
func (s *NodeService) CreateFolder(ctx context.Context, userID uint, parentID, title string) (*models.Node, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("folder title must not be empty")
	}
	if _, err := s.GetFolder(ctx, userID, parentID); err != nil {
		return nil, err
	}

	node := models.Node{
		ParentID: &parentID,
		CType:    models.NodeTypeFolder,
		Title:    title,
		UserID:   userID,
	}
	if err := s.db.WithContext(ctx).Create(&node).Error; err != nil {
		return nil, fmt.Errorf("create folder %q: %w", title, err)
	}

	s.publish(ctx, notif.IndexAdd(node.ID))
	return &node, nil
}

// DeleteNode removes a node and all of its descendants, then publishes one
// index-remove event covering every deleted id.
func (s *NodeService) DeleteNode(ctx context.Context, userID uint, nodeID string) error {
	if _, err := s.getOwned(ctx, userID, nodeID); err != nil {
		return err
	}

	ids, err := s.descendantIDs(ctx, nodeID)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Delete leaves first so the parent FK never dangles.
		for i := len(ids) - 1; i >= 0; i-- {
			if err := tx.Delete(&models.Node{}, "id = ?", ids[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete node %s: %w", nodeID, err)
	}

	s.publish(ctx, notif.IndexRemove(ids...))
	return nil
}

// MoveNodes sets a new parent folder for the given nodes and reindexes
// them, since their breadcrumb changed. Moving a folder into its own
// subtree is rejected; it would detach the subtree into a cycle.
func (s *NodeService) MoveNodes(ctx context.Context, userID uint, targetParentID string, nodeIDs []string) error {
	if _, err := s.GetFolder(ctx, userID, targetParentID); err != nil {
		return err
	}

	subtree, err := s.descendantIDs(ctx, nodeIDs...)
	if err != nil {
		return err
	}
	if subtreeContains(subtree, targetParentID) {
		return ErrInvalidMove
	}

	res := s.db.WithContext(ctx).
		Model(&models.Node{}).
		Where("id IN ? AND user_id = ?", nodeIDs, userID).
		Update("parent_id", targetParentID)
	if res.Error != nil {
		return fmt.Errorf("move nodes: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNodeNotFound
	}

	s.publish(ctx, notif.IndexAdd(nodeIDs...))
	return nil
}

// Breadcrumb returns the node's ancestor path, root first, including the
// node itself.
func (s *NodeService) Breadcrumb(ctx context.Context, userID uint, nodeID string) ([]viewstate.BreadcrumbItem, error) {
	if _, err := s.getOwned(ctx, userID, nodeID); err != nil {
		return nil, err
	}

	var items []viewstate.BreadcrumbItem
	err := s.db.WithContext(ctx).Raw(`
		WITH RECURSIVE tree AS (
			SELECT id, parent_id, title, 0 AS level FROM nodes WHERE id = ?
			UNION ALL
			SELECT n.id, n.parent_id, n.title, tree.level + 1
			FROM nodes n JOIN tree ON n.id = tree.parent_id
		)
		SELECT id, title FROM tree ORDER BY level DESC`, nodeID).
		Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("resolve breadcrumb of %s: %w", nodeID, err)
	}
	return items, nil
}

// descendantIDs lists the subtrees rooted at the given nodes, including
// the roots themselves, parents before children.
func (s *NodeService) descendantIDs(ctx context.Context, nodeIDs ...string) ([]string, error) {
	var ids []string
	err := s.db.WithContext(ctx).Raw(`
		WITH RECURSIVE tree AS (
			SELECT id, 0 AS depth FROM nodes WHERE id IN ?
			UNION ALL
			SELECT n.id, tree.depth + 1 FROM nodes n JOIN tree ON n.parent_id = tree.id
		)
		SELECT id FROM tree GROUP BY id ORDER BY MIN(depth) ASC`, nodeIDs).
		Scan(&ids).Error
	if err != nil {
		return nil, fmt.Errorf("collect descendants of %v: %w", nodeIDs, err)
	}
	return ids, nil
}

// subtreeContains reports whether target is one of the subtree ids.
func subtreeContains(subtree []string, target string) bool {
	for _, id := range subtree {
		if id == target {
			return true
		}
	}
	return false
}

func (s *NodeService) getOwned(ctx context.Context, userID uint, nodeID string) (*models.Node, error) {
	var node models.Node
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", nodeID, userID).
		First(&node).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNodeNotFound
		}
		return nil, err
	}
	return &node, nil
}

// publish pushes an index event, logging instead of failing the caller.
func (s *NodeService) publish(ctx context.Context, ev notif.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.Push(ctx, ev); err != nil {
		log.Printf("notif push %s failed: %v", ev.Name, err)
	}
}
