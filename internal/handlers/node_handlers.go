package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"docshelf_app_echo/internal/services"
)

// NodeHandler handles folder CRUD and node moves.
type NodeHandler struct {
	nodes *services.NodeService
	users *services.UserService
}

// NewNodeHandler creates a new NodeHandler
func NewNodeHandler(nodes *services.NodeService, users *services.UserService) *NodeHandler {
	return &NodeHandler{nodes: nodes, users: users}
}

type createFolderRequest struct {
	Title    string `json:"title"`
	ParentID string `json:"parent_id"`
}

// CreateFolder creates a folder; with no parent given it lands in the
// user's home folder.
func (h *NodeHandler) CreateFolder(c echo.Context) error {
	ctx := c.Request().Context()

	var req createFolderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	user, err := h.users.CurrentUser(ctx)
	if err != nil {
		return err
	}

	parentID := req.ParentID
	if parentID == "" {
		parentID = user.HomeFolderID
	}

	node, err := h.nodes.CreateFolder(ctx, user.ID, parentID, req.Title)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, node)
}

// GetNode returns a single node, folder or document, owned by the current
// user.
func (h *NodeHandler) GetNode(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := h.users.CurrentUser(ctx)
	if err != nil {
		return err
	}

	node, err := h.nodes.GetNode(ctx, user.ID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, node)
}

// GetBreadcrumb returns the ancestor path of a node, root first.
func (h *NodeHandler) GetBreadcrumb(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := h.users.CurrentUser(ctx)
	if err != nil {
		return err
	}

	items, err := h.nodes.Breadcrumb(ctx, user.ID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"breadcrumb": items})
}

// DeleteNode removes a node and its whole subtree.
func (h *NodeHandler) DeleteNode(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := h.users.CurrentUser(ctx)
	if err != nil {
		return err
	}

	if err := h.nodes.DeleteNode(ctx, user.ID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type moveNodesRequest struct {
	TargetParentID string   `json:"target_parent_id"`
	NodeIDs        []string `json:"node_ids"`
}

// MoveNodes reparents a set of nodes under a new target folder.
func (h *NodeHandler) MoveNodes(c echo.Context) error {
	ctx := c.Request().Context()

	var req moveNodesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if len(req.NodeIDs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "No nodes to move")
	}

	user, err := h.users.CurrentUser(ctx)
	if err != nil {
		return err
	}

	if err := h.nodes.MoveNodes(ctx, user.ID, req.TargetParentID, req.NodeIDs); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "moved"})
}
