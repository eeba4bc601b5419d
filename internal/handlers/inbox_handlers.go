package handlers

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"docshelf_app_echo/internal/loader"
	"docshelf_app_echo/internal/viewstate"
)

// InboxHandler serves the dual-pane folder views. Both endpoints run the
// folder loader and then return the main panel's state along with the
// loader result.
type InboxHandler struct {
	loader *loader.FolderLoader
	state  *viewstate.Store
}

// NewInboxHandler creates a new InboxHandler
func NewInboxHandler(l *loader.FolderLoader, state *viewstate.Store) *InboxHandler {
	return &InboxHandler{loader: l, state: state}
}

type folderViewResponse struct {
	FolderID  string               `json:"folder_id"`
	URLParams url.Values           `json:"url_params"`
	Panel     viewstate.PanelState `json:"panel"`
}

// Inbox loads the user's inbox folder into the main panel.
func (h *InboxHandler) Inbox(c echo.Context) error {
	return h.load(c, "")
}

// OpenFolder loads an explicitly requested folder into the main panel.
func (h *InboxHandler) OpenFolder(c echo.Context) error {
	return h.load(c, c.Param("id"))
}

func (h *InboxHandler) load(c echo.Context, folderID string) error {
	res, err := h.loader.Load(c.Request().Context(), loader.LoadParams{
		FolderID: folderID,
		Query:    c.Request().URL.Query(),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, folderViewResponse{
		FolderID:  res.FolderID,
		URLParams: res.URLParams,
		Panel:     h.state.Snapshot(viewstate.PanelMain),
	})
}
