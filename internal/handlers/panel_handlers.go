package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"docshelf_app_echo/internal/viewstate"
)

// PanelHandler exposes the shared view state of the dual-pane browser.
type PanelHandler struct {
	state *viewstate.Store
}

// NewPanelHandler creates a new PanelHandler
func NewPanelHandler(state *viewstate.Store) *PanelHandler {
	return &PanelHandler{state: state}
}

// GetPanel returns the current state snapshot of one panel.
func (h *PanelHandler) GetPanel(c echo.Context) error {
	panel := c.Param("panel")
	if panel != viewstate.PanelMain && panel != viewstate.PanelSecondary {
		return echo.NewHTTPError(http.StatusNotFound, "Unknown panel")
	}
	return c.JSON(http.StatusOK, h.state.Snapshot(panel))
}
