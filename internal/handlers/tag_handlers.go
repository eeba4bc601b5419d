package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"docshelf_app_echo/internal/models"
	"docshelf_app_echo/internal/services"
)

const defaultTagPageSize = 25

// TagHandler handles tag CRUD with paginated listings.
type TagHandler struct {
	db    *gorm.DB
	users *services.UserService
}

// NewTagHandler creates a new TagHandler
func NewTagHandler(db *gorm.DB, users *services.UserService) *TagHandler {
	return &TagHandler{db: db, users: users}
}

// ListTags returns one page of the user's tags.
func (h *TagHandler) ListTags(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := h.users.CurrentUser(ctx)
	if err != nil {
		return err
	}

	pageNumber, pageSize := pageParams(c, defaultTagPageSize)

	var total int64
	if err := h.db.WithContext(ctx).Model(&models.Tag{}).Where("user_id = ?", user.ID).Count(&total).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to count tags")
	}

	var tags []models.Tag
	err = h.db.WithContext(ctx).
		Where("user_id = ?", user.ID).
		Order("name ASC").
		Limit(pageSize).
		Offset(models.PageOffset(pageNumber, pageSize)).
		Find(&tags).Error
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch tags")
	}

	return c.JSON(http.StatusOK, models.Paginated[models.Tag]{
		Items:      tags,
		PageSize:   pageSize,
		PageNumber: pageNumber,
		NumPages:   models.NumPages(total, pageSize),
	})
}

type tagRequest struct {
	Name        string `json:"name"`
	BGColor     string `json:"bg_color"`
	FGColor     string `json:"fg_color"`
	Description string `json:"description"`
	Pinned      *bool  `json:"pinned"`
}

// CreateTag creates a tag for the current user.
func (h *TagHandler) CreateTag(c echo.Context) error {
	ctx := c.Request().Context()

	var req tagRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Tag name is required")
	}

	user, err := h.users.CurrentUser(ctx)
	if err != nil {
		return err
	}

	tag := models.Tag{
		Name:        req.Name,
		BGColor:     req.BGColor,
		FGColor:     req.FGColor,
		Description: req.Description,
		UserID:      user.ID,
	}
	if req.Pinned != nil {
		tag.Pinned = *req.Pinned
	}

	if err := h.db.WithContext(ctx).Create(&tag).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create tag")
	}
	return c.JSON(http.StatusCreated, tag)
}

// UpdateTag partially updates a tag.
func (h *TagHandler) UpdateTag(c echo.Context) error {
	ctx := c.Request().Context()

	var req tagRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	user, err := h.users.CurrentUser(ctx)
	if err != nil {
		return err
	}

	var tag models.Tag
	if err := h.db.WithContext(ctx).Where("id = ? AND user_id = ?", c.Param("id"), user.ID).First(&tag).Error; err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.BGColor != "" {
		updates["bg_color"] = req.BGColor
	}
	if req.FGColor != "" {
		updates["fg_color"] = req.FGColor
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Pinned != nil {
		updates["pinned"] = *req.Pinned
	}

	if len(updates) > 0 {
		if err := h.db.WithContext(ctx).Model(&tag).Updates(updates).Error; err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update tag")
		}
	}
	return c.JSON(http.StatusOK, tag)
}

// DeleteTag removes a tag owned by the current user.
func (h *TagHandler) DeleteTag(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := h.users.CurrentUser(ctx)
	if err != nil {
		return err
	}

	res := h.db.WithContext(ctx).Where("id = ? AND user_id = ?", c.Param("id"), user.ID).Delete(&models.Tag{})
	if res.Error != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete tag")
	}
	if res.RowsAffected == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "Tag not found")
	}
	return c.NoContent(http.StatusNoContent)
}
