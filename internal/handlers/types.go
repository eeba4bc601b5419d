package handlers

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// pageParams reads page_number/page_size query parameters with defaults.
func pageParams(c echo.Context, defaultPageSize int) (pageNumber, pageSize int) {
	pageNumber = 1
	pageSize = defaultPageSize
	if v, err := strconv.Atoi(c.QueryParam("page_number")); err == nil && v > 0 {
		pageNumber = v
	}
	if v, err := strconv.Atoi(c.QueryParam("page_size")); err == nil && v > 0 {
		pageSize = v
	}
	return pageNumber, pageSize
}
