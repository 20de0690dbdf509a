package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/blogcraft/blog-api/internal/core/ports"
)

// parseListParams reads pagination and filter query parameters. Absent or
// non-numeric page/limit values fall back to the defaults instead of
// failing the request.
func parseListParams(c echo.Context) ports.ListParams {
	page, err := strconv.ParseInt(c.QueryParam("page"), 10, 64)
	if err != nil {
		page = ports.DefaultPage
	}
	limit, err := strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	if err != nil {
		limit = ports.DefaultLimit
	}

	params := ports.NewListParams(page, limit)
	params.Search = c.QueryParam("search")
	params.Category = c.QueryParam("category")
	params.Tag = c.QueryParam("tag")
	return params
}
