package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/KirkDiggler/tavern/internal/common/apperr"
	"github.com/KirkDiggler/tavern/internal/services/game"
	"github.com/gin-gonic/gin"
)

type response struct {
	Success bool        `json:"success"`
	Data    any         `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Code    apperr.Kind `json:"code,omitempty"`
}

func respond(c *gin.Context, status int, data any) {
	c.JSON(status, response{Success: true, Data: data})
}

// respondError maps err to its kind's status. Internal causes are logged, never sent.
func respondError(c *gin.Context, err error) {
	c.JSON(errorResponse(c, err))
}

func abortWithError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(errorResponse(c, err))
}

func errorResponse(c *gin.Context, err error) (int, response) {
	kind := apperr.KindOf(err)
	if kind == apperr.KindInternal {
		log.Printf("%s %s failed for user %q: %v", c.Request.Method, c.FullPath(), UserID(c), err)
	}
	return kind.HTTPStatus(), response{
		Success: false,
		Error:   apperr.MessageOf(err),
		Code:    kind,
	}
}

// bindJSON decodes the body and answers 400 on failure
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, response{
			Success: false,
			Error:   err.Error(),
			Code:    apperr.KindInvalidArgument,
		})
		return false
	}
	return true
}

// pagination reads ?page= and ?limit=. Bad values fall back to the defaults.
func pagination(c *gin.Context) game.Pagination {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return game.Pagination{Page: page, Limit: limit}
}

// PaginationMeta describes one page of a listing
type PaginationMeta struct {
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
}

func newPaginationMeta(total, page, limit int) PaginationMeta {
	if limit <= 0 {
		limit = 1
	}
	return PaginationMeta{
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
		Page:       page,
		Limit:      limit,
	}
}
