package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/storyku/internal/common"
	"github.com/gin-gonic/gin"
)

var errInvalidID = errors.New("invalid id")

// pathID parses the :id segment; on failure it answers 400 and returns false.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id", "error": errInvalidID.Error()})
		return 0, false
	}
	return id, true
}

// respondError maps service errors onto status codes.
func (h *handler) respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	case errors.Is(err, common.ErrorValidation):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid data", "error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error", "error": err.Error()})
	}
}
