package api

import (
	"net/http"
	"strconv"

	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultPageFrom = 0
	defaultPageSize = 10
)

// requesterID fetches the caller set by the identity middleware. A miss
// means the route was wired without it.
func requesterID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("requester missing from context"), "Internal server error")
		return uuid.Nil, false
	}
	return userID, true
}

func parseIDParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid " + label + " ID format")
		return uuid.Nil, false
	}
	return id, true
}

// pagingParams reads the from/size query pair. Range validation is left to
// the use cases so out-of-range values fail the same way everywhere.
func pagingParams(c *gin.Context) (from, size int, ok bool) {
	from, ok = intQuery(c, "from", defaultPageFrom)
	if !ok {
		return 0, 0, false
	}
	size, ok = intQuery(c, "size", defaultPageSize)
	if !ok {
		return 0, 0, false
	}
	return from, size, true
}

func intQuery(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid " + name + " parameter")
		return 0, false
	}
	return v, true
}
