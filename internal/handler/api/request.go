package api

import (
	"errors"
	"net/http"

	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	requestCommands commands.RequestCommands
	requestQueries  queries.RequestQueries
}

func NewRequestHandler(requestCommands commands.RequestCommands, requestQueries queries.RequestQueries) *RequestHandler {
	return &RequestHandler{
		requestCommands: requestCommands,
		requestQueries:  requestQueries,
	}
}

// @Summary Create item request
// @Description Post a wish for an item other users can answer
// @Tags requests
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Requesting user ID"
// @Param request body reqdto.CreateItemRequestRequest true "Request payload"
// @Success 201 {object} resdto.ItemRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /requests [post]
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	var req reqdto.CreateItemRequestRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	requestRM, err := h.requestCommands.CreateRequest(c.Request.Context(), userID, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Request description cannot be empty")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRequestView(requestRM))
}

// @Summary List own requests
// @Description List the caller's item requests with answering items, newest first
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header string true "Requesting user ID"
// @Success 200 {array} resdto.ItemRequestResponse
// @Failure 404 {object} map[string]string
// @Router /requests [get]
func (h *RequestHandler) ListOwnRequests(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	requestsRM, err := h.requestQueries.ListOwnRequests(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestViews(requestsRM))
}

// @Summary List other users' requests
// @Description Page through requests created by other users
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header string true "Requesting user ID"
// @Param from query int false "Index of the first record" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} resdto.ItemRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /requests/all [get]
func (h *RequestHandler) ListOtherRequests(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	from, size, ok := pagingParams(c)
	if !ok {
		return
	}

	requestsRM, err := h.requestQueries.ListOtherRequests(c.Request.Context(), userID, from, size)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
		case errors.Is(err, queries.ErrInvalidPage):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pagination parameters")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestViews(requestsRM))
}

// @Summary Get item request
// @Description Get one item request with the items offered against it
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header string true "Requesting user ID"
// @Param requestId path string true "Request ID"
// @Success 200 {object} resdto.ItemRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /requests/{requestId} [get]
func (h *RequestHandler) GetRequest(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	requestID, ok := parseIDParam(c, "requestId", "request")
	if !ok {
		return
	}

	requestRM, err := h.requestQueries.GetRequest(c.Request.Context(), userID, requestID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
		case errors.Is(err, errs.ErrRequestNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Request not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestView(requestRM))
}
