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

type ItemHandler struct {
	itemCommands commands.ItemCommands
	itemQueries  queries.ItemQueries
}

func NewItemHandler(itemCommands commands.ItemCommands, itemQueries queries.ItemQueries) *ItemHandler {
	return &ItemHandler{
		itemCommands: itemCommands,
		itemQueries:  itemQueries,
	}
}

// @Summary Create item
// @Description List an item for sharing
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Owner user ID"
// @Param request body reqdto.CreateItemRequest true "Item payload"
// @Success 201 {object} resdto.ItemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items [post]
func (h *ItemHandler) CreateItem(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	var req reqdto.CreateItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	itemRM, err := h.itemCommands.CreateItem(c.Request.Context(), userID, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
		case errors.Is(err, errs.ErrRequestNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item request not found")
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item payload")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromItemView(itemRM))
}

// @Summary Patch item
// @Description Update item fields as its owner; absent fields keep their value
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Owner user ID"
// @Param itemId path string true "Item ID"
// @Param request body reqdto.PatchItemRequest true "Fields to update"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/{itemId} [patch]
func (h *ItemHandler) PatchItem(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "itemId", "item")
	if !ok {
		return
	}

	var req reqdto.PatchItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	itemRM, err := h.itemCommands.PatchItem(c.Request.Context(), userID, itemID, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
		case errors.Is(err, errs.ErrItemNotFound):
			// Non-owner edits surface as a missing item as well.
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found")
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item payload")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemView(itemRM))
}

// @Summary Get item
// @Description Get an item with its comments; the owner also sees the booking window
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header string true "Requesting user ID"
// @Param itemId path string true "Item ID"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/{itemId} [get]
func (h *ItemHandler) GetItem(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "itemId", "item")
	if !ok {
		return
	}

	itemRM, err := h.itemQueries.GetItem(c.Request.Context(), userID, itemID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
		case errors.Is(err, errs.ErrItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemView(itemRM))
}

// @Summary List own items
// @Description List the caller's items with booking windows and comments
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header string true "Owner user ID"
// @Param from query int false "Index of the first record" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} resdto.ItemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items [get]
func (h *ItemHandler) ListOwnItems(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	from, size, ok := pagingParams(c)
	if !ok {
		return
	}

	itemsRM, err := h.itemQueries.ListOwnItems(c.Request.Context(), userID, from, size)
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

	c.JSON(http.StatusOK, resdto.FromItemViews(itemsRM))
}

// @Summary Search items
// @Description Search available items by text; blank text yields an empty list
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header string true "Requesting user ID"
// @Param text query string true "Search text"
// @Param from query int false "Index of the first record" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} resdto.ItemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/search [get]
func (h *ItemHandler) SearchItems(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	from, size, ok := pagingParams(c)
	if !ok {
		return
	}

	itemsRM, err := h.itemQueries.SearchItems(c.Request.Context(), userID, c.Query("text"), from, size)
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

	c.JSON(http.StatusOK, resdto.FromItemViews(itemsRM))
}

// @Summary Add comment
// @Description Comment on an item after completing a booking of it
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Author user ID"
// @Param itemId path string true "Item ID"
// @Param request body reqdto.CreateCommentRequest true "Comment payload"
// @Success 200 {object} resdto.CommentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/{itemId}/comment [post]
func (h *ItemHandler) AddComment(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "itemId", "item")
	if !ok {
		return
	}

	var req reqdto.CreateCommentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	commentRM, err := h.itemCommands.AddComment(c.Request.Context(), userID, itemID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
		case errors.Is(err, errs.ErrItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found")
		case errors.Is(err, errs.ErrEmptyComment):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Comment text cannot be empty")
		case errors.Is(err, errs.ErrCommentNotAllowed):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Commenting requires a completed booking of the item")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCommentView(commentRM))
}
