package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	cartdomain "github.com/light-bringer/storefront-service/internal/app/cart/domain"
	catalogdomain "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	orderdomain "github.com/light-bringer/storefront-service/internal/app/order/domain"
)

// ErrorResponse is the unified error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// respondError translates domain errors into HTTP statuses. Unknown errors
// become opaque 500s; the detail stays in the server log.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalogdomain.ErrProductNotFound),
		errors.Is(err, catalogdomain.ErrVariantNotFound),
		errors.Is(err, orderdomain.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "NOT_FOUND", Message: err.Error()})

	case errors.Is(err, catalogdomain.ErrVariantOutOfStock):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "OUT_OF_STOCK", Message: err.Error()})

	case errors.Is(err, cartdomain.ErrNoItemsSelected):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "NO_ITEMS_SELECTED", Message: err.Error()})

	case errors.Is(err, catalogdomain.ErrInvalidStyle),
		errors.Is(err, cartdomain.ErrEmptyProductID),
		errors.Is(err, cartdomain.ErrEmptyVariantID),
		errors.Is(err, cartdomain.ErrEmptyLineName),
		errors.Is(err, cartdomain.ErrInvalidUnitPrice):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "INVALID_INPUT", Message: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "INTERNAL_ERROR", Message: "internal server error"})
	}
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "INVALID_INPUT", Message: message})
}
