package inventory

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	v1 "github.com/stockroom-lab/stockroom/internal/api/v1"
	httperr "github.com/stockroom-lab/stockroom/internal/core/errors"
	"github.com/stockroom-lab/stockroom/internal/core/storage"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidItemID  = "Invalid item id"
	msgInvalidJSON    = "Invalid JSON body"
	msgItemNotFound   = "Item not found"
	msgReadBodyFailed = "Failed to read request body"

	maxRecentLimit = 100
)

// RegisterRoutes registers all inventory and sales API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	inv := r.Group("/v1/inventory")
	inv.GET("", s.HandleList)
	inv.GET("/search", s.HandleSearch)
	inv.GET("/:id", s.HandleGet)
	inv.PATCH("/:id", s.HandleUpdate)

	r.POST("/v1/sales", s.HandleRecordSale)
	r.GET("/v1/sales/recent", s.HandleRecentSales)

	r.POST("/v1/admin/seed", s.HandleSeed)
}

// HandleList handles GET /v1/inventory
func (s *Service) HandleList(c *gin.Context) {
	items, err := s.ListInventory(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to list inventory")
		return
	}
	c.JSON(http.StatusOK, items)
}

// HandleSearch handles GET /v1/inventory/search?q=
func (s *Service) HandleSearch(c *gin.Context) {
	items, err := s.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeError(c, err, "Failed to search inventory")
		return
	}
	c.JSON(http.StatusOK, items)
}

// HandleGet handles GET /v1/inventory/:id
func (s *Service) HandleGet(c *gin.Context) {
	id, ok := bindItemID(c)
	if !ok {
		return
	}

	item, err := s.GetItem(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "Failed to get item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// HandleUpdate handles PATCH /v1/inventory/:id with a typed partial update.
// Unknown fields are rejected.
func (s *Service) HandleUpdate(c *gin.Context) {
	id, ok := bindItemID(c)
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		slog.Error("Failed to read request body", "error", err)
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   msgReadBodyFailed,
		})
		return
	}

	upd, err := v1.DecodeItemUpdateBytes(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidJsonError,
			Message:   msgInvalidJSON,
			Details:   err.Error(),
		})
		return
	}

	item, err := s.UpdateItem(c.Request.Context(), id, upd)
	if err != nil {
		writeError(c, err, "Failed to update item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// HandleRecordSale handles POST /v1/sales
func (s *Service) HandleRecordSale(c *gin.Context) {
	var req v1.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidJsonError,
			Message:   msgInvalidJSON,
			Details:   err.Error(),
		})
		return
	}

	sale, err := s.RecordSale(c.Request.Context(), req)
	if err != nil {
		writeError(c, err, "Failed to record sale")
		return
	}
	c.JSON(http.StatusCreated, sale)
}

// HandleRecentSales handles GET /v1/sales/recent?limit=
func (s *Service) HandleRecentSales(c *gin.Context) {
	limit := defaultRecentLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxRecentLimit {
			c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
				ErrorType: httperr.HttpInvalidRequestError,
				Message:   "Invalid limit",
				Details:   "limit must be an integer between 1 and 100",
			})
			return
		}
		limit = n
	}

	sales, err := s.RecentSales(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err, "Failed to list recent sales")
		return
	}
	c.JSON(http.StatusOK, sales)
}

// HandleSeed handles POST /v1/admin/seed. It wipes existing data.
func (s *Service) HandleSeed(c *gin.Context) {
	result, err := s.SeedSampleData(c.Request.Context(), s.nowFn())
	if err != nil {
		writeError(c, err, "Failed to seed sample data")
		return
	}
	c.JSON(http.StatusOK, result)
}

func bindItemID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidRequestError,
			Message:   msgInvalidItemID,
			Details:   c.Param("id"),
		})
		return 0, false
	}
	return id, true
}

func writeError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, httperr.ErrorResponse{
			ErrorType: httperr.HttpItemNotFoundError,
			Message:   msgItemNotFound,
		})
	case errors.Is(err, ErrInvalidSale), errors.Is(err, ErrInvalidUpdate):
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidRequestError,
			Message:   message,
			Details:   err.Error(),
		})
	default:
		slog.Error("[Inventory] Request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   message,
			Details:   err.Error(),
		})
	}
}
