package handler

import (
	"math"
	"net/http"
	"strconv"

	"shelf_life/inventory/internal/auth"
	"shelf_life/inventory/internal/logic"
	"shelf_life/inventory/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/juju/errors"
)

type ItemHandler struct {
	store ItemStore
}

type createItemRequest struct {
	SKU      string  `json:"sku"`
	Name     string  `json:"name" binding:"required"`
	Category *string `json:"category"`
	SellIn   int     `json:"sell_in"`
	Quality  int     `json:"quality"`
}

// Create stocks a new item. The category is taken from the request when
// given, otherwise derived from the name.
func (h *ItemHandler) Create(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.NewNotValid(err, "invalid item"))
		return
	}
	if req.Quality < logic.MinQuality {
		writeError(c, errors.NotValidf("negative quality %d", req.Quality))
		return
	}
	// Stored and published as 32-bit integers.
	if req.Quality > math.MaxInt32 {
		writeError(c, errors.NotValidf("quality %d", req.Quality))
		return
	}
	if req.SellIn < math.MinInt32 || req.SellIn > math.MaxInt32 {
		writeError(c, errors.NotValidf("sell_in %d", req.SellIn))
		return
	}

	item := logic.NewItem(req.Name, req.SellIn, req.Quality)
	if req.Category != nil {
		category, err := logic.ParseCategory(*req.Category)
		if err != nil {
			writeError(c, err)
			return
		}
		item = logic.NewItemWithCategory(req.Name, category, req.SellIn, req.Quality)
	}

	sku := req.SKU
	if sku == "" {
		sku = uuid.NewString()
	}

	id, err := h.store.CreateItem(c.Request.Context(), store.StockItem{SKU: sku, Item: item})
	if err != nil {
		writeError(c, err)
		return
	}
	logger.Infof("item stocked id=%d sku=%s category=%s", id, sku, item.Category)

	created, err := h.store.GetItem(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// List returns the whole shelf.
func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.store.ListItems(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if items == nil {
		items = []store.StockItem{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *ItemHandler) Get(c *gin.Context) {
	id, err := itemID(c)
	if err != nil {
		writeError(c, err)
		return
	}
	item, err := h.store.GetItem(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) Delete(c *gin.Context) {
	id, err := itemID(c)
	if err != nil {
		writeError(c, err)
		return
	}
	if err := h.store.DeleteItem(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	logger.Infof("item removed id=%d staff=%s", id, c.GetString(auth.UsernameKey))
	c.Status(http.StatusNoContent)
}

func itemID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errors.NotValidf("item id %q", c.Param("id"))
	}
	return id, nil
}
