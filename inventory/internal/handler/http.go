package handler

import (
	"context"
	"net/http"
	"time"

	"shelf_life/inventory/internal/auth"
	"shelf_life/inventory/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/juju/errors"
	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("inventory.handler")

type ItemStore interface {
	CreateItem(ctx context.Context, item store.StockItem) (int64, error)
	GetItem(ctx context.Context, id int64) (*store.StockItem, error)
	ListItems(ctx context.Context) ([]store.StockItem, error)
	DeleteItem(ctx context.Context, id int64) error
}

type StaffStore interface {
	CreateStaff(ctx context.Context, username, passwordHash string) (int64, error)
	GetStaffByUsername(ctx context.Context, username string) (*store.StaffMember, error)
}

type ReportCache interface {
	GetDayReport(ctx context.Context, date string) (*store.DayReport, error)
}

// DayRunner runs one aging pass; nightly.Runner implements it.
type DayRunner interface {
	RunOnce(ctx context.Context, date time.Time, force bool) (*store.DayReport, error)
}

// NewRouter wires the public and staff-only HTTP routes. Only signed-in
// staff can register further staff; the first account comes from the
// STAFF_BOOTSTRAP_* settings.
func NewRouter(items ItemStore, staff StaffStore, reports ReportCache, runner DayRunner) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	staffHandler := &StaffHandler{store: staff}
	api.POST("/staff/login", staffHandler.Login)

	itemHandler := &ItemHandler{store: items}
	api.GET("/items", itemHandler.List)
	api.GET("/items/:id", itemHandler.Get)

	dayHandler := &DayHandler{runner: runner, reports: reports}
	api.GET("/days/:date", dayHandler.Report)

	protected := api.Group("", auth.Middleware())
	protected.POST("/staff/register", staffHandler.Register)
	protected.POST("/items", itemHandler.Create)
	protected.DELETE("/items/:id", itemHandler.Delete)
	protected.POST("/days/advance", dayHandler.Advance)

	return r
}

// writeError maps error kinds to HTTP status codes.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errors.NotFound):
		status = http.StatusNotFound
	case errors.Is(err, errors.NotValid):
		status = http.StatusBadRequest
	case errors.Is(err, errors.AlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, errors.Unauthorized):
		status = http.StatusUnauthorized
	}

	if status == http.StatusInternalServerError {
		logger.Errorf("request failed path=%s err=%v", c.FullPath(), err)
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
