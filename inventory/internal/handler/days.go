package handler

import (
	"net/http"
	"time"

	"shelf_life/inventory/internal/auth"
	"shelf_life/inventory/internal/nightly"

	"github.com/gin-gonic/gin"
	"github.com/juju/errors"
)

type DayHandler struct {
	runner  DayRunner
	reports ReportCache
}

// Advance runs an aging pass now. The date defaults to today; force=true
// ages again even if the date has already been aged.
func (h *DayHandler) Advance(c *gin.Context) {
	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(nightly.DateLayout, raw)
		if err != nil {
			writeError(c, errors.NotValidf("date %q", raw))
			return
		}
		date = parsed
	}
	force := c.Query("force") == "true"

	report, err := h.runner.RunOnce(c.Request.Context(), date, force)
	if err != nil {
		writeError(c, err)
		return
	}
	logger.Infof("manual aging date=%s staff=%s forced=%t", report.Date, c.GetString(auth.UsernameKey), force)
	c.JSON(http.StatusOK, report)
}

// Report returns the cached report of an earlier pass.
func (h *DayHandler) Report(c *gin.Context) {
	date := c.Param("date")
	if _, err := time.Parse(nightly.DateLayout, date); err != nil {
		writeError(c, errors.NotValidf("date %q", date))
		return
	}
	report, err := h.reports.GetDayReport(c.Request.Context(), date)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
