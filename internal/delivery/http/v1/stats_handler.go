package v1

import (
	"net/http"
	"time"

	"freelancima-backend/internal/delivery/http/response"
	"freelancima-backend/internal/domain"
	"freelancima-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsUC domain.StatsUsecase
}

func NewStatsHandler(public *gin.RouterGroup, statsUC domain.StatsUsecase) {
	handler := &StatsHandler{statsUC: statsUC}

	stats := public.Group("/statistics")
	{
		stats.GET("/basic", handler.Basic)
		stats.GET("/categories", handler.Categories)
		stats.GET("/price-ranges", handler.PriceRanges)
		stats.GET("/ratings", handler.Ratings)
		stats.GET("/monthly", handler.Monthly)
	}
}

// statsWindow parses optional start/end RFC 3339 query parameters.
// Unset bounds are defaulted downstream to a trailing year.
func statsWindow(c *gin.Context) (domain.StatsWindow, bool) {
	var w domain.StatsWindow
	if raw := c.Query("start"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.Error(apperror.BadRequest("start must be an RFC 3339 timestamp"))
			return w, false
		}
		w.Start = t
	}
	if raw := c.Query("end"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.Error(apperror.BadRequest("end must be an RFC 3339 timestamp"))
			return w, false
		}
		w.End = t
	}
	if !w.Start.IsZero() && !w.End.IsZero() && w.End.Before(w.Start) {
		c.Error(apperror.BadRequest("end must not precede start"))
		return w, false
	}
	return w, true
}

// Basic godoc
// @Summary      Overall marketplace aggregates
// @Tags         statistics
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /statistics/basic [get]
func (h *StatsHandler) Basic(c *gin.Context) {
	w, ok := statsWindow(c)
	if !ok {
		return
	}
	stats, err := h.statsUC.Basic(c.Request.Context(), w)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", stats)
}

// Categories godoc
// @Summary      Per-category aggregates
// @Tags         statistics
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /statistics/categories [get]
func (h *StatsHandler) Categories(c *gin.Context) {
	w, ok := statsWindow(c)
	if !ok {
		return
	}
	stats, err := h.statsUC.ByCategory(c.Request.Context(), w)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", stats)
}

// PriceRanges godoc
// @Summary      Freelancer counts per price band
// @Tags         statistics
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /statistics/price-ranges [get]
func (h *StatsHandler) PriceRanges(c *gin.Context) {
	w, ok := statsWindow(c)
	if !ok {
		return
	}
	stats, err := h.statsUC.ByPriceRange(c.Request.Context(), w)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", stats)
}

// Ratings godoc
// @Summary      Freelancer counts per rating band
// @Tags         statistics
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /statistics/ratings [get]
func (h *StatsHandler) Ratings(c *gin.Context) {
	w, ok := statsWindow(c)
	if !ok {
		return
	}
	stats, err := h.statsUC.ByRating(c.Request.Context(), w)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", stats)
}

// Monthly godoc
// @Summary      Month-by-month signup trends
// @Tags         statistics
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /statistics/monthly [get]
func (h *StatsHandler) Monthly(c *gin.Context) {
	w, ok := statsWindow(c)
	if !ok {
		return
	}
	stats, err := h.statsUC.Monthly(c.Request.Context(), w)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", stats)
}
