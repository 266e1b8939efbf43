package v1

import (
	"net/http"
	"strconv"

	"freelancima-backend/internal/domain"
	"freelancima-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type FreelancerHandler struct {
	browseUC domain.BrowseUsecase
}

func NewFreelancerHandler(public *gin.RouterGroup, browseUC domain.BrowseUsecase) {
	handler := &FreelancerHandler{browseUC: browseUC}

	public.GET("/freelancers", handler.Browse)
}

// Browse godoc
// @Summary      Query freelancer listings
// @Description  Dispatches on the action parameter: all, category, search or latest.
// @Tags         freelancers
// @Produce      json
// @Param        action    query  string  false  "all | category | search | latest"  default(all)
// @Param        category  query  string  false  "category key (action=category)"
// @Param        search    query  string  false  "search keyword (action=search)"
// @Param        limit     query  int     false  "result cap (action=latest)"  default(10)
// @Success      200  {object}  domain.BrowseResponse
// @Router       /freelancers [get]
func (h *FreelancerHandler) Browse(c *gin.Context) {
	action := c.DefaultQuery("action", "all")

	var (
		result *domain.BrowseResponse
		err    error
	)

	switch action {
	case "all":
		result, err = h.browseUC.BrowseAll(c.Request.Context())
	case "category":
		// Parameter presence is checked in the usecase so the "abort
		// before touching the store" rule lives in one place.
		result, err = h.browseUC.BrowseCategory(c.Request.Context(), domain.Category(c.Query("category")))
	case "search":
		result, err = h.browseUC.SearchFreelancers(c.Request.Context(), c.Query("search"))
	case "latest":
		var limit int
		if raw := c.Query("limit"); raw != "" {
			limit, err = strconv.Atoi(raw)
			if err != nil || limit <= 0 {
				c.Error(apperror.BadRequest("limit must be a positive integer"))
				return
			}
		}
		result, err = h.browseUC.LatestFreelancers(c.Request.Context(), limit)
	default:
		c.Error(apperror.BadRequest("unknown action: " + action))
		return
	}

	if err != nil {
		c.Error(err)
		return
	}

	// The browse endpoint keeps the legacy flat envelope rather than the
	// success/data wrapper: {metadata, categories | latest_freelancers}.
	c.JSON(http.StatusOK, result)
}
