package admin

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"veriplot-server/dashboard"
	"veriplot-server/models"
)

var allowedRealtorParams = map[string]bool{
	"min_amount": true,
	"max_amount": true,
	"status":     true,
	"q":          true,
	"from":       true,
	"to":         true,
	"tab":        true,
	"search":     true,
	"page":       true,
}

// ListRealtors serves the admin dashboard rows: every realtor joined with
// their receipt tallies, filtered and paginated. Unknown query parameters are
// rejected rather than silently ignored.
func (h *Handler) ListRealtors(c *gin.Context) {
	for key := range c.Request.URL.Query() {
		if !allowedRealtorParams[key] {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown query parameter %q.", key)})
			return
		}
	}

	filters, page, err := parseRealtorFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var users []models.User
	if err := h.DB.Where("role = ?", models.RoleRealtor).Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var receipts []models.Receipt
	if err := h.DB.Find(&receipts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rows := dashboard.BuildRealtorRows(users, receipts)

	filtered, err := filters.Apply(rows)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pageRows, total := dashboard.Paginate(filtered, page)

	c.JSON(http.StatusOK, gin.H{
		"data":      pageRows,
		"total":     total,
		"page":      page,
		"page_size": dashboard.PageSize,
	})
}

func parseRealtorFilters(c *gin.Context) (dashboard.Filters, int, error) {
	var filters dashboard.Filters

	if v := c.Query("min_amount"); v != "" {
		min, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filters, 0, fmt.Errorf("invalid min_amount %q", v)
		}
		filters.MinAmount = &min
	}

	if v := c.Query("max_amount"); v != "" {
		max, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filters, 0, fmt.Errorf("invalid max_amount %q", v)
		}
		filters.MaxAmount = &max
	}

	if v := c.Query("status"); v != "" {
		if v != dashboard.StatusActive && v != dashboard.StatusInactive {
			return filters, 0, fmt.Errorf("status must be %s or %s", dashboard.StatusActive, dashboard.StatusInactive)
		}
		filters.Status = v
	}

	filters.NameQuery = c.Query("q")
	filters.DateFrom = c.Query("from")
	filters.DateTo = c.Query("to")
	filters.Search = c.Query("search")

	if v := c.Query("tab"); v != "" {
		tab := dashboard.Tab(v)
		switch tab {
		case dashboard.TabAll, dashboard.TabTop, dashboard.TabApproved, dashboard.TabRejected:
			filters.Tab = tab
		default:
			return filters, 0, fmt.Errorf("unknown tab %q", v)
		}
	}

	page := 1
	if v := c.Query("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p < 1 {
			return filters, 0, fmt.Errorf("invalid page %q", v)
		}
		page = p
	}

	return filters, page, nil
}
