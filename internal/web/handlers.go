package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rickgao/coinboard/internal/metrics"
	"github.com/rickgao/coinboard/internal/model"
)

type currencyForm struct {
	Currency string `form:"currency" binding:"required"`
}

type sortForm struct {
	Order string `form:"order" binding:"required"`
}

type searchForm struct {
	Query string `form:"q"`
}

type pageForm struct {
	Page int `form:"page" binding:"required,min=1"`
	Size int `form:"size" binding:"required"`
}

type codeForm struct {
	Code string `form:"code"`
}

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard.html", buildPage(s.store.Snapshot(), s.version))
}

func (s *Server) handleCurrency(c *gin.Context) {
	var form currencyForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "currency is required")
		return
	}
	cur, err := model.ParseCurrency(form.Currency)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	s.store.SetCurrency(cur)
	s.backToDashboard(c)
}

func (s *Server) handleSort(c *gin.Context) {
	var form sortForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "order is required")
		return
	}
	order, err := model.ParseSortOrder(form.Order)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	s.store.SetSort(order)
	s.backToDashboard(c)
}

func (s *Server) handleSearch(c *gin.Context) {
	var form searchForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	s.store.SetSearch(model.NormalizeSearch(form.Query))
	s.backToDashboard(c)
}

func (s *Server) handlePage(c *gin.Context) {
	var form pageForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "page must be >= 1 and size is required")
		return
	}
	if !model.ValidPageSize(form.Size) {
		c.String(http.StatusBadRequest, "size must be one of 5, 10, 20, 50, 100")
		return
	}

	total := s.store.Selection().Total()
	s.store.SetPagination(clampPage(form.Page, form.Size, total), form.Size)
	s.backToDashboard(c)
}

func (s *Server) handleCode(c *gin.Context) {
	var form codeForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	s.store.SetCode(form.Code)
	c.Redirect(http.StatusSeeOther, "/#code")
}

func (s *Server) handleRefresh(c *gin.Context) {
	s.refresher.Trigger()
	s.backToDashboard(c)
}

func (s *Server) backToDashboard(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}

// stateResponse is the JSON rendering of the view state.
type stateResponse struct {
	Currency  string            `json:"currency"`
	Order     string            `json:"order"`
	Page      int               `json:"page"`
	PageSize  int               `json:"page_size"`
	Search    string            `json:"search"`
	Total     int               `json:"total"`
	Loading   bool              `json:"loading"`
	Error     string            `json:"error,omitempty"`
	Seq       uint64            `json:"seq"`
	FetchedAt *time.Time        `json:"fetched_at,omitempty"`
	Rows      []model.MarketRow `json:"rows"`
}

func (s *Server) handleState(c *gin.Context) {
	v := s.store.Snapshot()

	resp := stateResponse{
		Currency: v.Selection.Currency.Code(),
		Order:    v.Selection.Sort.Value(),
		Page:     v.Selection.Page,
		PageSize: v.Selection.PageSize,
		Search:   v.Selection.Search,
		Total:    v.Total,
		Loading:  v.Loading,
		Error:    v.Error,
		Seq:      v.Seq,
		Rows:     v.Rows,
	}
	if !v.FetchedAt.IsZero() {
		resp.FetchedAt = &v.FetchedAt
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleHealth(c *gin.Context) {
	v := s.store.Snapshot()

	health := struct {
		Status     string         `json:"status"`
		Version    string         `json:"version"`
		Components map[string]any `json:"components"`
	}{
		Status:     "healthy",
		Version:    s.version,
		Components: make(map[string]any),
	}

	orchestrator := map[string]any{
		"loading": v.Loading,
		"seq":     v.Seq,
	}
	if v.Error != "" {
		health.Status = "degraded"
		orchestrator["last_error"] = v.Error
	}
	if !v.FetchedAt.IsZero() {
		orchestrator["fetched_at"] = v.FetchedAt
	}
	health.Components["orchestrator"] = orchestrator

	if s.tracker != nil {
		health.Components["fetch_cycles"] = s.tracker.Stats()
	} else {
		health.Components["fetch_cycles"] = metrics.Stats{}
	}

	c.JSON(http.StatusOK, health)
}
