package handlers

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberia-reservas/internal/domain/catalog"
	"github.com/BruksfildServices01/barberia-reservas/internal/httperr"
	"github.com/BruksfildServices01/barberia-reservas/internal/httpresp"
	"github.com/BruksfildServices01/barberia-reservas/internal/models"
	ucCatalog "github.com/BruksfildServices01/barberia-reservas/internal/usecase/catalog"
)

type CatalogBrowser interface {
	List(ctx context.Context, f catalog.Filter) ([]models.Barbershop, error)
	Detail(ctx context.Context, id uint) (*ucCatalog.BarbershopDetail, error)
}

type CatalogHandler struct {
	browse CatalogBrowser
	log    *slog.Logger
}

func NewCatalogHandler(browse CatalogBrowser, log *slog.Logger) *CatalogHandler {
	return &CatalogHandler{browse: browse, log: log}
}

func (h *CatalogHandler) List(c *gin.Context) {
	shops, err := h.browse.List(c.Request.Context(), catalog.Filter{
		City:  c.Query("city"),
		Query: c.Query("q"),
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.List(c, shops)
}

// Detail also backs GET /client/book/:barbershopId, the data the booking
// form needs.
func (h *CatalogHandler) Detail(c *gin.Context) {
	raw := c.Param("id")
	if raw == "" {
		raw = c.Param("barbershopId")
	}

	id, ok := parseID(raw)
	if !ok {
		httperr.NotFound(c, "barbershop_not_found", "")
		return
	}

	detail, err := h.browse.Detail(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	resp := gin.H{
		"barbershop": detail.Barbershop,
		"services":   detail.Services,
		"barbers":    detail.Barbers,
	}
	if code := c.Query("error"); code != "" {
		resp["error"] = code
	}
	httpresp.OK(c, resp)
}
