package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberia-reservas/internal/httperr"
	"github.com/BruksfildServices01/barberia-reservas/internal/media"
	"github.com/BruksfildServices01/barberia-reservas/internal/usecase/account"
)

type Profiles interface {
	Profile(ctx context.Context, userID uint) (*account.Profile, error)
	UpdatePhoto(ctx context.Context, userID uint, upload io.Reader) (*account.Profile, error)
}

type MeHandler struct {
	profiles Profiles
	log      *slog.Logger
}

func NewMeHandler(profiles Profiles, log *slog.Logger) *MeHandler {
	return &MeHandler{profiles: profiles, log: log}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	prof, err := h.profiles.Profile(c.Request.Context(), p.UserID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, prof)
}

func (h *MeHandler) UploadPhoto(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "photo_required", "")
		return
	}
	if fh.Size > media.MaxUploadBytes {
		httperr.BadRequest(c, "photo_too_large", "")
		return
	}

	f, err := fh.Open()
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	defer f.Close()

	prof, err := h.profiles.UpdatePhoto(c.Request.Context(), p.UserID, f)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, prof)
}
