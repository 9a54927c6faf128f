package handler

import (
	"net/http"
	"strings"

	"github.com/DwayneDumaguing/jamsody-next/internal/dto"
	"github.com/DwayneDumaguing/jamsody-next/internal/service"
	"github.com/DwayneDumaguing/jamsody-next/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

func (h *Handler) homePage(c *gin.Context) {
	c.HTML(http.StatusOK, "home.tmpl", gin.H{
		"AppStoreURL": viper.GetString("links.app_store"),
		"OpenAppLink": utils.HomeDeepLink(),
	})
}

func (h *Handler) profilePage(c *gin.Context) {
	username := strings.TrimSpace(c.Param("username"))
	if username == "" {
		h.renderNotFound(c, service.ErrProfileNotFound, "Profile not found", profileNotFoundHint)
		return
	}

	page, err := h.services.Profile.GetPage(c.Request.Context(), username)
	if err != nil {
		h.renderNotFound(c, err, "Profile not found", profileNotFoundHint)
		return
	}

	c.HTML(http.StatusOK, "profile.tmpl", dto.ProfileViewFromPage(page, h.urls))
}

func (h *Handler) eventPage(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))
	if code == "" {
		h.renderNotFound(c, service.ErrEventNotFound, "Event not found", eventNotFoundHint)
		return
	}

	event, err := h.services.Event.GetByCode(c.Request.Context(), code)
	if err != nil {
		h.renderNotFound(c, err, "Event not found", eventNotFoundHint)
		return
	}

	c.HTML(http.StatusOK, "event.tmpl", dto.EventViewFromEvent(event))
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}

const (
	profileNotFoundHint = "This profile might be private or removed."
	eventNotFoundHint   = "This event might be draft, private, or removed."
)

// renderNotFound shows the same content-free page for missing and non-public
// records so their existence is not leaked.
func (h *Handler) renderNotFound(c *gin.Context, err error, title string, hint string) {
	status := http.StatusNotFound
	if err == service.ErrInternal {
		status = http.StatusInternalServerError
	}

	c.HTML(status, "not_found.tmpl", gin.H{
		"Title": title,
		"Hint":  hint,
	})
}
