package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

type appSiteAssociation struct {
	Applinks appLinks `json:"applinks"`
}

type appLinks struct {
	Apps    []string        `json:"apps"`
	Details []appLinkDetail `json:"details"`
}

type appLinkDetail struct {
	AppID string   `json:"appID"`
	Paths []string `json:"paths"`
}

// appleAppSiteAssociation serves the universal-link association payload the
// OS fetches to hand links off to the app.
func (h *Handler) appleAppSiteAssociation(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	c.JSON(http.StatusOK, appSiteAssociation{
		Applinks: appLinks{
			Apps: []string{},
			Details: []appLinkDetail{
				{
					AppID: viper.GetString("apple.app_id"),
					Paths: []string{"*"},
				},
			},
		},
	})
}
