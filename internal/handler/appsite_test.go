package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppleAppSiteAssociation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	viper.Set("apple.app_id", "TEAMID.com.example.jamsody")

	h := New(nil, nil)
	r := gin.New()
	r.GET("/apple-app-site-association", h.appleAppSiteAssociation)

	req := httptest.NewRequest(http.MethodGet, "/apple-app-site-association", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))

	var body appSiteAssociation
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Empty(t, body.Applinks.Apps)
	require.Len(t, body.Applinks.Details, 1)
	assert.Equal(t, "TEAMID.com.example.jamsody", body.Applinks.Details[0].AppID)
	assert.Equal(t, []string{"*"}, body.Applinks.Details[0].Paths)
}
