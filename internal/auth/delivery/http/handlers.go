package http

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"todoist-export/internal/auth"
	"todoist-export/pkg/response"
)

// Login godoc
// @Summary     Start the Todoist authorization flow
// @Description Redirects the user to Todoist's authorize page. Export preferences are kept server-side across the redirect.
// @Tags        Auth
// @Produce     json
// @Param       format   query string false "Export format (json/csv, default json)"
// @Param       archived query bool   false "Include archived (completed) tasks"
// @Success     302 "Redirect to Todoist"
// @Failure     400 {object} response.Resp "Unsupported format"
// @Router      /auth/login [GET]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), h.errDetail(err))
		return
	}

	loginURL, err := h.uc.LoginURL(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.LoginURL: %v", err)
		response.Error(c, h.mapError(err), h.errDetail(err))
		return
	}

	c.Redirect(http.StatusFound, loginURL)
}

// Callback godoc
// @Summary     OAuth2 callback
// @Description Exchanges the authorization code for a bearer token and redirects to the export download.
// @Tags        Auth
// @Produce     json
// @Param       code  query string false "Authorization code"
// @Param       state query string true  "Anti-CSRF state"
// @Param       error query string false "Upstream error, e.g. access_denied"
// @Success     302 "Redirect to /export"
// @Failure     400 {object} response.Resp "Invalid state or missing code"
// @Failure     401 {object} response.Resp "Authorization failed"
// @Router      /auth/callback [GET]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.HandleCallback(ctx, auth.CallbackInput{
		Code:     c.Query("code"),
		State:    c.Query("state"),
		ErrParam: c.Query("error"),
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.HandleCallback: %v", err)
		response.Error(c, h.mapError(err), h.errDetail(err))
		return
	}

	query := url.Values{}
	query.Set("token", out.Token)
	query.Set("format", string(out.Format))
	if out.Archived {
		query.Set("archived", "1")
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/export?%s", query.Encode()))
}
