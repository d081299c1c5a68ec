package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"todoist-export/pkg/response"
)

// Home godoc
// @Summary     Export form
// @Description Minimal HTML page with the format/archived selectors.
// @Tags        Export
// @Produce     html
// @Success     200 "Home page"
// @Router      / [GET]
func (h *handler) Home(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(homePage))
}

// Export godoc
// @Summary     Download the task dataset
// @Description Fetches the full account snapshot from Todoist and streams it as a JSON or CSV file.
// @Tags        Export
// @Produce     json
// @Param       token    query string true  "Bearer token from the OAuth callback"
// @Param       format   query string false "Export format (json/csv, default json)"
// @Param       archived query bool   false "Include archived (completed) tasks"
// @Success     200 "File download"
// @Failure     400 {object} response.Resp "Bad request"
// @Failure     403 {object} response.Resp "Todoist Premium required"
// @Failure     502 {object} response.Resp "Upstream fetch failed"
// @Router      /export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), h.errDetail(err))
		return
	}

	output, err := h.uc.Export(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Export: %v", err)
		response.Error(c, h.mapError(err), h.errDetail(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", output.Filename))
	c.Data(http.StatusOK, output.ContentType, output.Data)
}
