package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"lull-backoffice/internal/database"
	"lull-backoffice/internal/export"
	"lull-backoffice/internal/service"

	"github.com/gin-gonic/gin"
)

// Export downloads a page's filtered rows as CSV or XLSX, chosen by the
// format query parameter.
func (h *Handler) Export(page string) gin.HandlerFunc {
	return func(c *gin.Context) {
		format, err := export.ParseFormat(c.Query("format"))
		if err != nil {
			h.fail(c, http.StatusBadRequest, "format must be csv or xlsx", err)
			return
		}

		ctx := c.Request.Context()
		table, err := h.backoffice.Table(ctx, page, c.Request.URL.Query())
		if err != nil {
			if errors.Is(err, service.ErrUnknownPage) {
				h.fail(c, http.StatusNotFound, "unknown export page", err)
				return
			}
			h.fail(c, http.StatusInternalServerError, "failed to load "+page, err)
			return
		}

		var buf bytes.Buffer
		if err := export.Write(&buf, format, table); err != nil {
			h.fail(c, http.StatusInternalServerError, "failed to write export", err)
			return
		}

		database.RecordAudit(ctx, h.store, h.logger, sessionUserID(c), page, "", "export",
			fmt.Sprintf("%s (%d件)", format, len(table.Rows)))

		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, format.FileName(page)))
		c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
	}
}
