// Notification HTTP handlers.
//
// This file exposes the read-derived notification feed:
//   - GET /notifications  (recent swap activity involving the current user)
//
// The feed is computed from swap rows on read; there is no notification store.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListNotifications godoc
// @ID          listNotifications
// @Summary     List the current user's notifications
// @Description Returns the most recent swaps involving the user that have left the pending state, newest activity first.
// @Tags        Notifications
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
//
// @Success     200  {array}   services.Notification
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /notifications [get]
func (h *Handlers) ListNotifications(c *gin.Context) {
	out, err := h.notifSvc.ListForUser(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, out)
}
