package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// respondOK writes a success envelope merged with payload
func respondOK(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// respondFail answers a rejected request (bad input, bad credentials, missing
// record). The browser client only reads the envelope of 2xx responses, so the
// outcome travels in "success" and the status stays 200.
func respondFail(c *gin.Context, message string) {
	requestLog(c).WithField("reason", message).Debug("Request rejected")
	c.JSON(http.StatusOK, gin.H{"success": false, "error": message})
}

// respondError writes a failure envelope with a client-safe message
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

// requestLog returns a logrus entry tagged with the request ID, if any
func requestLog(c *gin.Context) *logrus.Entry {
	entry := logrus.WithField("path", c.FullPath())
	if id, ok := c.Get("requestID"); ok {
		entry = entry.WithField("request_id", id)
	}
	return entry
}

// logBindError records which fields failed validation; the client only ever
// sees the endpoint's generic message.
func logBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field()+":"+fe.Tag())
		}
		requestLog(c).WithField("fields", fields).Debug("Request validation failed")
		return
	}
	requestLog(c).WithError(err).Debug("Malformed request body")
}
