package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/notetakerhq/notetaker-api/internal/utils"
)

type APIError struct {
	Code    utils.Code `json:"code"`
	Message string     `json:"message"`
}

// writeError maps a mediator error to its transport status. Messages for
// parse/internal failures never reach the client; the handler logs the full
// error and answers with a generic body.
func writeError(c *gin.Context, log *logrus.Logger, err error) {
	status := utils.HTTPStatus(err)

	if status >= http.StatusInternalServerError {
		log.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		}).Error("request failed")
	}

	var ae *utils.AppError
	if errors.As(err, &ae) && utils.SafeForClient(err) {
		c.JSON(status, APIError{Code: ae.Code, Message: ae.Message})
		return
	}
	if errors.As(err, &ae) {
		c.JSON(status, APIError{Code: ae.Code, Message: "an internal server error occurred"})
		return
	}

	c.JSON(status, APIError{Code: utils.CodeInternal, Message: "an internal server error occurred"})
}
