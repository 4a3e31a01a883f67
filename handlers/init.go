package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"newsroom-video/auth"
	"newsroom-video/intake"
)

var log *logrus.Logger
var uploads *intake.Service
var tokens *auth.JWTVerifier

func Init(logger *logrus.Logger, service *intake.Service, verifier *auth.JWTVerifier) error {
	log = logger.WithFields(logrus.Fields{
		"component": "handlers",
	}).Logger
	uploads = service
	tokens = verifier
	return nil
}

func Fini() {}

func message(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]string{"message": msg})
}

func serverError(c echo.Context, msg string, err error) error {
	log.Errorln(msg+":", err)
	return message(c, http.StatusInternalServerError, msg)
}
