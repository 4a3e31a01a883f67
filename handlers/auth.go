package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"newsroom-video/auth"
	"newsroom-video/database"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func RegisterPost(c echo.Context) error {
	var creds credentials
	if err := c.Bind(&creds); err != nil || creds.Username == "" || creds.Password == "" {
		return message(c, http.StatusBadRequest, "Username and password required.")
	}

	db := database.Get()
	var existing auth.User
	err := db.Where("username = ?", creds.Username).First(&existing).Error
	if err == nil {
		return message(c, http.StatusBadRequest, "Username already taken.")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return serverError(c, "Server error during registration.", err)
	}

	// self-registration always lands in the least-privileged role
	if err := auth.CreateUser(db, creds.Username, creds.Password, auth.RoleReporter); err != nil {
		return serverError(c, "Server error during registration.", err)
	}
	return message(c, http.StatusCreated, "Registration successful.")
}

func LoginPost(c echo.Context) error {
	var creds credentials
	if err := c.Bind(&creds); err != nil {
		return message(c, http.StatusBadRequest, "Username and password required.")
	}

	user, err := auth.Authenticate(database.Get(), creds.Username, creds.Password)
	if err != nil {
		return message(c, http.StatusBadRequest, "Invalid credentials.")
	}

	token, err := tokens.Issue(user.ID, user.Role)
	if err != nil {
		return serverError(c, "Server error during login.", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"token": token,
		"user": map[string]interface{}{
			"id":       user.ID,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}
