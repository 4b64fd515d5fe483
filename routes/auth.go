/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"errors"
	"net/http"
	"strings"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/humaidq/labwave/db"
)

// LoginForm renders the login page
func LoginForm(t template.Template, data template.Data) {
	data["HeaderOnly"] = true
	t.HTML(http.StatusOK, "login")
}

// Login checks the submitted credentials and establishes the session.
func Login(c flamego.Context, s session.Session, t template.Template, data template.Data) {
	username := strings.TrimSpace(c.Request().FormValue("username"))
	password := c.Request().FormValue("password")

	if username == "" || password == "" {
		data["HeaderOnly"] = true
		data["Error"] = "Username and password are required"
		t.HTML(http.StatusBadRequest, "login")
		return
	}

	user, err := db.Authenticate(c.Request().Context(), username, password)
	if err != nil {
		if errors.Is(err, db.ErrInvalidCredentials) {
			logAccessDenied(c, s, "invalid_credentials", http.StatusUnauthorized, "")
			data["HeaderOnly"] = true
			data["Error"] = "Invalid username or password"
			t.HTML(http.StatusUnauthorized, "login")
			return
		}
		logger.Error("Login failed", "error", err)
		data["HeaderOnly"] = true
		data["Error"] = "Login is temporarily unavailable"
		t.HTML(http.StatusInternalServerError, "login")
		return
	}

	s.Set("authenticated", true)
	s.Set("user_id", user.ID)
	s.Set("user_fullname", user.Fullname)
	s.Set("user_is_admin", user.IsAdmin)

	c.Redirect("/", http.StatusSeeOther)
}

// Logout handles logout request
func Logout(s session.Session, c flamego.Context) {
	s.Delete("authenticated")
	s.Delete("user_id")
	s.Delete("user_fullname")
	s.Delete("user_is_admin")
	c.Redirect("/login")
}

// RequireAuth is a middleware that checks if user is authenticated
func RequireAuth(s session.Session, c flamego.Context) {
	authenticated, ok := s.Get("authenticated").(bool)
	if !ok || !authenticated {
		c.Redirect("/login")
		return
	}
	c.Next()
}

func sessionUserID(s session.Session) (string, bool) {
	userID, ok := s.Get("user_id").(string)
	return userID, ok && userID != ""
}
