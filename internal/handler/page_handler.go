package handler

import (
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"
)

// PageHandler serves the thin HTML shells behind the request gate. The real
// presentation is client-side; these pages only need to exist so the gate
// has something to protect and somewhere to redirect.
type PageHandler struct {
	tmpl *template.Template
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}} | Off White Photography</title>
</head>
<body>
<div id="app" data-page="{{.Page}}"></div>
{{if .Message}}<p class="notice">{{.Message}}</p>{{end}}
<script src="/static/app.js"></script>
</body>
</html>
`))

// NewPageHandler creates a new page handler.
func NewPageHandler() *PageHandler {
	return &PageHandler{tmpl: pageTemplate}
}

type pageData struct {
	Title   string
	Page    string
	Message string
}

func (h *PageHandler) render(c echo.Context, title, page string) error {
	data := pageData{
		Title:   title,
		Page:    page,
		Message: c.QueryParam("message"),
	}
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return h.tmpl.Execute(c.Response(), data)
}

// Home renders the landing page.
func (h *PageHandler) Home(c echo.Context) error {
	return h.render(c, "Event Photography", "home")
}

// Packages renders the public packages page.
func (h *PageHandler) Packages(c echo.Context) error {
	return h.render(c, "Packages", "packages")
}

// Login renders the login page. The gate guarantees no authenticated
// session reaches it.
func (h *PageHandler) Login(c echo.Context) error {
	return h.render(c, "Login", "login")
}

// Register renders the registration page.
func (h *PageHandler) Register(c echo.Context) error {
	return h.render(c, "Register", "register")
}

// Profile renders the user profile page.
func (h *PageHandler) Profile(c echo.Context) error {
	return h.render(c, "Profile", "profile")
}

// Admin renders the admin dashboard shell for every /admin path.
func (h *PageHandler) Admin(c echo.Context) error {
	return h.render(c, "Admin", "admin")
}
