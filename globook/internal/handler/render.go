package handler

import (
	"html/template"
	"io"
	"io/fs"

	"github.com/labstack/echo/v4"
)

type templateRenderer struct {
	templates *template.Template
}

func newTemplateRenderer(fsys fs.FS, pattern string) *templateRenderer {
	return &templateRenderer{
		templates: template.Must(template.ParseFS(fsys, pattern)),
	}
}

func (r *templateRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
