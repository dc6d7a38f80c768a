package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"asimos_admin/internal/logger"

	"github.com/gin-gonic/gin"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Static - CSS и JS консоли.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// Renderer хранит по шаблону на страницу: layout + partials + страница.
type Renderer struct {
	pages map[string]*template.Template
}

// standalone - страницы со своим layout (без бокового меню).
var standalone = map[string]bool{"login": true}

func NewRenderer() (*Renderer, error) {
	files, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		name := strings.TrimSuffix(path.Base(file), ".html")
		patterns := []string{"templates/partials/*.html", file}
		if !standalone[name] {
			patterns = append([]string{"templates/layout.html"}, patterns...)
		}
		tmpl, err := template.New(name).Funcs(templateFuncs()).ParseFS(templateFS, patterns...)
		if err != nil {
			return nil, fmt.Errorf("views: parse %s: %w", name, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

// Pages - имена загруженных страниц.
func (r *Renderer) Pages() []string {
	names := make([]string, 0, len(r.pages))
	for name := range r.pages {
		names = append(names, name)
	}
	return names
}

// Render отрисовывает страницу в буфер и только потом пишет ответ, чтобы
// ошибка шаблона не оставила полстраницы.
func (r *Renderer) Render(c *gin.Context, status int, name string, page *Page) {
	tmpl, ok := r.pages[name]
	if !ok {
		logger.CtxError(c.Request.Context(), "unknown template", "template", name)
		c.String(http.StatusInternalServerError, "template %q not found", name)
		return
	}

	page.Toasts = append(page.Toasts, PopFlash(c)...)

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		logger.CtxWithError(c.Request.Context(), "template render failed", err, "template", name)
		c.String(http.StatusInternalServerError, "render error")
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
