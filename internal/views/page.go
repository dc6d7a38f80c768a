package views

import (
	"asimos_admin/internal/auth"
)

// Crumb - элемент хлебных крошек.
type Crumb struct {
	Label string
	Href  string
}

// NavItem - пункт бокового меню.
type NavItem struct {
	Key   string
	Label string
	Href  string
}

// Navigation - меню консоли в порядке отображения.
var Navigation = []NavItem{
	{Key: "dashboard", Label: "Dashboard", Href: "/"},
	{Key: "users", Label: "İstifadəçilər", Href: "/users"},
	{Key: "jobs", Label: "Elanlar", Href: "/jobs"},
	{Key: "categories", Label: "Kateqoriyalar", Href: "/categories"},
	{Key: "content", Label: "Məzmun", Href: "/content"},
	{Key: "map", Label: "Xəritə", Href: "/map"},
	{Key: "events", Label: "Proseslər", Href: "/events"},
	{Key: "support", Label: "Dəstək", Href: "/support"},
}

// Page - общие данные шаблона: layout, меню, баннер ошибки, тосты.
type Page struct {
	Title      string
	Active     string
	Breadcrumb []Crumb
	Toasts     []Toast
	Error      string
	Admin      auth.TokenInfo
	APIBaseURL string
	RequestID  string

	// Data - данные конкретной страницы.
	Data any
}

// NewPage - страница раздела меню key с крошками "Admin / <раздел>".
func NewPage(key, title string, data any) *Page {
	p := &Page{Title: title, Active: key, Data: data}
	p.Breadcrumb = []Crumb{{Label: "Admin", Href: "/"}}
	for _, item := range Navigation {
		if item.Key == key && key != "dashboard" {
			p.Breadcrumb = append(p.Breadcrumb, Crumb{Label: item.Label, Href: item.Href})
		}
	}
	return p
}

// AddCrumb добавляет последний (некликабельный) элемент крошек.
func (p *Page) AddCrumb(label string) *Page {
	p.Breadcrumb = append(p.Breadcrumb, Crumb{Label: label})
	return p
}

func (p *Page) Nav() []NavItem {
	return Navigation
}
