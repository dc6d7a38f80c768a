package models

// ContentPage - статическая страница (правила, политика конфиденциальности).
type ContentPage struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

type ContentInput struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
