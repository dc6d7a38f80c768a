package dto

// ContentForm - редактирование статической страницы.
type ContentForm struct {
	Slug  string `form:"slug" json:"slug" validate:"required,is-content-slug"`
	Title string `form:"title" json:"title"`
	Body  string `form:"body" json:"body"`
}
