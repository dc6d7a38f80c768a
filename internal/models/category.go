package models

// Category - категория вакансий. Вложенность поддерживается на один уровень.
type Category struct {
	ID        ID      `json:"id"`
	Name      string  `json:"name"`
	Slug      string  `json:"slug"`
	Sort      FlexInt `json:"sort"`
	IsActive  *bool   `json:"is_active"`
	ParentID  ID      `json:"parent_id"`
	CreatedAt string  `json:"created_at,omitempty"`
}

// Active - отсутствующий is_active считается true.
func (c Category) Active() bool {
	return c.IsActive == nil || *c.IsActive
}

func (c Category) HasParent() bool {
	return c.ParentID != ""
}

// CategoryInput - тело POST/PATCH /admin/categories.
type CategoryInput struct {
	Name     string     `json:"name"`
	Slug     string     `json:"slug"`
	Sort     int        `json:"sort"`
	IsActive bool       `json:"is_active"`
	ParentID NullString `json:"parent_id"`
}

// CategoryList - ответ /admin/categories с признаком ненастроенной таблицы.
type CategoryList struct {
	Items                   []Category `json:"items"`
	CategoriesSetupRequired bool       `json:"categoriesSetupRequired"`
	Hint                    string     `json:"hint"`
}
