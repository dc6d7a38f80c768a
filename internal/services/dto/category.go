package dto

import (
	"math"
	"strconv"
	"strings"

	"asimos_admin/internal/models"
)

// CategoriesPageLimit - категорий немного, грузим все сразу.
const CategoriesPageLimit = 500

// CategorySetupHint - подсказка, если бэкенд не прислал свою.
const CategorySetupHint = "Kateqoriyalar cədvəli Supabase-də yaradılmayıb."

// CategoryForm - создание и редактирование категории.
type CategoryForm struct {
	ID       string `form:"id" json:"id"`
	Name     string `form:"name" json:"name" validate:"notblank"`
	Slug     string `form:"slug" json:"slug"`
	Sort     string `form:"sort" json:"sort"`
	IsActive bool   `form:"is_active" json:"is_active"`
	ParentID string `form:"parent_id" json:"parent_id"`
}

func (CategoryForm) ValidationMessages() map[string]string {
	return map[string]string{"name": "Kateqoriya adı vacibdir."}
}

// NewCategoryForm - пустая активная категория, опционально с родителем ("+ sub").
func NewCategoryForm(parentID string) CategoryForm {
	return CategoryForm{Sort: "0", IsActive: true, ParentID: parentID}
}

// EditCategoryForm заполняет форму значениями категории.
func EditCategoryForm(c models.Category) CategoryForm {
	return CategoryForm{
		ID:       c.ID.String(),
		Name:     c.Name,
		Slug:     c.Slug,
		Sort:     strconv.Itoa(c.Sort.Int()),
		IsActive: c.Active(),
		ParentID: c.ParentID.String(),
	}
}

// IsEdit - форма редактирует существующую категорию.
func (f CategoryForm) IsEdit() bool {
	return strings.TrimSpace(f.ID) != ""
}

// Payload - тело POST/PATCH /admin/categories.
func (f CategoryForm) Payload() models.CategoryInput {
	return models.CategoryInput{
		Name:     f.Name,
		Slug:     f.Slug,
		Sort:     SortValue(f.Sort),
		IsActive: f.IsActive,
		ParentID: models.NullString(strings.TrimSpace(f.ParentID)),
	}
}

// SortValue разбирает порядок сортировки; пусто и мусор дают 0.
func SortValue(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int(f)
}

// CategoryRow - строка упорядоченной таблицы категорий.
type CategoryRow struct {
	models.Category
	IsChild    bool
	ParentName string
}

// CategoryOption - элемент выпадающего списка родителей.
type CategoryOption struct {
	ID   string
	Name string
}

// CategoryPage - всё, что нужно странице категорий.
type CategoryPage struct {
	Rows          []CategoryRow
	ParentOptions []CategoryOption
	SetupRequired bool
	Hint          string
}

// Find ищет категорию по id среди строк страницы.
func (p *CategoryPage) Find(id string) (models.Category, bool) {
	for _, row := range p.Rows {
		if row.ID.String() == id {
			return row.Category, true
		}
	}
	return models.Category{}, false
}
