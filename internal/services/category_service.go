package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"asimos_admin/internal/logger"
	"asimos_admin/internal/models"
	"asimos_admin/internal/services/dto"
	"asimos_admin/internal/validator"
	"asimos_admin/pkg/apiclient"
	"asimos_admin/pkg/apperrors"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// UnknownParentName - родитель, которого нет в списке.
const UnknownParentName = "—"

type CategoryService interface {
	List(ctx context.Context, q string) (*dto.CategoryPage, error)
	Save(ctx context.Context, form *dto.CategoryForm) error
	Delete(ctx context.Context, id string) error
}

type CategoryServiceImpl struct {
	api       Backend
	validator *validator.Validator
}

func NewCategoryService(api Backend, v *validator.Validator) CategoryService {
	return &CategoryServiceImpl{api: api, validator: v}
}

func (s *CategoryServiceImpl) List(ctx context.Context, q string) (*dto.CategoryPage, error) {
	start := time.Now()
	list, err := s.api.ListCategories(ctx, apiclient.CategoryListParams{
		Query: strings.TrimSpace(q),
		Limit: dto.CategoriesPageLimit,
	})
	if err != nil {
		logger.PageLog("categories", 0, time.Since(start), err)
		return nil, apiError(err, "category")
	}
	logger.PageLog("categories", len(list.Items), time.Since(start), nil)

	page := &dto.CategoryPage{
		Rows:          OrderCategories(list.Items),
		ParentOptions: ParentOptions(list.Items),
		SetupRequired: list.CategoriesSetupRequired,
	}
	if page.SetupRequired {
		page.Hint = list.Hint
		if page.Hint == "" {
			page.Hint = dto.CategorySetupHint
		}
	}
	return page, nil
}

// Save создаёт категорию или, если в форме есть id, обновляет её.
func (s *CategoryServiceImpl) Save(ctx context.Context, form *dto.CategoryForm) error {
	if err := validateForm(s.validator, form, "category"); err != nil {
		return err
	}
	id := strings.TrimSpace(form.ID)
	if id != "" && strings.TrimSpace(form.ParentID) == id {
		return apperrors.ErrCategorySelfParent()
	}

	var err error
	if form.IsEdit() {
		err = s.api.UpdateCategory(ctx, id, form.Payload())
	} else {
		err = s.api.CreateCategory(ctx, form.Payload())
	}
	if err != nil {
		return apiError(err, "category")
	}
	logger.CtxInfo(ctx, "category saved", "category_id", id, "name", form.Name)
	return nil
}

func (s *CategoryServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteCategory(ctx, id); err != nil {
		return apiError(err, "category")
	}
	logger.CtxInfo(ctx, "category deleted", "category_id", id)
	return nil
}

// =========================================================================
// Иерархическая сортировка
// =========================================================================

func newCollator() *collate.Collator {
	return collate.New(language.Azerbaijani, collate.IgnoreCase)
}

// sortCategories упорядочивает по sort, затем по имени (азербайджанская сортировка).
func sortCategories(items []models.Category, col *collate.Collator) {
	sort.SliceStable(items, func(i, k int) bool {
		if items[i].Sort != items[k].Sort {
			return items[i].Sort < items[k].Sort
		}
		return col.CompareString(items[i].Name, items[k].Name) < 0
	})
}

// OrderCategories строит таблицу: корневые категории, за каждой её дочерние.
// Категории, чей parent_id указывает на отсутствующую запись, идут в конце.
func OrderCategories(items []models.Category) []dto.CategoryRow {
	col := newCollator()

	names := make(map[models.ID]string, len(items))
	for _, c := range items {
		name := c.Name
		if name == "" {
			name = "-"
		}
		names[c.ID] = name
	}

	var parents, orphans []models.Category
	children := make(map[models.ID][]models.Category)
	for _, c := range items {
		switch {
		case !c.HasParent():
			parents = append(parents, c)
		default:
			children[c.ParentID] = append(children[c.ParentID], c)
			if _, ok := names[c.ParentID]; !ok {
				orphans = append(orphans, c)
			}
		}
	}
	sortCategories(parents, col)
	for id := range children {
		sortCategories(children[id], col)
	}
	sortCategories(orphans, col)

	rows := make([]dto.CategoryRow, 0, len(items))
	seen := make(map[models.ID]bool, len(items))
	var appendChildren func(parent models.ID)
	appendChildren = func(parent models.ID) {
		for _, k := range children[parent] {
			if seen[k.ID] {
				continue
			}
			seen[k.ID] = true
			rows = append(rows, dto.CategoryRow{Category: k, IsChild: true, ParentName: names[parent]})
			appendChildren(k.ID)
		}
	}
	for _, p := range parents {
		seen[p.ID] = true
		rows = append(rows, dto.CategoryRow{Category: p})
		appendChildren(p.ID)
	}
	for _, o := range orphans {
		rows = append(rows, dto.CategoryRow{Category: o, IsChild: true, ParentName: UnknownParentName})
	}
	return rows
}

// ParentOptions - все категории по имени, для выбора родителя.
func ParentOptions(items []models.Category) []dto.CategoryOption {
	col := newCollator()
	opts := make([]dto.CategoryOption, 0, len(items))
	for _, c := range items {
		opts = append(opts, dto.CategoryOption{ID: c.ID.String(), Name: c.Name})
	}
	sort.SliceStable(opts, func(i, k int) bool {
		return col.CompareString(opts[i].Name, opts[k].Name) < 0
	})
	return opts
}
