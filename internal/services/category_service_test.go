package services_test

import (
	"context"
	"net/http"
	"testing"

	"asimos_admin/internal/models"
	"asimos_admin/internal/services"
	"asimos_admin/internal/services/dto"
	"asimos_admin/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowNames(rows []dto.CategoryRow) []string {
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		prefix := ""
		if r.IsChild {
			prefix = "↳ "
		}
		names = append(names, prefix+r.Name)
	}
	return names
}

func TestOrderCategories_ParentsChildrenOrphans(t *testing.T) {
	svc, fb := newServices(t)
	fb.SeedCategories()

	page, err := svc.CategoryService.List(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, []string{"Mağaza", "Restoran", "↳ Aşpaz", "↳ Ofisiant", "↳ Köhnə"}, rowNames(page.Rows))
	assert.Equal(t, "Restoran", page.Rows[2].ParentName)
	assert.Equal(t, services.UnknownParentName, page.Rows[4].ParentName)
	assert.Equal(t, "", page.Rows[0].ParentName)
	assert.False(t, page.SetupRequired)

	req := fb.LastRequest(t, http.MethodGet, "/admin/categories")
	assert.Equal(t, "500", req.Query.Get("limit"))
}

func TestOrderCategories_AzerbaijaniCollation(t *testing.T) {
	rows := services.OrderCategories([]models.Category{
		{ID: "1", Name: "Dəniz"},
		{ID: "2", Name: "Çay"},
		{ID: "3", Name: "Cəmi"},
	})
	assert.Equal(t, []string{"Cəmi", "Çay", "Dəniz"}, rowNames(rows))
}

func TestOrderCategories_SortBeforeName(t *testing.T) {
	rows := services.OrderCategories([]models.Category{
		{ID: "1", Name: "A", Sort: 5},
		{ID: "2", Name: "B", Sort: 1},
		{ID: "3", Name: "C", Sort: 1},
	})
	assert.Equal(t, []string{"B", "C", "A"}, rowNames(rows))
}

func TestParentOptions_SortedByName(t *testing.T) {
	opts := services.ParentOptions([]models.Category{
		{ID: "r", Name: "Restoran"},
		{ID: "a", Name: "Aşpaz"},
		{ID: "m", Name: "Mağaza"},
	})
	require.Len(t, opts, 3)
	assert.Equal(t, "a", opts[0].ID)
	assert.Equal(t, "m", opts[1].ID)
	assert.Equal(t, "r", opts[2].ID)
}

func TestCategoryList_SetupHint(t *testing.T) {
	svc, fb := newServices(t)
	fb.CategoriesSetupRequired = true

	page, err := svc.CategoryService.List(context.Background(), "")
	require.NoError(t, err)
	assert.True(t, page.SetupRequired)
	assert.Equal(t, dto.CategorySetupHint, page.Hint)

	fb.CategoriesHint = "Run migrations"
	page, err = svc.CategoryService.List(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "Run migrations", page.Hint)
}

func TestCategorySave_Create(t *testing.T) {
	svc, fb := newServices(t)

	err := svc.CategoryService.Save(context.Background(), &dto.CategoryForm{
		Name:     "Tikinti",
		Slug:     "",
		Sort:     "3",
		IsActive: true,
	})
	require.NoError(t, err)

	body := fb.LastRequest(t, http.MethodPost, "/admin/categories").JSON(t)
	assert.Equal(t, "Tikinti", body["name"])
	assert.Equal(t, float64(3), body["sort"])
	assert.Equal(t, true, body["is_active"])
	assert.Nil(t, body["parent_id"])
	assert.Contains(t, body, "parent_id")
}

func TestCategorySave_EditWithBadSort(t *testing.T) {
	svc, fb := newServices(t)
	fb.SeedCategories()

	err := svc.CategoryService.Save(context.Background(), &dto.CategoryForm{
		ID:       "c-cook",
		Name:     "Aşpaz köməkçisi",
		Sort:     "abc",
		ParentID: "c-rest",
	})
	require.NoError(t, err)

	body := fb.LastRequest(t, http.MethodPatch, "/admin/categories/c-cook").JSON(t)
	assert.Equal(t, float64(0), body["sort"])
	assert.Equal(t, "c-rest", body["parent_id"])
	assert.Equal(t, false, body["is_active"])
}

func TestCategorySave_Validation(t *testing.T) {
	svc, fb := newServices(t)

	err := svc.CategoryService.Save(context.Background(), &dto.CategoryForm{Name: "   "})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "Kateqoriya adı vacibdir.", appErr.Message)

	err = svc.CategoryService.Save(context.Background(), &dto.CategoryForm{ID: "c-1", Name: "X", ParentID: "c-1"})
	require.Error(t, err)
	appErr, _ = apperrors.AsAppError(err)
	assert.Equal(t, apperrors.CodeInvalidOperation, appErr.Code)

	assert.Empty(t, fb.Requests(), "invalid forms never reach the backend")
}

func TestCategoryDelete(t *testing.T) {
	svc, fb := newServices(t)
	fb.SeedCategories()

	require.NoError(t, svc.CategoryService.Delete(context.Background(), "c-shop"))

	err := svc.CategoryService.Delete(context.Background(), "c-shop")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
