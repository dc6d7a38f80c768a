package dto

import "asimos_admin/internal/models"

// UsersPageLimit - сколько пользователей показывает таблица.
const UsersPageLimit = 50

// UserFilter - состояние поиска страницы пользователей (query string).
type UserFilter struct {
	Query string `form:"q"`
	Role  string `form:"role" validate:"omitempty,is-user-role"`
}

// UserForm - редактирование профиля.
type UserForm struct {
	Role        string `form:"role" json:"role" validate:"omitempty,is-user-role"`
	FullName    string `form:"full_name" json:"full_name"`
	CompanyName string `form:"company_name" json:"company_name"`
	Phone       string `form:"phone" json:"phone"`
}

// NewUserForm заполняет форму текущими значениями профиля.
func NewUserForm(p models.Profile) UserForm {
	role := string(p.Role)
	if role == "" {
		role = string(models.UserRoleSeeker)
	}
	return UserForm{
		Role:        role,
		FullName:    p.FullName,
		CompanyName: p.CompanyName,
		Phone:       p.Phone,
	}
}

// Patch - тело PATCH /admin/users/:id; пустые company_name и phone уходят null.
func (f UserForm) Patch() models.ProfileUpdate {
	fullName := f.FullName
	return models.ProfileUpdate{
		Role:        models.UserRole(f.Role),
		FullName:    &fullName,
		CompanyName: models.NullString(f.CompanyName),
		Phone:       models.NullString(f.Phone),
	}
}

type UserStatusForm struct {
	Status string `form:"status" json:"status" validate:"required,is-user-status"`
}
