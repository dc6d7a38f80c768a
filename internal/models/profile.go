package models

import "strings"

// Profile - пользователь мобильного приложения (таблица profiles).
type Profile struct {
	ID          ID         `json:"id"`
	FullName    string     `json:"full_name"`
	Email       string     `json:"email,omitempty"`
	Role        UserRole   `json:"role"`
	CompanyName string     `json:"company_name"`
	Phone       string     `json:"phone"`
	Status      UserStatus `json:"status,omitempty"`
	RatingAvg   FlexFloat  `json:"rating_avg,omitempty"`
	RatingCount FlexInt    `json:"rating_count,omitempty"`
	CreatedAt   string     `json:"created_at,omitempty"`
}

// IsEmployer сравнивает роль без учёта регистра.
func (p Profile) IsEmployer() bool {
	return strings.EqualFold(string(p.Role), string(UserRoleEmployer))
}

// DisplayName - имя для выпадающих списков: full_name, затем email, затем id.
func (p Profile) DisplayName() string {
	if p.FullName != "" {
		return p.FullName
	}
	if p.Email != "" {
		return p.Email
	}
	return p.ID.String()
}

// ProfileUpdate - PATCH /admin/users/:id. Пустые company_name и phone
// уходят как null.
type ProfileUpdate struct {
	Role        UserRole    `json:"role,omitempty"`
	FullName    *string     `json:"full_name,omitempty"`
	CompanyName NullString  `json:"company_name"`
	Phone       NullString  `json:"phone"`
	Status      *UserStatus `json:"status,omitempty"`
}

// ProfileStatusUpdate - смена статуса без затрагивания остальных полей.
type ProfileStatusUpdate struct {
	Status UserStatus `json:"status"`
}

// EmployerRegistration - POST /auth/register от имени админа.
type EmployerRegistration struct {
	Role        UserRole   `json:"role"`
	FullName    string     `json:"full_name"`
	Email       string     `json:"email"`
	Phone       NullString `json:"phone"`
	Password    string     `json:"password"`
	CompanyName NullString `json:"companyName"`
}

type RegistrationResponse struct {
	Profile struct {
		ID ID `json:"id"`
	} `json:"profile"`
}
