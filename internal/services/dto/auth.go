package dto

// LoginRequest - форма входа администратора.
type LoginRequest struct {
	Email    string `form:"email" json:"email" validate:"notblank"`
	Password string `form:"password" json:"password" validate:"notblank"`
	From     string `form:"from" json:"-"`
}

func (LoginRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"email":    "Email daxil edin",
		"password": "Şifrə daxil edin",
	}
}

// EmployerForm - быстрое создание работодателя из формы вакансии.
type EmployerForm struct {
	FullName    string `form:"full_name" json:"full_name" validate:"notblank"`
	Email       string `form:"email" json:"email" validate:"notblank"`
	Phone       string `form:"phone" json:"phone"`
	Password    string `form:"password" json:"password" validate:"notblank"`
	CompanyName string `form:"companyName" json:"companyName"`
}

func (EmployerForm) ValidationMessages() map[string]string {
	const msg = "Ad, Email və Şifrə mütləqdir"
	return map[string]string{
		"full_name": msg,
		"email":     msg,
		"password":  msg,
	}
}
