package dto

// ReplyForm - ответ администратора в обращение.
type ReplyForm struct {
	Message string `form:"message" json:"message" validate:"notblank"`
}

func (ReplyForm) ValidationMessages() map[string]string {
	return map[string]string{"message": "Cavab boş ola bilməz"}
}
