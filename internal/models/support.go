package models

// TicketProfile - контакты автора обращения.
type TicketProfile struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// SupportMessage - сообщение в переписке по обращению.
type SupportMessage struct {
	ID        ID     `json:"id"`
	Message   string `json:"message"`
	IsAdmin   bool   `json:"is_admin"`
	CreatedAt string `json:"created_at"`
}

// SupportTicket - обращение в поддержку.
type SupportTicket struct {
	ID        ID             `json:"id"`
	Subject   string         `json:"subject"`
	Message   string         `json:"message"`
	Status    TicketStatus   `json:"status"`
	Profiles  *TicketProfile `json:"profiles"`
	CreatedAt string         `json:"created_at"`

	SupportMessages []SupportMessage `json:"support_messages,omitempty"`
	Messages        []SupportMessage `json:"messages,omitempty"`
}

// Thread возвращает ответы по обращению. Бэкенд отдаёт их либо как
// support_messages (join Supabase), либо как messages.
func (t SupportTicket) Thread() []SupportMessage {
	if len(t.SupportMessages) > 0 {
		return t.SupportMessages
	}
	return t.Messages
}

// RequesterName - имя автора или "İstifadəçi".
func (t SupportTicket) RequesterName() string {
	if t.Profiles != nil && t.Profiles.FullName != "" {
		return t.Profiles.FullName
	}
	return "İstifadəçi"
}

type SupportReply struct {
	Message string `json:"message"`
}
