package models

type UserStatus string
type UserRole string
type JobStatus string
type TicketStatus string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"

	UserRoleSeeker   UserRole = "seeker"
	UserRoleEmployer UserRole = "employer"

	JobStatusPending JobStatus = "pending"
	JobStatusOpen    JobStatus = "open"
	JobStatusClosed  JobStatus = "closed"

	TicketStatusOpen    TicketStatus = "open"
	TicketStatusReplied TicketStatus = "replied"
	TicketStatusClosed  TicketStatus = "closed"
)

// Слаги статических страниц, которые редактирует админка.
const (
	ContentSlugTerms   = "terms"
	ContentSlugPrivacy = "privacy"
)

var (
	UserRoles      = []UserRole{UserRoleSeeker, UserRoleEmployer}
	UserStatuses   = []UserStatus{UserStatusPending, UserStatusActive, UserStatusSuspended}
	JobStatuses    = []JobStatus{JobStatusOpen, JobStatusPending, JobStatusClosed}
	ContentSlugs   = []string{ContentSlugTerms, ContentSlugPrivacy}
	TicketStatuses = []TicketStatus{TicketStatusOpen, TicketStatusReplied, TicketStatusClosed}
)

func (r UserRole) Valid() bool {
	return r == UserRoleSeeker || r == UserRoleEmployer
}

func (s UserStatus) Valid() bool {
	return s == UserStatusPending || s == UserStatusActive || s == UserStatusSuspended
}

func (s JobStatus) Valid() bool {
	return s == JobStatusPending || s == JobStatusOpen || s == JobStatusClosed
}

// Label - подпись роли в интерфейсе.
func (r UserRole) Label() string {
	switch r {
	case UserRoleSeeker:
		return "İş axtaran"
	case UserRoleEmployer:
		return "İşçi axtaran"
	default:
		return string(r)
	}
}

func (s JobStatus) Label() string {
	switch s {
	case JobStatusPending:
		return "Gözləyir"
	case JobStatusClosed:
		return "Bağlı"
	default:
		return "Aktiv"
	}
}

func (s UserStatus) Label() string {
	switch s {
	case UserStatusPending:
		return "Gözləyir"
	case UserStatusActive:
		return "Aktiv"
	case UserStatusSuspended:
		return "Dayandırılıb"
	default:
		return string(s)
	}
}

// ContentSlugLabel возвращает название страницы по слагу.
func ContentSlugLabel(slug string) string {
	switch slug {
	case ContentSlugTerms:
		return "Qaydalar və Şərtlər"
	case ContentSlugPrivacy:
		return "Məxfilik siyasəti"
	default:
		return slug
	}
}

func IsContentSlug(slug string) bool {
	for _, s := range ContentSlugs {
		if s == slug {
			return true
		}
	}
	return false
}
