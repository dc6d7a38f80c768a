package views

import (
	"html/template"
	"net/url"
	"strings"
	"time"

	"asimos_admin/internal/models"

	"github.com/goccy/go-json"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Azerbaijani)

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"roleLabel":       func(r models.UserRole) string { return r.Label() },
		"userStatusLabel": func(s models.UserStatus) string { return s.Label() },
		"jobStatusLabel":  func(s models.JobStatus) string { return s.Label() },
		"contentLabel":    models.ContentSlugLabel,
		"userRoles":       func() []models.UserRole { return models.UserRoles },
		"userStatuses":    func() []models.UserStatus { return models.UserStatuses },
		"jobStatuses":     func() []models.JobStatus { return models.JobStatuses },
		"contentSlugs":    func() []string { return models.ContentSlugs },
		"formatDate":      FormatDate,
		"formatDay":       FormatDay,
		"humanize":        Humanize,
		"orDash":          OrDash,
		"truncate":        Truncate,
		"barWidth":        BarWidth,
		"jsonData":        JSONData,
		"query":           QueryString,
		"toastTTL":        func() int { return ToastTTL },
	}
}

// FormatDate - дата и время для таблиц (UTC+4, Баку).
func FormatDate(raw string) string {
	t, ok := parseTime(raw)
	if !ok {
		return OrDash(raw)
	}
	return t.In(bakuZone).Format("02.01.2006 15:04")
}

// FormatDay - только дата.
func FormatDay(raw string) string {
	t, ok := parseTime(raw)
	if !ok {
		return OrDash(raw)
	}
	return t.In(bakuZone).Format("02.01.2006")
}

var bakuZone = time.FixedZone("AZT", 4*60*60)

func parseTime(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999", "2006-01-02 15:04:05.999999-07", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Humanize превращает тип события "auth_login" в "Auth Login".
func Humanize(s string) string {
	return titleCaser.String(strings.ReplaceAll(strings.TrimSpace(s), "_", " "))
}

func OrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// Truncate обрезает строку до n рун.
func Truncate(n int, s string) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}

// BarWidth - ширина столбца диаграммы в процентах от максимума.
func BarWidth(count, max models.FlexInt) int {
	if max <= 0 || count <= 0 {
		return 0
	}
	w := int(count * 100 / max)
	if w < 2 {
		w = 2
	}
	return w
}

// JSONData сериализует данные для <script type="application/json">.
func JSONData(v any) (template.JS, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	// "</" внутри строк не должен закрывать тег script
	return template.JS(strings.ReplaceAll(string(raw), "</", `<\/`)), nil
}

// QueryString собирает "?k=v&..." из пар ключ-значение, пропуская пустые значения.
func QueryString(pairs ...string) template.URL {
	values := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] != "" {
			values.Set(pairs[i], pairs[i+1])
		}
	}
	if len(values) == 0 {
		return ""
	}
	return template.URL("?" + values.Encode())
}
