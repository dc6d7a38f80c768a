package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"asimos_admin/internal/models"
	"asimos_admin/internal/services/dto"
	"asimos_admin/pkg/apperrors"
)

// =========================================================================
// Сессия
// =========================================================================

func runLogin(ctx context.Context, app *cli, args []string) error {
	fs := newFlagSet("login")
	email := fs.String("email", "", "admin email")
	password := fs.String("password", "", "password (default: ASIMOS_PASSWORD)")
	if _, err := parseFlags(fs, args); err != nil {
		return err
	}
	if *password == "" {
		*password = os.Getenv("ASIMOS_PASSWORD")
	}

	token, err := app.services.AuthService.Login(ctx, &dto.LoginRequest{Email: *email, Password: *password})
	if err != nil {
		return err
	}
	if err := app.store.SetToken(token); err != nil {
		return fmt.Errorf("save token: %w", err)
	}

	info := app.services.AuthService.Inspect(token)
	return app.out.Result(map[string]any{
		"email":      info.Email,
		"role":       info.Role,
		"expires_at": expiry(info.ExpiresAt),
		"token_file": app.cfg.TokenFilePath(),
	}, func() {
		app.out.Line("Logged in as %s", dash(info.Email))
		app.out.Fields("Token file", app.cfg.TokenFilePath(), "Expires", expiry(info.ExpiresAt))
	})
}

func runLogout(_ context.Context, app *cli, _ []string) error {
	if err := app.store.ClearToken(); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return app.out.OK("Logged out")
}

func runWhoami(_ context.Context, app *cli, _ []string) error {
	token := app.store.Token()
	if !app.services.AuthService.Usable(token) {
		if token != "" {
			return apperrors.ErrTokenExpired()
		}
		return apperrors.ErrTokenMissing()
	}
	info := app.services.AuthService.Inspect(token)
	return app.out.Result(map[string]any{
		"subject":    info.Subject,
		"email":      info.Email,
		"role":       info.Role,
		"jwt":        info.IsJWT,
		"expires_at": expiry(info.ExpiresAt),
		"api":        app.cfg.API.BaseURL,
	}, func() {
		app.out.Fields(
			"Subject", info.Subject,
			"Email", info.Email,
			"Role", info.Role,
			"Expires", expiry(info.ExpiresAt),
			"API", app.cfg.API.BaseURL,
		)
	})
}

func expiry(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Local().Format(time.RFC3339)
}

// =========================================================================
// Dashboard
// =========================================================================

func runDashboard(ctx context.Context, app *cli, _ []string) error {
	view, err := app.services.DashboardService.Overview(ctx)
	if err != nil {
		return err
	}
	return app.out.Result(view, func() {
		app.out.Fields(
			"Users", strconv.Itoa(view.UsersTotal),
			"Seekers", strconv.Itoa(view.SeekersTotal),
			"Employers", strconv.Itoa(view.EmployersTotal),
			"Jobs", strconv.Itoa(view.JobsTotal),
		)
		if view.EventsSetupRequired {
			app.out.Line("\n%s", dto.EventsSetupHint)
		}
		if view.HasJobsByCategory() {
			app.out.Line("\nJobs by category")
			rows := make([][]string, 0, len(view.JobsByCategory))
			for _, p := range view.JobsByCategory {
				rows = append(rows, []string{p.Name, strconv.Itoa(p.Count.Int())})
			}
			app.out.Table([]string{"CATEGORY", "JOBS"}, rows)
		}
		if view.HasJobsByDay() {
			app.out.Line("\nJobs by day")
			rows := make([][]string, 0, len(view.JobsByDay))
			for _, p := range view.JobsByDay {
				rows = append(rows, []string{p.Date, strconv.Itoa(p.Count.Int())})
			}
			app.out.Table([]string{"DATE", "JOBS"}, rows)
		}
		if view.HasEventsByType() {
			app.out.Line("\nEvents by type")
			rows := make([][]string, 0, len(view.EventsByType))
			for _, p := range view.EventsByType {
				rows = append(rows, []string{p.Type, strconv.Itoa(p.Count.Int())})
			}
			app.out.Table([]string{"TYPE", "EVENTS"}, rows)
		}
	})
}

// =========================================================================
// Пользователи
// =========================================================================

func runUsers(ctx context.Context, app *cli, args []string) error {
	fs := newFlagSet("users")
	q := fs.String("q", "", "search by name, company or phone")
	role := fs.String("role", "", "seeker or employer")
	if _, err := parseFlags(fs, args); err != nil {
		return err
	}

	users, err := app.services.UserService.List(ctx, dto.UserFilter{Query: *q, Role: *role})
	if err != nil {
		return err
	}
	return app.out.Result(users, func() {
		rows := make([][]string, 0, len(users))
		for _, u := range users {
			rows = append(rows, []string{
				u.ID.String(), u.FullName, u.Email, u.Role.Label(), u.CompanyName, u.Phone, u.Status.Label(),
			})
		}
		app.out.Table([]string{"ID", "NAME", "EMAIL", "ROLE", "COMPANY", "PHONE", "STATUS"}, rows)
	})
}

// runUserUpdate меняет только переданные флаги, остальные поля берутся из
// текущего профиля. Явно пустые -company и -phone очищаются на бэкенде.
func runUserUpdate(ctx context.Context, app *cli, args []string) error {
	fs := newFlagSet("user-update")
	fs.String("role", "", "seeker or employer")
	fs.String("full-name", "", "full name")
	fs.String("company", "", "company name (empty clears)")
	fs.String("phone", "", "phone (empty clears)")
	rest, err := parseFlags(fs, args)
	if err != nil {
		return err
	}
	if err := needArgs("user-update", rest, 1); err != nil {
		return err
	}

	user, err := app.services.UserService.Get(ctx, rest[0])
	if err != nil {
		return err
	}
	form := dto.NewUserForm(*user)
	fs.Visit(func(f *flag.Flag) {
		value := f.Value.String()
		switch f.Name {
		case "role":
			form.Role = value
		case "full-name":
			form.FullName = value
		case "company":
			form.CompanyName = value
		case "phone":
			form.Phone = value
		}
	})

	if err := app.services.UserService.Update(ctx, rest[0], &form); err != nil {
		return err
	}
	return app.out.OK("User updated")
}

func runUserStatus(ctx context.Context, app *cli, args []string) error {
	if err := needArgs("user-status", args, 2); err != nil {
		return err
	}
	form := dto.UserStatusForm{Status: args[1]}
	if err := app.services.UserService.SetStatus(ctx, args[0], &form); err != nil {
		return err
	}
	return app.out.OK("Status: " + models.UserStatus(form.Status).Label())
}

func runUserDelete(ctx context.Context, app *cli, args []string) error {
	if err := needArgs("user-delete", args, 1); err != nil {
		return err
	}
	if err := app.services.UserService.Delete(ctx, args[0]); err != nil {
		return err
	}
	return app.out.OK("User deleted")
}

// =========================================================================
// Вакансии
// =========================================================================

func runJobs(ctx context.Context, app *cli, args []string) error {
	fs := newFlagSet("jobs")
	q := fs.String("q", "", "search by title")
	if _, err := parseFlags(fs, args); err != nil {
		return err
	}

	jobs, err := app.services.JobService.List(ctx, *q)
	if err != nil {
		return err
	}
	return app.out.Result(jobs, func() {
		rows := make([][]string, 0, len(jobs))
		for _, j := range jobs {
			rows = append(rows, []string{
				j.ID.String(), j.Title, j.Category, j.Wage.String(), j.Status.Label(), j.LocationAddress, j.CreatedAt,
			})
		}
		app.out.Table([]string{"ID", "TITLE", "CATEGORY", "WAGE", "STATUS", "ADDRESS", "CREATED"}, rows)
	})
}

func runJob(ctx context.Context, app *cli, args []string) error {
	if err := needArgs("job", args, 1); err != nil {
		return err
	}
	job, err := app.services.JobService.Get(ctx, args[0])
	if err != nil {
		return err
	}
	return app.out.Result(job, func() {
		location := "-"
		if job.HasLocation() {
			location = fmt.Sprintf("%.6f, %.6f", job.Location.Lat.Value, job.Location.Lng.Value)
		}
		app.out.Fields(
			"ID", job.ID.String(),
			"Title", job.Title,
			"Status", job.Status.Label(),
			"Category", job.Category,
			"Wage", job.Wage.String(),
			"Type", joinNonEmpty(" ", job.JobType, durationLabel(job)),
			"Created", job.CreatedAt,
			"Expires", job.ExpiresAt,
			"Employer", job.CreatedBy.String(),
			"Phone", job.Phone,
			"WhatsApp", job.Whatsapp,
			"Link", job.Link,
			"VOEN", job.Voen,
			"Address", job.Location.Address,
			"Location", location,
		)
		if job.Description != "" {
			app.out.Line("\n%s", job.Description)
		}
	})
}

func durationLabel(job *models.JobDetail) string {
	if !job.IsTemporary() || job.DurationDays == 0 {
		return ""
	}
	return fmt.Sprintf("(%d days)", job.DurationDays.Int())
}

func runJobApprove(ctx context.Context, app *cli, args []string) error {
	if err := needArgs("job-approve", args, 1); err != nil {
		return err
	}
	if err := app.services.JobService.Approve(ctx, args[0]); err != nil {
		return err
	}
	return app.out.OK("Job approved")
}

func runJobStatus(ctx context.Context, app *cli, args []string) error {
	if err := needArgs("job-status", args, 2); err != nil {
		return err
	}
	form := dto.JobStatusForm{Status: args[1]}
	if err := app.services.JobService.SetStatus(ctx, args[0], &form); err != nil {
		return err
	}
	return app.out.OK("Status: " + models.JobStatus(form.Status).Label())
}

func runJobDelete(ctx context.Context, app *cli, args []string) error {
	if err := needArgs("job-delete", args, 1); err != nil {
		return err
	}
	if err := app.services.JobService.Delete(ctx, args[0]); err != nil {
		return err
	}
	return app.out.OK("Job deleted")
}

// =========================================================================
// Категории
// =========================================================================

func runCategories(ctx context.Context, app *cli, args []string) error {
	fs := newFlagSet("categories")
	q := fs.String("q", "", "search by name or slug")
	if _, err := parseFlags(fs, args); err != nil {
		return err
	}

	page, err := app.services.CategoryService.List(ctx, *q)
	if err != nil {
		return err
	}
	return app.out.Result(page, func() {
		if page.SetupRequired {
			app.out.Line("%s\n", page.Hint)
		}
		rows := make([][]string, 0, len(page.Rows))
		for _, row := range page.Rows {
			name, parent := row.Name, ""
			if row.IsChild {
				name, parent = "  ↳ "+row.Name, row.ParentName
			}
			active := "yes"
			if !row.Active() {
				active = "no"
			}
			rows = append(rows, []string{name, row.Slug, strconv.Itoa(row.Sort.Int()), active, parent, row.ID.String()})
		}
		app.out.Table([]string{"NAME", "SLUG", "SORT", "ACTIVE", "PARENT", "ID"}, rows)
	})
}

func runCategoryCreate(ctx context.Context, app *cli, args []string) error {
	fs := newFlagSet("category-create")
	name := fs.String("name", "", "category name")
	slug := fs.String("slug", "", "slug")
	sort := fs.String("sort", "0", "sort order")
	parent := fs.String("parent", "", "parent category id")
	inactive := fs.Bool("inactive", false, "create as inactive")
	if _, err := parseFlags(fs, args); err != nil {
		return err
	}

	form := dto.NewCategoryForm(*parent)
	form.Name = *name
	form.Slug = *slug
	form.Sort = *sort
	form.IsActive = !*inactive
	if err := app.services.CategoryService.Save(ctx, &form); err != nil {
		return err
	}
	return app.out.OK("Category created")
}

func runCategoryDelete(ctx context.Context, app *cli, args []string) error {
	if err := needArgs("category-delete", args, 1); err != nil {
		return err
	}
	if err := app.services.CategoryService.Delete(ctx, args[0]); err != nil {
		return err
	}
	return app.out.OK("Category deleted")
}

// =========================================================================
// Процессы и карта
// =========================================================================

func runEvents(ctx context.Context, app *cli, args []string) error {
	fs := newFlagSet("events")
	typ := fs.String("type", "", "event type")
	actor := fs.String("actor", "", "actor id")
	if _, err := parseFlags(fs, args); err != nil {
		return err
	}

	list, err := app.services.EventService.List(ctx, dto.EventFilter{Type: *typ, ActorID: *actor})
	if err != nil {
		return err
	}
	return app.out.Result(list, func() {
		if list.EventsSetupRequired {
			app.out.Line("%s\n", list.Hint)
		}
		rows := make([][]string, 0, len(list.Items))
		for _, e := range list.Items {
			rows = append(rows, []string{e.CreatedAt, e.Type, e.ActorID.String(), e.MetadataCompact()})
		}
		app.out.Table([]string{"CREATED", "TYPE", "ACTOR", "METADATA"}, rows)
	})
}

func runMapAreas(ctx context.Context, app *cli, args []string) error {
	fs := newFlagSet("map-areas")
	category := fs.String("category", "", "category name")
	if _, err := parseFlags(fs, args); err != nil {
		return err
	}

	view, err := app.services.MapService.Overview(ctx, dto.MapFilter{Category: strings.TrimSpace(*category)})
	if err != nil {
		return err
	}
	return app.out.Result(map[string]any{
		"category":  view.Category,
		"totalJobs": view.TotalJobs,
		"onMap":     len(view.Markers),
		"topAreas":  view.TopAreas,
	}, func() {
		app.out.Fields("Jobs", strconv.Itoa(view.TotalJobs), "On map", strconv.Itoa(len(view.Markers)))
		app.out.Line("")
		rows := make([][]string, 0, len(view.TopAreas))
		for _, a := range view.TopAreas {
			rows = append(rows, []string{a.Area, strconv.Itoa(a.Count)})
		}
		app.out.Table([]string{"AREA", "JOBS"}, rows)
	})
}

// =========================================================================
// Поддержка
// =========================================================================

func runTickets(ctx context.Context, app *cli, _ []string) error {
	tickets, err := app.services.SupportService.List(ctx)
	if err != nil {
		return err
	}
	return app.out.Result(tickets, func() {
		rows := make([][]string, 0, len(tickets))
		for _, t := range tickets {
			rows = append(rows, []string{t.ID.String(), t.Subject, t.RequesterName(), string(t.Status), t.CreatedAt})
		}
		app.out.Table([]string{"ID", "SUBJECT", "REQUESTER", "STATUS", "CREATED"}, rows)
	})
}

func runTicket(ctx context.Context, app *cli, args []string) error {
	if err := needArgs("ticket", args, 1); err != nil {
		return err
	}
	ticket, err := app.services.SupportService.Get(ctx, args[0])
	if err != nil {
		return err
	}
	return app.out.Result(ticket, func() {
		var email, phone string
		if ticket.Profiles != nil {
			email, phone = ticket.Profiles.Email, ticket.Profiles.Phone
		}
		app.out.Fields(
			"Subject", ticket.Subject,
			"Status", string(ticket.Status),
			"Requester", ticket.RequesterName(),
			"Email", email,
			"Phone", phone,
			"Created", ticket.CreatedAt,
		)
		app.out.Line("\n%s\n", ticket.Message)
		for _, m := range ticket.Thread() {
			who := "user"
			if m.IsAdmin {
				who = "admin"
			}
			app.out.Line("[%s %s] %s", who, m.CreatedAt, m.Message)
		}
	})
}

func runReply(ctx context.Context, app *cli, args []string) error {
	if err := needArgs("reply", args, 1); err != nil {
		return err
	}
	form := dto.ReplyForm{Message: strings.Join(args[1:], " ")}
	if err := app.services.SupportService.Reply(ctx, args[0], &form); err != nil {
		return err
	}
	return app.out.OK("Reply sent")
}

// =========================================================================
// Статические страницы
// =========================================================================

func runContent(ctx context.Context, app *cli, args []string) error {
	slug := ""
	if len(args) > 0 {
		slug = args[0]
	}
	page, err := app.services.ContentService.Load(ctx, slug)
	if err != nil {
		return err
	}
	return app.out.Result(page, func() {
		app.out.Fields("Title", page.Title)
		app.out.Line("\n%s", page.Body)
	})
}

func runContentSave(ctx context.Context, app *cli, args []string) error {
	fs := newFlagSet("content-save")
	title := fs.String("title", "", "page title")
	body := fs.String("body", "", "page body")
	bodyFile := fs.String("body-file", "", "read page body from file")
	rest, err := parseFlags(fs, args)
	if err != nil {
		return err
	}
	if err := needArgs("content-save", rest, 1); err != nil {
		return err
	}
	if *bodyFile != "" {
		raw, err := os.ReadFile(*bodyFile)
		if err != nil {
			return err
		}
		*body = string(raw)
	}

	form := dto.ContentForm{Slug: rest[0], Title: *title, Body: *body}
	if err := app.services.ContentService.Save(ctx, &form); err != nil {
		return err
	}
	return app.out.OK("Saved " + models.ContentSlugLabel(form.Slug))
}
