package main

import (
	"bytes"
	"context"
	"flag"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"testing"

	"asimos_admin/internal/config"
	"asimos_admin/internal/logger"
	"asimos_admin/pkg/apperrors"
	"asimos_admin/test/helpers"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCLI struct {
	app     *cli
	out     *bytes.Buffer
	backend *helpers.FakeBackend
}

func newTestCLI(t *testing.T, output string) *testCLI {
	t.Helper()
	logger.InitWithWriter("test", io.Discard, "error")

	fb := helpers.NewFakeBackend(t)
	cfg := config.Default()
	cfg.API.BaseURL = fb.URL()
	cfg.API.Retries = 0
	cfg.CLI.TokenFile = filepath.Join(t.TempDir(), "asimos", "token.json")

	var out bytes.Buffer
	app, err := newCLI(cfg, output, &out)
	require.NoError(t, err)
	return &testCLI{app: app, out: &out, backend: fb}
}

func (tc *testCLI) run(t *testing.T, args ...string) error {
	t.Helper()
	tc.out.Reset()
	cmd, ok := commands[args[0]]
	require.True(t, ok, "unknown command %s", args[0])
	return cmd.run(context.Background(), tc.app, args[1:])
}

func (tc *testCLI) login(t *testing.T) {
	t.Helper()
	require.NoError(t, tc.run(t, "login", "-email", helpers.AdminEmail, "-password", helpers.AdminPassword))
}

func assertStatus(t *testing.T, err error, status int) {
	t.Helper()
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "not an AppError: %v", err)
	assert.Equal(t, status, appErr.HTTPCode)
}

func TestParseFlags(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	role := fs.String("role", "", "")
	rest, err := parseFlags(fs, []string{"u-1", "-role", "employer", "extra"})
	require.NoError(t, err)
	assert.Equal(t, []string{"u-1", "extra"}, rest)
	assert.Equal(t, "employer", *role)

	fs = flag.NewFlagSet("y", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	_, err = parseFlags(fs, []string{"-unknown"})
	assert.Error(t, err)
}

func TestJoinNonEmpty(t *testing.T) {
	assert.Equal(t, "a, c", joinNonEmpty(", ", "a", " ", "c"))
	assert.Empty(t, joinNonEmpty(", "))
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := newPrinter(&buf, false)
	p.Table([]string{"ID", "NAME"}, [][]string{{"u-1", "Aysel\nMəmmədova"}, {"u-22", ""}})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ID    NAME", strings.TrimRight(lines[0], " "))
	assert.Equal(t, "u-1   Aysel Məmmədova", strings.TrimRight(lines[1], " "))
	assert.Equal(t, "u-22  -", strings.TrimRight(lines[2], " "))

	buf.Reset()
	p = newPrinter(&buf, true)
	require.NoError(t, p.OK("done"))
	assert.JSONEq(t, `{"ok":true,"message":"done"}`, buf.String())
}

func TestSessionCommands(t *testing.T) {
	tc := newTestCLI(t, "text")

	t.Run("Whoami without token", func(t *testing.T) {
		err := tc.run(t, "whoami")
		require.Error(t, err)
		assert.True(t, apperrors.IsUnauthorized(err))
	})

	t.Run("Login stores token", func(t *testing.T) {
		tc.login(t)
		assert.Contains(t, tc.out.String(), "Logged in")
		assert.Equal(t, helpers.AdminToken, tc.app.store.Token())
	})

	t.Run("Wrong password", func(t *testing.T) {
		err := tc.run(t, "login", "-email", helpers.AdminEmail, "-password", "nope")
		require.Error(t, err)
		assert.True(t, apperrors.IsUnauthorized(err))
	})

	t.Run("Whoami with opaque token", func(t *testing.T) {
		require.NoError(t, tc.run(t, "whoami"))
		assert.Contains(t, tc.out.String(), "never")
		assert.Contains(t, tc.out.String(), tc.backend.URL())
	})

	t.Run("Logout removes token", func(t *testing.T) {
		require.NoError(t, tc.run(t, "logout"))
		assert.Empty(t, tc.app.store.Token())
		require.NoError(t, tc.run(t, "logout"))
	})
}

func TestUserCommands(t *testing.T) {
	tc := newTestCLI(t, "text")
	tc.backend.SeedUsers()
	tc.login(t)

	t.Run("List", func(t *testing.T) {
		require.NoError(t, tc.run(t, "users", "-role", "employer"))
		assert.Contains(t, tc.out.String(), "Kamran Əliyev")
		assert.Equal(t, "employer", tc.backend.LastRequest(t, http.MethodGet, "/admin/users").Query.Get("role"))
	})

	t.Run("Update keeps fields that were not passed", func(t *testing.T) {
		require.NoError(t, tc.run(t, "user-update", "u-2", "-phone", "+994500000000"))
		body := tc.backend.LastRequest(t, http.MethodPatch, "/admin/users/u-2").JSON(t)
		assert.Equal(t, "employer", body["role"])
		assert.Equal(t, "Kamran Əliyev", body["full_name"])
		assert.Equal(t, "Kamran MMC", body["company_name"])
		assert.Equal(t, "+994500000000", body["phone"])
	})

	t.Run("Update with id after flags clears explicit empty company", func(t *testing.T) {
		require.NoError(t, tc.run(t, "user-update", "-full-name", "Kamran", "-company", "", "u-2"))
		body := tc.backend.LastRequest(t, http.MethodPatch, "/admin/users/u-2").JSON(t)
		assert.Equal(t, "Kamran", body["full_name"])
		assert.Equal(t, "employer", body["role"])
		assert.Contains(t, body, "company_name")
		assert.Nil(t, body["company_name"])
	})

	t.Run("Update needs id", func(t *testing.T) {
		err := tc.run(t, "user-update", "-role", "seeker")
		assert.ErrorContains(t, err, "usage: asimosctl user-update")
	})

	t.Run("Update of unknown user", func(t *testing.T) {
		before := len(tc.backend.Requests())
		err := tc.run(t, "user-update", "missing", "-role", "seeker")
		assertStatus(t, err, http.StatusNotFound)
		for _, r := range tc.backend.Requests()[before:] {
			assert.NotEqual(t, http.MethodPatch, r.Method)
		}
	})

	t.Run("Invalid status is rejected locally", func(t *testing.T) {
		before := len(tc.backend.RequestsTo(http.MethodPatch, "/admin/users/u-4"))
		err := tc.run(t, "user-status", "u-4", "banned")
		require.Error(t, err)
		assert.Len(t, tc.backend.RequestsTo(http.MethodPatch, "/admin/users/u-4"), before)
	})

	t.Run("Status", func(t *testing.T) {
		require.NoError(t, tc.run(t, "user-status", "u-4", "active"))
		body := tc.backend.LastRequest(t, http.MethodPatch, "/admin/users/u-4").JSON(t)
		assert.Equal(t, map[string]any{"status": "active"}, body)
	})
}

func TestJobCommands_JSON(t *testing.T) {
	tc := newTestCLI(t, "json")
	tc.backend.SeedJobs()
	tc.login(t)

	require.NoError(t, tc.run(t, "jobs"))
	var jobs []map[string]any
	require.NoError(t, json.Unmarshal(tc.out.Bytes(), &jobs))
	assert.Len(t, jobs, 4)

	require.NoError(t, tc.run(t, "job-approve", "job-b"))
	body := tc.backend.LastRequest(t, http.MethodPatch, "/admin/jobs/job-b").JSON(t)
	assert.Equal(t, "open", body["status"])
	assert.Contains(t, tc.out.String(), `"ok": true`)

	err := tc.run(t, "job", "missing")
	require.Error(t, err)
	assertStatus(t, err, http.StatusNotFound)
}

func TestSupportAndContentCommands(t *testing.T) {
	tc := newTestCLI(t, "text")
	tc.backend.SeedTickets()
	tc.backend.SeedContent()
	tc.login(t)

	require.NoError(t, tc.run(t, "ticket", "t-2"))
	assert.Contains(t, tc.out.String(), "[admin 2026-10-04T08:00:00Z] Salam, baxırıq")

	require.NoError(t, tc.run(t, "reply", "t-1", "Yoxlayırıq,", "gözləyin"))
	body := tc.backend.LastRequest(t, http.MethodPost, "/admin/support/t-1/reply").JSON(t)
	assert.Equal(t, "Yoxlayırıq, gözləyin", body["message"])

	require.Error(t, tc.run(t, "reply", "t-1"))

	require.NoError(t, tc.run(t, "content"))
	assert.Contains(t, tc.out.String(), "Qaydalar mətni")

	require.NoError(t, tc.run(t, "content-save", "privacy", "-title", "Məxfilik", "-body", "Mətn"))
	saved := tc.backend.LastRequest(t, http.MethodPut, "/admin/content/privacy").JSON(t)
	assert.Equal(t, "Məxfilik", saved["title"])

	err := tc.run(t, "content", "faq")
	require.Error(t, err)
	assertStatus(t, err, http.StatusNotFound)
}
