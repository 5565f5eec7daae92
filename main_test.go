package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"workhours/internal/platform/config"
)

// sqliteEnv points the app at a fresh sqlite file through the environment.
func sqliteEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.EnvDatabaseURL, filepath.Join(dir, "hours.db"))
	t.Setenv(config.EnvMongoURI, "")
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := SetupCommands()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "absent.yaml")))
	err := root.Execute()
	return out.String(), err
}

func TestLogAndSummaryCommands(t *testing.T) {
	dir := sqliteEnv(t)

	out, err := run(t, "log", "2024-03-04", "08:00", "17:00", "--site", "Kantoor")
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if !strings.Contains(out, "logged 2024-03-04: 08:00-17:00, 8.60 hours") {
		t.Fatalf("log output = %q", out)
	}

	out, err = run(t, "log", "2024-03-04", "09:00", "17:00")
	if err != nil {
		t.Fatalf("second log: %v", err)
	}
	if !strings.HasPrefix(out, "updated 2024-03-04") {
		t.Fatalf("second log output = %q", out)
	}

	xlsx := filepath.Join(dir, "week.xlsx")
	out, err = run(t, "summary", "--date", "2024-03-06", "--export", xlsx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	for _, want := range []string{"2024-W10 (2024-03-04 .. 2024-03-10)", "7.60", "Total:", "overtime -32.40"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary output missing %q:\n%s", want, out)
		}
	}

	f, err := excelize.OpenFile(xlsx)
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer f.Close()
	if sheets := f.GetSheetList(); len(sheets) == 0 || sheets[0] != "2024-W10" {
		t.Fatalf("sheets = %v", sheets)
	}
}

func TestLogCommandRejectsBadInput(t *testing.T) {
	sqliteEnv(t)

	if _, err := run(t, "log", "04-03-2024", "08:00", "17:00"); err == nil {
		t.Fatal("expected date validation error")
	}
	if _, err := run(t, "log", "2024-03-04"); err == nil {
		t.Fatal("expected argument count error")
	}
}

func TestMissingConnectionStringIsFatal(t *testing.T) {
	t.Setenv(config.EnvDatabaseURL, "")
	t.Setenv(config.EnvMongoURI, "")

	_, err := run(t, "migrate")
	if !errors.Is(err, config.ErrNoConnectionString) {
		t.Fatalf("err = %v, want ErrNoConnectionString", err)
	}
}

func TestMigrateCommand(t *testing.T) {
	sqliteEnv(t)

	out, err := run(t, "migrate")
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if !strings.HasPrefix(out, "schema up to date") {
		t.Fatalf("output = %q", out)
	}
}

func TestTargetsFromRejectsUnknownPolicy(t *testing.T) {
	h := config.Default().Hours
	h.MonthPolicy = "yearly"
	if _, err := targetsFrom(h); err == nil {
		t.Fatal("expected error")
	}
}

func TestRouter(t *testing.T) {
	sqliteEnv(t)
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	a, err := NewApp(context.Background(), cfg)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	t.Cleanup(a.Close)
	r, err := a.Router()
	if err != nil {
		t.Fatalf("router: %v", err)
	}

	cases := []struct {
		path   string
		status int
		body   string
	}{
		{"/healthz", http.StatusOK, "ok"},
		{"/api/workdays", http.StatusOK, "[]"},
		{"/api/sites", http.StatusOK, "[]"},
		{"/api/nope", http.StatusNotFound, `"message":"Not found"`},
		{"/swagger/doc.json", http.StatusOK, "Workhours API"},
		{"/", http.StatusOK, "Uren invoeren"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if w.Code != tc.status {
			t.Errorf("%s: status = %d, want %d", tc.path, w.Code, tc.status)
		}
		if !strings.Contains(w.Body.String(), tc.body) {
			t.Errorf("%s: body %q missing %q", tc.path, w.Body.String(), tc.body)
		}
	}
}

func TestPrintTablePadsColumns(t *testing.T) {
	var buf bytes.Buffer
	printTable(&buf, []string{"A", "B"}, [][]string{{"long", "x"}}, []string{"", "tot"})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %q", lines)
	}
	if lines[0] != "A     B    " {
		t.Fatalf("header = %q", lines[0])
	}
}

func TestSummaryExportFormatFollowsExtension(t *testing.T) {
	dir := sqliteEnv(t)
	if _, err := run(t, "log", "2024-03-04", "08:00", "17:00"); err != nil {
		t.Fatalf("log: %v", err)
	}

	csvPath := filepath.Join(dir, "week.csv")
	if _, err := run(t, "summary", "--date", "2024-03-04", "--export", csvPath); err != nil {
		t.Fatalf("summary: %v", err)
	}
	raw, err := os.ReadFile(csvPath)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.HasPrefix(string(raw), "\ufeffDatum;") || !strings.Contains(string(raw), ";8,6;") {
		t.Fatalf("csv = %q", raw)
	}

	if _, err := run(t, "summary", "--export", filepath.Join(dir, "week.pdf")); err == nil {
		t.Fatal("expected unsupported export format error")
	}
}
