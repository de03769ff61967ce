package fitguide

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
)

func runCmd(t *testing.T, serverURL, dbPath string, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(append([]string{"--api-url", serverURL, "--state", dbPath}, args...))
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootHelp(t *testing.T) {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--help"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute root help: %v", err)
	}
	for _, want := range []string{"dashboard", "food", "water", "weight", "activity", "sleep", "weekly", "monthly", "remind"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("help output missing %q:\n%s", want, buf.String())
		}
	}
}

func TestLoginLogoutLifecycle(t *testing.T) {
	var loggedOut bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/login/":
			json.NewEncoder(w).Encode(map[string]any{"token": "tok-1", "user_id": 7, "username": "dana"})
		case "/api/logout/":
			if r.Header.Get("Authorization") != "Token tok-1" {
				t.Errorf("logout missing token header, got %q", r.Header.Get("Authorization"))
			}
			loggedOut = true
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{}`))
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()
	dbPath := filepath.Join(t.TempDir(), "state.db")

	out, err := runCmd(t, srv.URL, dbPath, "login", "--username", "dana", "--password", "hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !strings.Contains(out, "Logged in as dana") {
		t.Fatalf("unexpected login output: %s", out)
	}

	out, err = runCmd(t, srv.URL, dbPath, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "username=dana") {
		t.Fatalf("expected stored username, got: %s", out)
	}
	if strings.Contains(out, "tok-1") {
		t.Fatalf("token must be redacted in config show: %s", out)
	}

	if _, err := runCmd(t, srv.URL, dbPath, "logout"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if !loggedOut {
		t.Fatalf("expected server-side logout call")
	}

	_, err = runCmd(t, srv.URL, dbPath, "food", "list")
	if err == nil || !strings.Contains(err.Error(), "not logged in") {
		t.Fatalf("expected not-logged-in error after logout, got %v", err)
	}
}

func TestProtectedCommandRequiresLogin(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "state.db")
	_, err := runCmd(t, "http://localhost:1", dbPath, "dashboard")
	if err == nil || !strings.Contains(err.Error(), "fitguide login") {
		t.Fatalf("expected login hint, got %v", err)
	}
}

func seedSession(t *testing.T, srvURL, dbPath string) {
	t.Helper()
	if _, err := runCmd(t, srvURL, dbPath, "login", "--username", "dana", "--password", "pw"); err != nil {
		t.Fatalf("seed login: %v", err)
	}
}

// loginAware wraps a handler with the login endpoint tests use to seed a
// session.
func loginAware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/login/" {
			json.NewEncoder(w).Encode(map[string]any{"token": "tok-1", "user_id": 7, "username": "dana"})
			return
		}
		next(w, r)
	}
}

func TestWaterAddDefaultsToOneGlass(t *testing.T) {
	srv := httptest.NewServer(loginAware(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/water/" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var body map[string]int
		json.NewDecoder(r.Body).Decode(&body)
		if body["amount_ml"] != 250 {
			t.Errorf("expected default 250 ml, got %d", body["amount_ml"])
		}
		json.NewEncoder(w).Encode(map[string]any{"id": 3, "amount_ml": body["amount_ml"]})
	}))
	defer srv.Close()
	dbPath := filepath.Join(t.TempDir(), "state.db")
	seedSession(t, srv.URL, dbPath)

	out, err := runCmd(t, srv.URL, dbPath, "water", "add")
	if err != nil {
		t.Fatalf("water add: %v", err)
	}
	if !strings.Contains(out, "250 ml") {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestDashboardRendersProgressAndClampsRemaining(t *testing.T) {
	srv := httptest.NewServer(loginAware(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/dashboard-summary/" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"target_calories":    2000.0,
			"consumed_calories":  2500,
			"remaining_calories": -500.0,
			"macros":             map[string]float64{"protein": 120, "carbs": 260, "fats": 80},
			"recent_logs": []map[string]any{
				{"id": 1, "food_name": "Oatmeal", "meal_type": "Breakfast", "calories": 350, "protein": 12.0, "carbs": 60.0, "fats": 6.0},
			},
		})
	}))
	defer srv.Close()
	dbPath := filepath.Join(t.TempDir(), "state.db")
	seedSession(t, srv.URL, dbPath)

	out, err := runCmd(t, srv.URL, dbPath, "dashboard")
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if !strings.Contains(out, "(100%)") {
		t.Fatalf("expected percent capped at 100: %s", out)
	}
	if !strings.Contains(out, "Remaining: 0 kcal") {
		t.Fatalf("expected remaining clamped at zero: %s", out)
	}
	if !strings.Contains(out, "Oatmeal") {
		t.Fatalf("expected recent log rendered: %s", out)
	}
}

func TestDashboardNoProfileHint(t *testing.T) {
	srv := httptest.NewServer(loginAware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "Profile not found"}`))
	}))
	defer srv.Close()
	dbPath := filepath.Join(t.TempDir(), "state.db")
	seedSession(t, srv.URL, dbPath)

	_, err := runCmd(t, srv.URL, dbPath, "dashboard")
	if err == nil || !strings.Contains(err.Error(), "profile setup") {
		t.Fatalf("expected profile setup hint, got %v", err)
	}
}

func TestRemindersToggleRevertsOnServerError(t *testing.T) {
	var fail bool
	srv := httptest.NewServer(loginAware(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/update-profile/" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error": "nope"}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"username": "dana", "reminders_enabled": true})
	}))
	defer srv.Close()
	dbPath := filepath.Join(t.TempDir(), "state.db")
	seedSession(t, srv.URL, dbPath)

	if _, err := runCmd(t, srv.URL, dbPath, "profile", "reminders", "on"); err != nil {
		t.Fatalf("reminders on: %v", err)
	}
	out, err := runCmd(t, srv.URL, dbPath, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "reminders_enabled=true") {
		t.Fatalf("expected local flag set, got: %s", out)
	}

	fail = true
	if _, err := runCmd(t, srv.URL, dbPath, "profile", "reminders", "off"); err == nil {
		t.Fatalf("expected toggle failure")
	}
	out, err = runCmd(t, srv.URL, dbPath, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "reminders_enabled=true") {
		t.Fatalf("expected local flag reverted to true, got: %s", out)
	}
}

func TestThemeGetAndSet(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "state.db")

	out, err := runCmd(t, "http://localhost:1", dbPath, "config", "theme")
	if err != nil {
		t.Fatalf("theme get: %v", err)
	}
	if strings.TrimSpace(out) != "light" {
		t.Fatalf("expected default theme light, got %q", out)
	}

	if _, err := runCmd(t, "http://localhost:1", dbPath, "config", "theme", "dark"); err != nil {
		t.Fatalf("theme set: %v", err)
	}
	out, err = runCmd(t, "http://localhost:1", dbPath, "config", "theme")
	if err != nil {
		t.Fatalf("theme get: %v", err)
	}
	if strings.TrimSpace(out) != "dark" {
		t.Fatalf("expected theme dark, got %q", out)
	}
}

func TestFoodDeleteRequiresConfirmation(t *testing.T) {
	var deleted bool
	srv := httptest.NewServer(loginAware(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete && r.URL.Path == "/api/log-food/9/" {
			deleted = true
			w.WriteHeader(http.StatusNoContent)
			return
		}
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()
	dbPath := filepath.Join(t.TempDir(), "state.db")
	seedSession(t, srv.URL, dbPath)

	rootCmd.SetIn(strings.NewReader("n\n"))
	out, err := runCmd(t, srv.URL, dbPath, "food", "delete", "9")
	if err != nil {
		t.Fatalf("food delete (declined): %v", err)
	}
	if deleted {
		t.Fatalf("delete must not fire when declined")
	}
	if !strings.Contains(out, "Cancelled") {
		t.Fatalf("expected cancellation notice, got: %s", out)
	}

	if _, err := runCmd(t, srv.URL, dbPath, "food", "delete", "9", "--yes"); err != nil {
		t.Fatalf("food delete --yes: %v", err)
	}
	if !deleted {
		t.Fatalf("expected delete request with --yes")
	}
}
