package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLoginReturnsSession(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/login/" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		var in map[string]string
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Errorf("decode login body: %v", err)
		}
		if in["username"] != "sam" || in["password"] != "hunter2" {
			t.Errorf("unexpected credentials: %+v", in)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"abc123","user_id":7,"username":"sam"}`))
	}))
	defer ts.Close()

	c := New(ts.URL, "")
	sess, err := c.Login(context.Background(), "sam", "hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if sess.Token != "abc123" || sess.Username != "sam" || sess.UserID != 7 {
		t.Fatalf("unexpected session: %+v", sess)
	}
}

func TestTokenHeaderAttachedWhenPresent(t *testing.T) {
	t.Parallel()

	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"daily_stats":[],"streak":0}`))
	}))
	defer ts.Close()

	c := New(ts.URL, "tok-1")
	if _, err := c.WeeklyStats(context.Background()); err != nil {
		t.Fatalf("weekly stats: %v", err)
	}
	if gotAuth != "Token tok-1" {
		t.Fatalf("authorization header = %q", gotAuth)
	}

	c = New(ts.URL, "")
	if _, err := c.WeeklyStats(context.Background()); err != nil {
		t.Fatalf("weekly stats without token: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("expected no authorization header, got %q", gotAuth)
	}
}

func TestUnauthorizedMapsToSentinel(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Invalid token."}`))
	}))
	defer ts.Close()

	c := New(ts.URL, "stale")
	_, err := c.FoodLogs(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Message != "Invalid token." {
		t.Fatalf("expected server message, got %v", err)
	}
}

func TestMissingProfileMapsToErrNoProfile(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Profile not found"}`))
	}))
	defer ts.Close()

	c := New(ts.URL, "tok")
	if _, err := c.DashboardSummary(context.Background()); !errors.Is(err, ErrNoProfile) {
		t.Fatalf("dashboard: expected ErrNoProfile, got %v", err)
	}
	if _, err := c.GetProfile(context.Background()); !errors.Is(err, ErrNoProfile) {
		t.Fatalf("profile: expected ErrNoProfile, got %v", err)
	}
}

func TestPartialProfileUpdateOmitsUnsetFields(t *testing.T) {
	t.Parallel()

	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode update body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"reminders_enabled":true}`))
	}))
	defer ts.Close()

	enabled := true
	c := New(ts.URL, "tok")
	if _, err := c.UpdateProfile(context.Background(), ProfileUpdate{RemindersEnabled: &enabled}); err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected single field payload, got %v", got)
	}
	if got["reminders_enabled"] != true {
		t.Fatalf("reminders_enabled not sent: %v", got)
	}
}

func TestSearchFoodParsesEstimate(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
  "food_name": "grilled chicken breast",
  "estimated_calories": 165,
  "protein_g": 31.0,
  "carbs_g": 0.0,
  "fats_g": 3.6
}`))
	}))
	defer ts.Close()

	c := New(ts.URL, "tok")
	est, err := c.SearchFood(context.Background(), "chicken breast")
	if err != nil {
		t.Fatalf("search food: %v", err)
	}
	if est.FoodName != "grilled chicken breast" || est.EstimatedCalories != 165 || est.ProteinG != 31 {
		t.Fatalf("unexpected estimate: %+v", est)
	}

	if _, err := c.SearchFood(context.Background(), "   "); err == nil {
		t.Fatalf("expected error for empty query")
	}
}

func TestDeleteRoundTrip(t *testing.T) {
	t.Parallel()

	logs := []string{`{"id":1,"food_name":"oats","meal_type":"Breakfast","calories":300,"protein":10,"carbs":50,"fats":6}`}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/log-food/":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("[" + joinLogs(logs) + "]"))
		case r.Method == http.MethodDelete && r.URL.Path == "/api/log-food/1/":
			logs = nil
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer ts.Close()

	c := New(ts.URL, "tok")
	before, err := c.FoodLogs(context.Background())
	if err != nil {
		t.Fatalf("list before delete: %v", err)
	}
	if len(before) != 1 || before[0].ID != 1 {
		t.Fatalf("unexpected initial list: %+v", before)
	}
	if err := c.DeleteFoodLog(context.Background(), 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	after, err := c.FoodLogs(context.Background())
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(after) != 0 {
		t.Fatalf("log still present after delete: %+v", after)
	}
}

func TestMonthlyReportPDFReturnsRawBytes(t *testing.T) {
	t.Parallel()

	pdf := []byte("%PDF-1.4 fake report")
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/monthly-report-pdf/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(pdf)
	}))
	defer ts.Close()

	c := New(ts.URL, "tok")
	got, err := c.MonthlyReportPDF(context.Background())
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if string(got) != string(pdf) {
		t.Fatalf("payload altered: %q", got)
	}
}

func TestDecodeErrorSurfacesAtBoundary(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"target_calories": "not a number"}`))
	}))
	defer ts.Close()

	c := New(ts.URL, "tok")
	if _, err := c.DashboardSummary(context.Background()); err == nil {
		t.Fatalf("expected decode error for malformed payload")
	}
}

func joinLogs(logs []string) string {
	out := ""
	for i, l := range logs {
		if i > 0 {
			out += ","
		}
		out += l
	}
	return out
}
