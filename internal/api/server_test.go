package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kintsugi-journal/kintsugi/internal/app/affirmation"
	"github.com/kintsugi-journal/kintsugi/internal/app/engagement"
	"github.com/kintsugi-journal/kintsugi/internal/infra/sqlite"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	db, err := sqlite.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	eng := engagement.NewService(db, time.UTC)
	aff := affirmation.NewService(eng.Store(), time.UTC)
	ts := httptest.NewServer(NewServer(eng, aff).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestVersionEndpoint(t *testing.T) {
	ts := testServer(t)

	resp, err := http.Get(ts.URL + "/api/version")
	if err != nil {
		t.Fatalf("GET version: %v", err)
	}
	var body map[string]string
	decodeBody(t, resp, &body)
	if body["version"] != Version {
		t.Errorf("version = %q, want %q", body["version"], Version)
	}
}

func TestHealthWithoutChecker(t *testing.T) {
	ts := testServer(t)

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("GET health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestAddEntryEndpoint(t *testing.T) {
	ts := testServer(t)

	resp := postJSON(t, ts.URL+"/api/journal/entries", map[string]interface{}{
		"accomplishment": "wired the dashboard",
		"category":       "work",
		"mood":           "good",
		"tags":           []string{"coding"},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var body struct {
		Entry struct {
			ID             string `json:"id"`
			Accomplishment string `json:"accomplishment"`
		} `json:"entry"`
		NewlyUnlocked []struct {
			ID string `json:"id"`
		} `json:"newly_unlocked"`
		UnlockedToast string `json:"unlocked_toast"`
	}
	decodeBody(t, resp, &body)

	if body.Entry.ID == "" {
		t.Error("entry id not assigned")
	}
	if len(body.NewlyUnlocked) == 0 || body.NewlyUnlocked[0].ID != "first-entry" {
		t.Errorf("newly_unlocked = %+v, want first-entry", body.NewlyUnlocked)
	}
	if body.UnlockedToast == "" {
		t.Error("no toast for first unlock")
	}
}

func TestAddEntryValidationErrors(t *testing.T) {
	ts := testServer(t)

	resp := postJSON(t, ts.URL+"/api/journal/entries", map[string]interface{}{})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("empty entry: status = %d, want 400", resp.StatusCode)
	}

	resp = postJSON(t, ts.URL+"/api/journal/entries", map[string]interface{}{
		"accomplishment": "x", "mood": "ecstatic",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad mood: status = %d, want 400", resp.StatusCode)
	}
}

func TestListEntries(t *testing.T) {
	ts := testServer(t)

	for _, acc := range []string{"one", "two"} {
		resp := postJSON(t, ts.URL+"/api/journal/entries", map[string]interface{}{"accomplishment": acc})
		resp.Body.Close()
	}

	resp, err := http.Get(ts.URL + "/api/journal/entries")
	if err != nil {
		t.Fatalf("GET entries: %v", err)
	}
	var body struct {
		Count int `json:"count"`
	}
	decodeBody(t, resp, &body)
	if body.Count != 2 {
		t.Errorf("count = %d, want 2", body.Count)
	}
}

func TestStreakAndSummaryEndpoints(t *testing.T) {
	ts := testServer(t)

	resp := postJSON(t, ts.URL+"/api/journal/entries", map[string]interface{}{"accomplishment": "kept the streak"})
	resp.Body.Close()

	resp, err := http.Get(ts.URL + "/api/engagement/streak")
	if err != nil {
		t.Fatalf("GET streak: %v", err)
	}
	var streak struct {
		CurrentStreak int  `json:"current_streak"`
		ActiveToday   bool `json:"active_today"`
	}
	decodeBody(t, resp, &streak)
	if streak.CurrentStreak != 1 || !streak.ActiveToday {
		t.Errorf("streak = %+v, want current 1 active today", streak)
	}

	resp, err = http.Get(ts.URL + "/api/engagement/summary")
	if err != nil {
		t.Fatalf("GET summary: %v", err)
	}
	var sum struct {
		EntryCount        int `json:"entry_count"`
		TotalAchievements int `json:"total_achievements"`
	}
	decodeBody(t, resp, &sum)
	if sum.EntryCount != 1 {
		t.Errorf("entry_count = %d, want 1", sum.EntryCount)
	}
	if sum.TotalAchievements != 40 {
		t.Errorf("total_achievements = %d, want 40", sum.TotalAchievements)
	}
}

func TestAchievementsEndpoint(t *testing.T) {
	ts := testServer(t)

	resp, err := http.Get(ts.URL + "/api/engagement/achievements")
	if err != nil {
		t.Fatalf("GET achievements: %v", err)
	}
	var body struct {
		Achievements []struct {
			ID       string `json:"id"`
			Unlocked bool   `json:"unlocked"`
			Target   int    `json:"target"`
		} `json:"achievements"`
		Total int `json:"total"`
	}
	decodeBody(t, resp, &body)
	if body.Total != 40 || len(body.Achievements) != 40 {
		t.Fatalf("total = %d, rows = %d, want 40", body.Total, len(body.Achievements))
	}
	for _, a := range body.Achievements {
		if a.Unlocked {
			t.Errorf("%q unlocked on a fresh state", a.ID)
		}
	}
}

func TestVisitEndpoint(t *testing.T) {
	ts := testServer(t)

	resp := postJSON(t, ts.URL+"/api/engagement/visit", nil)
	var body struct {
		VisitCount    int `json:"visit_count"`
		CurrentStreak int `json:"current_streak"`
	}
	decodeBody(t, resp, &body)
	if body.VisitCount != 1 || body.CurrentStreak != 1 {
		t.Errorf("visit = %+v, want count 1 streak 1", body)
	}
}

func TestInsightViewedWithoutBody(t *testing.T) {
	ts := testServer(t)

	// The body is optional on this endpoint.
	resp, err := http.Post(ts.URL+"/api/engagement/insights/viewed", "application/json", nil)
	if err != nil {
		t.Fatalf("POST insights/viewed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestProfilePutUnlocks(t *testing.T) {
	ts := testServer(t)

	req, err := http.NewRequest(http.MethodPut, ts.URL+"/api/profile",
		bytes.NewReader([]byte(`{"name":"Ada","avatar":"fox"}`)))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("PUT profile: %v", err)
	}
	var body struct {
		NewlyUnlocked []struct {
			ID string `json:"id"`
		} `json:"newly_unlocked"`
	}
	decodeBody(t, resp, &body)

	ids := make(map[string]bool)
	for _, a := range body.NewlyUnlocked {
		ids[a.ID] = true
	}
	if !ids["profile-name"] || !ids["new-look"] {
		t.Errorf("newly_unlocked = %+v, want profile-name and new-look", body.NewlyUnlocked)
	}
}

func TestAffirmationEndpoints(t *testing.T) {
	ts := testServer(t)

	resp, err := http.Get(ts.URL + "/api/affirmations/daily")
	if err != nil {
		t.Fatalf("GET daily: %v", err)
	}
	var daily struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	}
	decodeBody(t, resp, &daily)
	if daily.ID == "" || daily.Text == "" {
		t.Errorf("daily affirmation empty: %+v", daily)
	}

	resp = postJSON(t, ts.URL+"/api/affirmations/", map[string]string{"text": "I keep showing up."})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add custom: status = %d, want 201", resp.StatusCode)
	}
	var added struct {
		ID     string `json:"id"`
		Custom bool   `json:"custom"`
	}
	decodeBody(t, resp, &added)
	if !added.Custom {
		t.Error("added affirmation not marked custom")
	}

	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/api/affirmations/"+added.ID, nil)
	if err != nil {
		t.Fatal(err)
	}
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE affirmation: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("delete: status = %d, want 200", resp.StatusCode)
	}
}

func TestMetricsGated(t *testing.T) {
	ts := testServer(t)

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET metrics: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("metrics without EnableMetrics: status = %d, want 404", resp.StatusCode)
	}
}

func TestCORSPreflight(t *testing.T) {
	ts := testServer(t)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/api/version", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("OPTIONS: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("preflight status = %d, want 200", resp.StatusCode)
	}
	if resp.Header.Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing CORS allow-origin header")
	}
}
