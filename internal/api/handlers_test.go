package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"example.com/extracurricular/internal/domain"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	NewHandler(domain.NewService()).RegisterRoutes(mux)
	return mux
}

func do(t *testing.T, mux *http.ServeMux, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

type messageBody struct {
	Message string `json:"message"`
}

type errorBody struct {
	Detail string `json:"detail"`
}

func decodeInto(t *testing.T, rr *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", rr.Body.String(), err)
	}
}

func TestRootRedirectsToStaticIndex(t *testing.T) {
	rr := do(t, newTestMux(t), http.MethodGet, "/")

	if rr.Code != http.StatusTemporaryRedirect {
		t.Fatalf("expected 307 got %d", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/static/index.html" {
		t.Fatalf("unexpected redirect target %q", loc)
	}
}

func TestListActivities(t *testing.T) {
	rr := do(t, newTestMux(t), http.MethodGet, "/activities")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}

	var activities map[string]domain.Activity
	decodeInto(t, rr, &activities)

	if len(activities) != 10 {
		t.Fatalf("expected 10 activities got %d", len(activities))
	}
	chess, ok := activities["Chess Club"]
	if !ok {
		t.Fatalf("Chess Club missing from listing")
	}
	if chess.MaxParticipants != 12 {
		t.Fatalf("expected max 12 got %d", chess.MaxParticipants)
	}
	if len(chess.Participants) != 2 || chess.Participants[0] != "michael@mergington.edu" {
		t.Fatalf("unexpected roster %v", chess.Participants)
	}
}

func TestSignupThenDuplicate(t *testing.T) {
	mux := newTestMux(t)

	rr := do(t, mux, http.MethodPost, "/activities/Chess%20Club/signup?email=new@x.edu")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}
	var msg messageBody
	decodeInto(t, rr, &msg)
	if msg.Message != "Signed up new@x.edu for Chess Club" {
		t.Fatalf("unexpected message %q", msg.Message)
	}

	rr = do(t, mux, http.MethodPost, "/activities/Chess%20Club/signup?email=new@x.edu")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
	var detail errorBody
	decodeInto(t, rr, &detail)
	if detail.Detail != "Student already signed up" {
		t.Fatalf("unexpected detail %q", detail.Detail)
	}

	rr = do(t, mux, http.MethodGet, "/activities")
	var activities map[string]domain.Activity
	decodeInto(t, rr, &activities)
	if got := len(activities["Chess Club"].Participants); got != 3 {
		t.Fatalf("expected roster of 3 got %d", got)
	}
}

func TestSignupMissingEmail(t *testing.T) {
	rr := do(t, newTestMux(t), http.MethodPost, "/activities/Chess%20Club/signup")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
	var detail errorBody
	decodeInto(t, rr, &detail)
	if detail.Detail != "Email is required" {
		t.Fatalf("unexpected detail %q", detail.Detail)
	}
}

func TestSignupUnknownActivity(t *testing.T) {
	rr := do(t, newTestMux(t), http.MethodPost, "/activities/Knitting%20Circle/signup?email=new@x.edu")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rr.Code)
	}
	var detail errorBody
	decodeInto(t, rr, &detail)
	if detail.Detail != "Activity not found" {
		t.Fatalf("unexpected detail %q", detail.Detail)
	}
}

func TestSignupCapacityReached(t *testing.T) {
	mux := newTestMux(t)

	// Robotics Workshop is seeded with 4 of 5 seats taken.
	rr := do(t, mux, http.MethodPost, "/activities/Robotics%20Workshop/signup?email=eve@mergington.edu")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	rr = do(t, mux, http.MethodPost, "/activities/Robotics%20Workshop/signup?email=frank@mergington.edu")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
	var detail errorBody
	decodeInto(t, rr, &detail)
	if !strings.Contains(strings.ToLower(detail.Detail), "full") {
		t.Fatalf("expected capacity detail got %q", detail.Detail)
	}

	rr = do(t, mux, http.MethodGet, "/activities")
	var activities map[string]domain.Activity
	decodeInto(t, rr, &activities)
	if got := len(activities["Robotics Workshop"].Participants); got != 5 {
		t.Fatalf("expected roster of 5 got %d", got)
	}
}

func TestRemoveParticipantTwice(t *testing.T) {
	mux := newTestMux(t)

	rr := do(t, mux, http.MethodDelete, "/activities/Chess%20Club/participants/michael@mergington.edu")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}
	var msg messageBody
	decodeInto(t, rr, &msg)
	if msg.Message != "Removed michael@mergington.edu from Chess Club" {
		t.Fatalf("unexpected message %q", msg.Message)
	}

	rr = do(t, mux, http.MethodDelete, "/activities/Chess%20Club/participants/michael@mergington.edu")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rr.Code)
	}
	var detail errorBody
	decodeInto(t, rr, &detail)
	if detail.Detail != "Participant not found" {
		t.Fatalf("unexpected detail %q", detail.Detail)
	}
}

func TestRemoveFromUnknownActivity(t *testing.T) {
	rr := do(t, newTestMux(t), http.MethodDelete, "/activities/Knitting%20Circle/participants/x@y.edu")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rr.Code)
	}
	var detail errorBody
	decodeInto(t, rr, &detail)
	if detail.Detail != "Activity not found" {
		t.Fatalf("unexpected detail %q", detail.Detail)
	}
}

func TestMyActivitiesRequiresEmail(t *testing.T) {
	rr := do(t, newTestMux(t), http.MethodGet, "/my-activities")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
	var detail errorBody
	decodeInto(t, rr, &detail)
	if detail.Detail != "Email is required" {
		t.Fatalf("unexpected detail %q", detail.Detail)
	}
}

func TestMyActivitiesTracksMembership(t *testing.T) {
	mux := newTestMux(t)

	rr := do(t, mux, http.MethodGet, "/my-activities?email=daniel@mergington.edu")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}
	var mine map[string]domain.Activity
	decodeInto(t, rr, &mine)
	if len(mine) != 1 {
		t.Fatalf("expected 1 registration got %d", len(mine))
	}
	if _, ok := mine["Chess Club"]; !ok {
		t.Fatalf("expected Chess Club in %v", mine)
	}

	do(t, mux, http.MethodPost, "/activities/Art%20Studio/signup?email=daniel@mergington.edu")
	do(t, mux, http.MethodDelete, "/activities/Chess%20Club/participants/daniel@mergington.edu")

	rr = do(t, mux, http.MethodGet, "/my-activities?email=daniel@mergington.edu")
	mine = nil
	decodeInto(t, rr, &mine)
	if len(mine) != 1 {
		t.Fatalf("expected 1 registration got %d", len(mine))
	}
	if _, ok := mine["Art Studio"]; !ok {
		t.Fatalf("expected Art Studio in %v", mine)
	}
}

func TestMyActivitiesEmptyResult(t *testing.T) {
	rr := do(t, newTestMux(t), http.MethodGet, "/my-activities?email=stranger@x.edu")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	var mine map[string]domain.Activity
	decodeInto(t, rr, &mine)
	if len(mine) != 0 {
		t.Fatalf("expected empty mapping got %v", mine)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newTestMux(t)

	if rr := do(t, mux, http.MethodDelete, "/activities"); rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 got %d", rr.Code)
	}
	if rr := do(t, mux, http.MethodGet, "/activities/Chess%20Club/signup"); rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 got %d", rr.Code)
	}
	if rr := do(t, mux, http.MethodPost, "/my-activities?email=x@y.edu"); rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 got %d", rr.Code)
	}
}

func TestHealthz(t *testing.T) {
	rr := do(t, newTestMux(t), http.MethodGet, "/healthz")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	if rr.Body.String() != "ok" {
		t.Fatalf("unexpected body %q", rr.Body.String())
	}
}
