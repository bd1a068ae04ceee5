package api_test

import (
	"encoding/json"
	"net/http"
	"reflect"
	"testing"
)

func TestLegacyPortfolioRoundTrip(t *testing.T) {
	srv, cleanup := setupServer(t)
	defer cleanup()

	in := map[string]any{
		"name":  "Sam Mercer",
		"title": "Engineer",
		"projects": []any{
			map[string]any{"name": "craft", "tech": []any{"Go"}},
		},
	}

	// save answers 200 and echoes the blob unchanged inside the envelope
	res := doJSON(t, http.MethodPost, srv.URL+"/api/portfolio", in)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("save: expected 200 got %d", res.StatusCode)
	}
	env := decodeEnvelope(t, res)
	if !env.Success {
		t.Fatalf("expected success envelope")
	}
	var echoed map[string]any
	if err := json.Unmarshal(env.Data, &echoed); err != nil {
		t.Fatalf("decode echoed blob: %v", err)
	}
	if !reflect.DeepEqual(echoed, in) {
		t.Fatalf("save must echo the input unchanged:\nin:  %#v\nout: %#v", in, echoed)
	}

	// the read side is unwrapped, old clients never saw the envelope
	res = doJSON(t, http.MethodGet, srv.URL+"/api/portfolio/1", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("get: expected 200 got %d", res.StatusCode)
	}
	var got map[string]any
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("decode portfolio: %v", err)
	}
	res.Body.Close()
	if _, ok := got["success"]; ok {
		t.Fatalf("legacy get must not be enveloped: %#v", got)
	}
	if got["name"] != "Sam Mercer" {
		t.Fatalf("wrong portfolio: %#v", got)
	}
	if id, ok := got["id"].(float64); !ok || id != 1 {
		t.Fatalf("stored portfolio should carry id 1: %#v", got)
	}
}

func TestLegacyPortfolioNotFound(t *testing.T) {
	srv, cleanup := setupServer(t)
	defer cleanup()

	res := doJSON(t, http.MethodGet, srv.URL+"/api/portfolio/999", nil)
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", res.StatusCode)
	}
	var body map[string]any
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	res.Body.Close()
	if body["message"] != "Portfolio not found" {
		t.Fatalf("unexpected body: %#v", body)
	}
	if _, ok := body["success"]; ok {
		t.Fatalf("legacy miss must not be enveloped: %#v", body)
	}
}

func TestLegacyPortfolioRejectsMalformedBody(t *testing.T) {
	srv, cleanup := setupServer(t)
	defer cleanup()

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/portfolio", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("post failed: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty body got %d", res.StatusCode)
	}
}
