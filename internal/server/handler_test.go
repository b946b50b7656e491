package server

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
)

func postAnalyze(t *testing.T, req AnalyzeRequest) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(req)
	if err != nil {
		t.Fatal(err)
	}
	r := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handleAnalyze(w, r)
	return w
}

func TestHandleAnalyzeSimplySupported(t *testing.T) {
	w := postAnalyze(t, AnalyzeRequest{
		Condition:   "simply-supported",
		PrimarySpan: 4,
		UDL:         10,
		EI:          1,
		J2:          1,
		Step:        0.5,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp AnalyzeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}

	if len(resp.BendingMoment.Primary) != 9 {
		t.Errorf("moment samples = %d, want 9", len(resp.BendingMoment.Primary))
	}
	mid := resp.BendingMoment.Primary[4]
	if mid.X != 2 || math.Abs(mid.Y-20) > 1e-9 {
		t.Errorf("M(2) = %+v, want {2 20}", mid)
	}
	if resp.Reactions != nil {
		t.Error("single-span response carries reactions")
	}
}

func TestHandleAnalyzeTwoSpan(t *testing.T) {
	w := postAnalyze(t, AnalyzeRequest{
		Condition:     "two-span-unequal",
		PrimarySpan:   3,
		SecondarySpan: 2,
		UDL:           5,
		EI:            1200,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp AnalyzeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}

	if resp.Reactions == nil {
		t.Fatal("missing reactions")
	}
	total := resp.Reactions.R1 + resp.Reactions.R2 + resp.Reactions.R3
	if math.Abs(total-25) > 1e-9 {
		t.Errorf("sum of reactions = %v, want 25", total)
	}
	if len(resp.ShearForce.Secondary) == 0 {
		t.Error("missing secondary shear series")
	}
}

func TestHandleAnalyzeUnknownCondition(t *testing.T) {
	w := postAnalyze(t, AnalyzeRequest{
		Condition:   "cantilever",
		PrimarySpan: 4,
		UDL:         10,
		EI:          1,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandleAnalyzeBadPayload(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	handleAnalyze(w, r)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandleMaterials(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/materials", nil)
	w := httptest.NewRecorder()
	handleMaterials(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var out []materialJSON
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) == 0 {
		t.Fatal("no materials listed")
	}
	for _, m := range out {
		if m.EI <= 0 || m.Depth <= 0 || len(m.Layers) == 0 {
			t.Errorf("incomplete material %+v", m)
		}
	}
}

func TestRouterRateLimit(t *testing.T) {
	h := newRouter()

	var tooMany bool
	for i := 0; i < 30; i++ {
		r := httptest.NewRequest(http.MethodGet, "/api/materials", nil)
		r.RemoteAddr = "10.0.0.1:12345"
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		if w.Code == http.StatusTooManyRequests {
			tooMany = true
			break
		}
	}
	if !tooMany {
		t.Error("rate limit never triggered")
	}
}
