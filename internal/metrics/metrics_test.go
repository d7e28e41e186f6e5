package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSignInCounter(t *testing.T) {
	m := New()
	m.SignIn(OutcomeRecorded)
	m.SignIn(OutcomeRecorded)
	m.SignIn(OutcomeAlreadySigned)

	families, err := m.registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	counts := map[string]float64{}
	for _, f := range families {
		if f.GetName() != "register_sign_ins_total" {
			continue
		}
		for _, metric := range f.GetMetric() {
			for _, l := range metric.GetLabel() {
				if l.GetName() == "outcome" {
					counts[l.GetValue()] = metric.GetCounter().GetValue()
				}
			}
		}
	}
	if counts[OutcomeRecorded] != 2 || counts[OutcomeAlreadySigned] != 1 {
		t.Errorf("unexpected sign-in counts: %v", counts)
	}
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.SignIn(OutcomeUnknownStudent)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, _ := io.ReadAll(w.Body)
	if !strings.Contains(string(body), `register_sign_ins_total{outcome="unknown_student"} 1`) {
		t.Errorf("expected sign-in counter in exposition, got:\n%s", body)
	}
}
