package providers_test

import (
	"testing"

	"github.com/fedstack/federation-registry/internal/providers"
)

// allowedEdges lists every legal cross-state transition. Anything not listed
// here (and not a same-state transition) must be rejected.
var allowedEdges = map[providers.Status]providers.Status{
	providers.StatusDraft:         providers.StatusSubmitted,
	providers.StatusSubmitted:     providers.StatusReady,
	providers.StatusReady:         providers.StatusEvaluation,
	providers.StatusEvaluation:    providers.StatusPreProduction,
	providers.StatusPreProduction: providers.StatusActive,
	providers.StatusActive:        providers.StatusDeprecated,
	providers.StatusDeprecated:    providers.StatusRemoved,
	providers.StatusDegraded:      providers.StatusMaintenance,
	providers.StatusMaintenance:   providers.StatusReEvaluation,
	providers.StatusReEvaluation:  providers.StatusActive,
}

func TestCanTransitionExhaustive(t *testing.T) {
	for _, from := range providers.Statuses() {
		for _, to := range providers.Statuses() {
			want := from == to || allowedEdges[from] == to
			if got := from.CanTransition(to); got != want {
				t.Errorf("CanTransition(%s -> %s) = %t, want %t", from, to, got, want)
			}
		}
	}
}

func TestRemovedIsTerminal(t *testing.T) {
	for _, to := range providers.Statuses() {
		if to == providers.StatusRemoved {
			continue
		}
		if providers.StatusRemoved.CanTransition(to) {
			t.Errorf("removed must not transition to %s", to)
		}
	}
	if !providers.StatusRemoved.CanTransition(providers.StatusRemoved) {
		t.Error("same-state transition on removed must stay legal")
	}
}

func TestSameStateTransitionAlwaysLegal(t *testing.T) {
	for _, s := range providers.Statuses() {
		if !s.CanTransition(s) {
			t.Errorf("CanTransition(%s -> %s) = false, want true", s, s)
		}
	}
}

func TestRecoveryTrackRejoinsActive(t *testing.T) {
	path := []providers.Status{
		providers.StatusDegraded,
		providers.StatusMaintenance,
		providers.StatusReEvaluation,
		providers.StatusActive,
	}
	for i := 0; i < len(path)-1; i++ {
		if !path[i].CanTransition(path[i+1]) {
			t.Errorf("recovery edge %s -> %s must be legal", path[i], path[i+1])
		}
	}
}

func TestActiveCannotDegradeThroughTransition(t *testing.T) {
	// Degradation is recorded operationally, not requested through the
	// transition endpoint.
	if providers.StatusActive.CanTransition(providers.StatusDegraded) {
		t.Error("CanTransition(active -> degraded) = true, want false")
	}
}

func TestRequiresTester(t *testing.T) {
	want := map[providers.Status]bool{
		providers.StatusEvaluation:   true,
		providers.StatusActive:       true,
		providers.StatusDegraded:     true,
		providers.StatusMaintenance:  true,
		providers.StatusReEvaluation: true,
	}

	for _, s := range providers.Statuses() {
		if got := s.RequiresTester(); got != want[s] {
			t.Errorf("RequiresTester(%s) = %t, want %t", s, got, want[s])
		}
	}
}

func TestDeleteActionTotal(t *testing.T) {
	want := map[providers.Status]providers.DeleteAction{
		providers.StatusDraft:         providers.DeleteHard,
		providers.StatusReady:         providers.DeleteHard,
		providers.StatusActive:        providers.DeleteDeprecate,
		providers.StatusDegraded:      providers.DeleteDeprecate,
		providers.StatusMaintenance:   providers.DeleteDeprecate,
		providers.StatusReEvaluation:  providers.DeleteDeprecate,
		providers.StatusSubmitted:     providers.DeleteRemove,
		providers.StatusEvaluation:    providers.DeleteRemove,
		providers.StatusPreProduction: providers.DeleteRemove,
		providers.StatusDeprecated:    providers.DeleteRemove,
		providers.StatusRemoved:       providers.DeleteRemove,
	}

	if len(want) != len(providers.Statuses()) {
		t.Fatalf("delete mapping covers %d states, want %d", len(want), len(providers.Statuses()))
	}

	for _, s := range providers.Statuses() {
		if got := s.DeleteAction(); got != want[s] {
			t.Errorf("DeleteAction(%s) = %v, want %v", s, got, want[s])
		}
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range providers.Statuses() {
		got, err := providers.ParseStatus(string(s))
		if err != nil {
			t.Errorf("ParseStatus(%s) error: %v", s, err)
		}
		if got != s {
			t.Errorf("ParseStatus(%s) = %s", s, got)
		}
	}

	if _, err := providers.ParseStatus("retired"); err == nil {
		t.Error("ParseStatus should reject unknown values")
	}
	if _, err := providers.ParseStatus(""); err == nil {
		t.Error("ParseStatus should reject the empty string")
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		raw     string
		want    providers.Kind
		wantErr bool
	}{
		{"openstack", providers.KindOpenStack, false},
		{"kubernetes", providers.KindKubernetes, false},
		{"aws", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := providers.ParseKind(tt.raw)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseKind(%q) should fail", tt.raw)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseKind(%q) error: %v", tt.raw, err)
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}
}
