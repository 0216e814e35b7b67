package models

import "testing"

func TestParseStatus(t *testing.T) {
	t.Run("valid statuses", func(t *testing.T) {
		for _, s := range []string{"Pending", "Processing", "Completed"} {
			got, err := ParseStatus(s)
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", s, err)
			}
			if got.String() != s {
				t.Errorf("expected %q, got %q", s, got.String())
			}
		}
	})

	t.Run("unknown status returns error", func(t *testing.T) {
		if _, err := ParseStatus("Shipped"); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("empty status returns error", func(t *testing.T) {
		if _, err := ParseStatus(""); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	allowed := map[Status]Status{
		StatusPending:    StatusProcessing,
		StatusProcessing: StatusCompleted,
	}
	all := []Status{StatusPending, StatusProcessing, StatusCompleted}

	for _, from := range all {
		for _, to := range all {
			want := allowed[from] == to
			if got := from.CanTransitionTo(to); got != want {
				t.Errorf("%s → %s: got %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestStatus_CompletedIsTerminal(t *testing.T) {
	for _, to := range []Status{StatusPending, StatusProcessing, StatusCompleted} {
		if StatusCompleted.CanTransitionTo(to) {
			t.Errorf("Completed must not transition to %s", to)
		}
	}
}
