package wizard

import (
	"context"
	"testing"
)

func TestAdvanceHappyPath(t *testing.T) {
	m := New(map[string]Gate{
		GateBasicDetails:   func(context.Context) string { return "" },
		GateEventSelection: func(context.Context) string { return "" },
	})
	ctx := context.Background()

	r := m.Advance(ctx, StepBasicDetails, ActionNext)
	if r.Blocked || r.Step != StepEventSelection {
		t.Fatalf("step 1 next: got %+v", r)
	}
	r = m.Advance(ctx, StepEventSelection, ActionNext)
	if r.Blocked || r.Step != StepPayment {
		t.Fatalf("step 2 next: got %+v", r)
	}
}

func TestAdvanceBlockedByGate(t *testing.T) {
	m := New(map[string]Gate{
		GateBasicDetails: func(context.Context) string { return "Participant emails must be unique" },
	})

	r := m.Advance(context.Background(), StepBasicDetails, ActionNext)
	if !r.Blocked {
		t.Fatal("expected blocked transition")
	}
	if r.Step != StepBasicDetails {
		t.Errorf("blocked transition moved to %v", r.Step)
	}
	if r.Reason != "Participant emails must be unique" {
		t.Errorf("reason = %q", r.Reason)
	}
}

func TestBackNeverRunsGates(t *testing.T) {
	called := false
	m := New(map[string]Gate{
		GateBasicDetails:   func(context.Context) string { called = true; return "blocked" },
		GateEventSelection: func(context.Context) string { called = true; return "blocked" },
	})
	ctx := context.Background()

	r := m.Advance(ctx, StepPayment, ActionBack)
	if r.Blocked || r.Step != StepEventSelection {
		t.Fatalf("payment back: got %+v", r)
	}
	r = m.Advance(ctx, StepEventSelection, ActionBack)
	if r.Blocked || r.Step != StepBasicDetails {
		t.Fatalf("selection back: got %+v", r)
	}
	if called {
		t.Error("backward move invoked a gate")
	}
}

func TestNoTransitionOutOfTerminalState(t *testing.T) {
	m := New(nil)

	r := m.Advance(context.Background(), StepPayment, ActionNext)
	if !r.Blocked || r.Step != StepPayment {
		t.Fatalf("payment next: got %+v", r)
	}
}

func TestBackFromInitialStateBlocked(t *testing.T) {
	m := New(nil)

	r := m.Advance(context.Background(), StepBasicDetails, ActionBack)
	if !r.Blocked || r.Step != StepBasicDetails {
		t.Fatalf("basic-details back: got %+v", r)
	}
}
