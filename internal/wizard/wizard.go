package wizard

import "context"

// Step is the wizard position. The flow starts at Basic Details and ends at
// Payment; Payment has no outgoing "next" since submission is its exit action.
type Step int

const (
	StepBasicDetails Step = iota + 1
	StepEventSelection
	StepPayment
)

func (s Step) String() string {
	switch s {
	case StepBasicDetails:
		return "basic-details"
	case StepEventSelection:
		return "event-selection"
	case StepPayment:
		return "payment"
	}
	return "unknown"
}

func ValidStep(n int) bool {
	return n >= int(StepBasicDetails) && n <= int(StepPayment)
}

type Action string

const (
	ActionNext Action = "next"
	ActionBack Action = "back"
)

func ParseAction(s string) (Action, bool) {
	switch Action(s) {
	case ActionNext, ActionBack:
		return Action(s), true
	}
	return "", false
}

// Gate names referenced by the transition table.
const (
	GateBasicDetails   = "basic-details"
	GateEventSelection = "event-selection"
)

// Gate re-validates a forward transition. It returns "" to allow the move or
// a user-facing reason to block it.
type Gate func(ctx context.Context) string

type transitionKey struct {
	from   Step
	action Action
}

type rule struct {
	to   Step
	gate string // empty: ungated (all backward moves)
}

// Forward moves are gated, backward moves are free, and anything not listed
// here is not a transition at all.
var transitions = map[transitionKey]rule{
	{StepBasicDetails, ActionNext}:   {to: StepEventSelection, gate: GateBasicDetails},
	{StepEventSelection, ActionNext}: {to: StepPayment, gate: GateEventSelection},
	{StepEventSelection, ActionBack}: {to: StepBasicDetails},
	{StepPayment, ActionBack}:        {to: StepEventSelection},
}

type Machine struct {
	gates map[string]Gate
}

func New(gates map[string]Gate) *Machine {
	return &Machine{gates: gates}
}

type Result struct {
	Step    Step
	Blocked bool
	Reason  string
}

// Advance applies one action. A blocked or unknown transition keeps the
// current step and reports why.
func (m *Machine) Advance(ctx context.Context, from Step, action Action) Result {
	r, ok := transitions[transitionKey{from: from, action: action}]
	if !ok {
		return Result{Step: from, Blocked: true, Reason: "no such transition"}
	}
	if r.gate != "" {
		if gate, ok := m.gates[r.gate]; ok {
			if reason := gate(ctx); reason != "" {
				return Result{Step: from, Blocked: true, Reason: reason}
			}
		}
	}
	return Result{Step: r.to}
}
