package link

// Op names a batch operation.
type Op string

// Batch operations.
const (
	OpEnable  Op = "enable"
	OpDisable Op = "disable"
	OpStatus  Op = "status"
)

// Action is what happened to one entry.
type Action string

// Per-entry actions.
const (
	// ActionCreated means a new symlink was created.
	ActionCreated Action = "created"
	// ActionAlreadyLinked means enable found a symlink in place and left it.
	ActionAlreadyLinked Action = "already-linked"
	// ActionRemoved means the target was removed.
	ActionRemoved Action = "removed"
	// ActionInspected means status classified the entry.
	ActionInspected Action = "inspected"
)

// Outcome is the per-entry result handed to a Reporter.
type Outcome struct {
	Op     Op
	Action Action
	// Inspection carries the entry, its resolved paths and, for status and
	// already-linked outcomes, its state.
	Inspection Inspection
}

// Reporter receives structured results from the Reconciler. It is
// implemented by the presentation layer.
type Reporter interface {
	// Begin is called once before the entries of op are processed.
	Begin(op Op, total int)
	// Outcome is called once per successfully processed entry, in order.
	Outcome(o Outcome)
	// Warn receives non-fatal conditions, such as an occupied target
	// tolerated while disabling.
	Warn(err error)
}

// NopReporter discards everything.
type NopReporter struct{}

func (NopReporter) Begin(Op, int)   {}
func (NopReporter) Outcome(Outcome) {}
func (NopReporter) Warn(error)      {}
