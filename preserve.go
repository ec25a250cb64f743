package refine

import "sync"

// Op identifies an arithmetic operator for preservation-table lookups.
type Op string

const (
	OpAdd Op = "+"
	OpSub Op = "-"
	OpMul Op = "*"
	OpNeg Op = "negate"
)

// preservationKey identifies one table entry: the structural names of the
// two operand predicates plus the operator.
type preservationKey struct {
	left  string
	right string
	op    Op
}

// PreservationTable is a finite, explicit registry of (predicate, operator)
// pairs known to preserve the left operand's predicate. General predicate
// preservation is undecidable without a theorem prover, so the table only
// ever answers "guaranteed" for entries a programmer registered — absence
// means "unknown", and the arithmetic dispatch falls back to re-verifying
// the result.
//
// Registration is expected during init or test setup; lookups are safe
// from any number of goroutines.
type PreservationTable struct {
	mu      sync.RWMutex
	entries map[preservationKey]bool
}

// NewPreservationTable creates an empty table.
func NewPreservationTable() *PreservationTable {
	return &PreservationTable{entries: make(map[preservationKey]bool)}
}

// Register marks (left op right) as guaranteed to preserve the left
// operand's predicate. The caller carries the proof burden: registering an
// unsound entry lets violating values through trusted construction.
func (t *PreservationTable) Register(left, right string, op Op) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[preservationKey{left: left, right: right, op: op}] = true
}

// Preserved reports whether (left op right) is registered as guaranteed.
func (t *PreservationTable) Preserved(left, right string, op Op) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.entries[preservationKey{left: left, right: right, op: op}]
}

// globalTable holds the built-in entries plus anything registered through
// the package-level Register functions.
var globalTable = seedTable()

// seedTable registers the sign-arithmetic facts that hold for every base
// type:
//
//	positive + positive = positive     positive * positive = positive
//	non_negative + non_negative ≥ 0    non_negative * non_negative ≥ 0
//	non_negative + positive ≥ 0        positive + non_negative > 0 ... kept
//	                                   as the weaker left predicate
func seedTable() *PreservationTable {
	t := NewPreservationTable()
	t.Register(NamePositive, NamePositive, OpAdd)
	t.Register(NamePositive, NamePositive, OpMul)
	t.Register(NameNonNegative, NameNonNegative, OpAdd)
	t.Register(NameNonNegative, NameNonNegative, OpMul)
	t.Register(NameNonNegative, NamePositive, OpAdd)
	t.Register(NamePositive, NameNonNegative, OpAdd)
	t.Register(NameNegative, NameNegative, OpAdd)
	t.Register(NameNonPositive, NameNonPositive, OpAdd)
	return t
}

// RegisterPreserved adds an entry to the package-level table. See
// PreservationTable.Register for the soundness contract.
func RegisterPreserved(left, right string, op Op) {
	globalTable.Register(left, right, op)
}

// Preserved consults the package-level table for two operand predicates.
// A true result means the operation's output satisfies the LEFT operand's
// predicate without re-verification.
func Preserved[T any](left, right Predicate[T], op Op) bool {
	return globalTable.Preserved(left.Name(), right.Name(), op)
}
