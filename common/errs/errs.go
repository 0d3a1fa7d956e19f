package errs

// ErrorKind identifies a kind of internal error.
// fully support for errors.Is and errors.As.
type ErrorKind string

const (
	// NotFound is returned when the referenced transaction does not exist on the ledger (yet, or ever).
	NotFound = ErrorKind("Transaction not found")

	// InvalidShape is returned when a transaction exists but fails a structural or content check.
	InvalidShape = ErrorKind("Invalid transaction")

	// OwnershipMismatch is returned when the payment sender does not currently own the referenced asset.
	OwnershipMismatch = ErrorKind("Sender does not own asset")

	// AlreadyProcessed is returned when the transaction has already been fully handled.
	AlreadyProcessed = ErrorKind("Transaction already processed.")

	// AppendFailure is returned when one of the story writes failed or timed out mid-sequence.
	AppendFailure = ErrorKind("Story append failed")

	InvalidArgument    = ErrorKind("Invalid Argument")
	Unsupported        = ErrorKind("Unsupported")
	SomethingWentWrong = ErrorKind("Something went wrong")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

var codes = map[ErrorKind]string{
	NotFound:          "NOT_FOUND",
	InvalidShape:      "INVALID_SHAPE",
	OwnershipMismatch: "OWNERSHIP_MISMATCH",
	AlreadyProcessed:  "ALREADY_PROCESSED",
	AppendFailure:     "APPEND_FAILURE",
}

// Code returns a stable machine-readable code of the kind, or empty string for kinds without one.
func (e ErrorKind) Code() string {
	return codes[e]
}

// Kinds is the ordered list of kinds that carry a code.
var Kinds = []ErrorKind{NotFound, InvalidShape, OwnershipMismatch, AlreadyProcessed, AppendFailure}
