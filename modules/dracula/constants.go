package dracula

const (
	Version = "v0.1.0"

	// ScriptLength is the number of story items appended per verified transaction.
	ScriptLength = 6
)
