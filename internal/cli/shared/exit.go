package shared

// Process exit codes returned by the CLI.
const (
	ExitOK = 0
	// ExitGeneric covers errors without a dedicated code.
	ExitGeneric       = 1
	ExitConfigError   = 2
	ExitMissingFile   = 3
	ExitWriteFailed   = 4
	ExitPromptAborted = 5
)
