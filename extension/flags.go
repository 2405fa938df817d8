// flags.go defines constants for all CLI flag names.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag (e.g., "no-colour" -> FlagNoColour).

package extension

// Flag name constants for CLI commands.
const (
	// Boolean flags

	FlagDiff     = "diff"      // Show the before/after view
	FlagLocal    = "local"     // Use local scope
	FlagNoColour = "no-colour" // Disable ANSI colour in diffs

	// Integer flags

	FlagLimit = "limit" // Limit number of results
	FlagSize  = "size"  // Buffer size in characters

	// String flags

	FlagSince = "since" // Only entries newer than a duration (e.g. 7d)
)
