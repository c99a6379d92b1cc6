// Package completion generates shell completion scripts for the flags of a parser.
package completion

// CompletionData is used to store the completion data for all registered flags
type CompletionData struct {
	Flags        []string          // Flags in registration order
	Descriptions map[string]string // Flag descriptions keyed by flag
	ValueFlags   map[string]bool   // Flags which take a value
}
