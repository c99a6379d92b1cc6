package clop

import (
	"fmt"
	"strings"
)

// Renderer produces the text PrintHelp shows for each option
type Renderer interface {
	FlagList(o *Option) string
	Metavar(o *Option) string
	Description(o *Option) string
	DefaultNote(o *Option) string
}

// DefaultRenderer renders options as they were registered
type DefaultRenderer struct {
	parser *Parser
}

// NewRenderer returns the renderer used by parser unless SetRenderer replaces it
func NewRenderer(parser *Parser) *DefaultRenderer {
	return &DefaultRenderer{parser: parser}
}

// FlagList returns the option's flags separated by ", "
func (r *DefaultRenderer) FlagList(o *Option) string {
	return strings.Join(o.flags, ", ")
}

// Metavar returns the name of the option's value type, empty for boolean options
func (r *DefaultRenderer) Metavar(o *Option) string {
	return o.metavar
}

// Description returns the option's description as registered
func (r *DefaultRenderer) Description(o *Option) string {
	return o.description
}

// DefaultNote returns the suffix appended to a value option's description when defaults are
// shown. It starts with a space so that it can be appended to Description directly.
func (r *DefaultRenderer) DefaultNote(o *Option) string {
	return fmt.Sprintf(" (default: %s)", o.defaultValue)
}
