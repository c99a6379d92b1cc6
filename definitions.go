package clop

import (
	"time"

	"github.com/napalu/clop/util"
)

// Bindable lists the variable types which can be bound with Add
type Bindable interface {
	~string | ~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~complex64 | ~complex128 | ~bool | time.Time
}

// CompileInfo is printed by PrintHelp and Describe when non-empty. Set it at build time:
//
//	go build -ldflags "-X 'github.com/napalu/clop.CompileInfo=$(date)'"
var CompileInfo string

// DefaultArgLimit is the number of arguments DescribeProcess shows before eliding
const DefaultArgLimit = 20

// HelpInfo is used to describe the program in PrintHelp. Empty fields are omitted.
type HelpInfo struct {
	// Synopsis is a short description of the program
	Synopsis string
	// Version of the program
	Version string
	// Usage line, e.g. "prog [options] <name>"
	Usage string
	// ShowDefaults appends each value option's registered default to its description
	ShowDefaults bool
}

// ConfigureParserFunc is used when defining Parser options
type ConfigureParserFunc func(parser *Parser, err *error)

// Terminal probes the help output for interactivity and width
type Terminal = util.Terminal
