package clop

import (
	"fmt"
	"os"
	"strings"
)

// Describe returns a one-line description of a process invocation: the program name, version
// and CompileInfo when available, and the command line. args includes the program name. When
// there are more than limit arguments, the first ~60% of limit are shown, then the total count,
// then the last ones. A limit of 0 omits the command line.
func Describe(args []string, version string, limit int) string {
	var b strings.Builder
	if len(args) > 0 {
		b.WriteString(args[0])
	} else {
		b.WriteString("procinfo")
	}
	if version != "" {
		b.WriteString("; version: " + version)
	}
	if CompileInfo != "" {
		b.WriteString("; compile info: " + CompileInfo)
	}
	if limit <= 0 {
		return b.String()
	}

	b.WriteString("; command:")
	if len(args) <= limit {
		for _, arg := range args {
			b.WriteString(" " + arg)
		}
		return b.String()
	}

	head := int(1 + 0.6*float64(limit))
	for _, arg := range args[:head] {
		b.WriteString(" " + arg)
	}
	fmt.Fprintf(&b, " ... (%d total arguments, including executable) ...", len(args))
	for _, arg := range args[len(args)-(limit-head):] {
		b.WriteString(" " + arg)
	}

	return b.String()
}

// DescribeProcess describes the running process using os.Args and DefaultArgLimit
func DescribeProcess(version string) string {
	return Describe(os.Args, version, DefaultArgLimit)
}
