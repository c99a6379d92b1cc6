package completion

import (
	"strings"
)

func escapeBash(desc string) string {
	desc = strings.ReplaceAll(desc, `"`, `\"`)
	desc = strings.ReplaceAll(desc, `'`, `\'`)
	desc = strings.ReplaceAll(desc, `$`, `\$`)
	desc = strings.ReplaceAll(desc, "`", "\\`")
	return desc
}

func escapeFish(desc string) string {
	return strings.ReplaceAll(desc, "'", "\\'")
}

// shortName returns "x" for "-x" and "" for long flags
func shortName(flag string) string {
	if strings.HasPrefix(flag, "--") {
		return ""
	}
	return strings.TrimPrefix(flag, "-")
}

// longName returns "xyz" for "--xyz" and "" for short flags
func longName(flag string) string {
	if !strings.HasPrefix(flag, "--") {
		return ""
	}
	return strings.TrimPrefix(flag, "--")
}
