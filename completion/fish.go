package completion

import (
	"fmt"
	"strings"
)

type FishGenerator struct{}

func (g *FishGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder

	for _, flag := range data.Flags {
		// Start with base command, add -f unless the flag takes a value
		cmd := fmt.Sprintf("complete -c %s", programName)
		if data.ValueFlags[flag] {
			cmd += " -r"
		} else {
			cmd += " -f"
		}

		if short := shortName(flag); short != "" {
			cmd = fmt.Sprintf("%s -s %s", cmd, short)
		} else {
			cmd = fmt.Sprintf("%s -l %s", cmd, longName(flag))
		}
		if desc := data.Descriptions[flag]; desc != "" {
			cmd = fmt.Sprintf("%s -d '%s'", cmd, escapeFish(desc))
		}
		script.WriteString(cmd + "\n")
	}

	return script.String()
}
