package completion

import (
	"fmt"
	"strings"
)

type BashGenerator struct{}

func (g *BashGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder
	name := functionName(programName)

	script.WriteString(fmt.Sprintf(`#!/bin/bash

function __%s_completion() {
    local cur prev
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Flags which take a value complete files
    case "${prev}" in`, name))

	var valueFlags []string
	for _, flag := range data.Flags {
		if data.ValueFlags[flag] {
			valueFlags = append(valueFlags, flag)
		}
	}
	if len(valueFlags) > 0 {
		script.WriteString(fmt.Sprintf(`
        %s)
            COMPREPLY=( $(compgen -f -- "$cur") )
            return
            ;;`, strings.Join(valueFlags, "|")))
	}

	script.WriteString(`
    esac

    if [[ "$cur" == -* ]]; then
        local flags=(`)

	quoted := make([]string, len(data.Flags))
	for i, flag := range data.Flags {
		quoted[i] = fmt.Sprintf(`"%s"`, escapeBash(flag))
	}
	script.WriteString(strings.Join(quoted, " "))

	script.WriteString(fmt.Sprintf(`)
        COMPREPLY=( $(compgen -W "${flags[*]}" -- "$cur") )
        return
    fi

    COMPREPLY=( $(compgen -f -- "$cur") )
}

complete -F __%s_completion %s
`, name, programName))

	return script.String()
}

func functionName(programName string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || r == '.' || r == ' ' {
			return '_'
		}
		return r
	}, programName)
}
