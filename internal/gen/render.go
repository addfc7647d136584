package gen

import (
	"fmt"
	"regexp"
	"strings"
)

// Vars holds the placeholder values drawn for one example.
type Vars map[string]string

var placeholderRe = regexp.MustCompile(`\{(\w+)\}`)

// render substitutes {name} tokens in an input pattern. A pattern referencing
// a placeholder that was not drawn is an authoring error and aborts the run.
func render(pattern string, vars Vars) (string, error) {
	var missing []string
	out := placeholderRe.ReplaceAllStringFunc(pattern, func(token string) string {
		name := token[1 : len(token)-1]
		value, ok := vars[name]
		if !ok {
			missing = append(missing, name)
			return token
		}
		return value
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("pattern %q references unknown placeholder(s): %s",
			pattern, strings.Join(missing, ", "))
	}
	return out, nil
}
