// Package validate checks generated examples for structural problems
// before they are written out. Findings are advisory: a finding flags an
// example for review, it never removes it from the corpus.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cosmoos/voicegen/internal/corpus"
	"github.com/cosmoos/voicegen/internal/encode"
)

// Finding points at one suspicious example.
type Finding struct {
	Index   int
	Message string
}

func (f Finding) String() string {
	return fmt.Sprintf("example %d: %s", f.Index, f.Message)
}

var callNameRe = regexp.MustCompile(`^call:(\w+)\{`)

// Check scans every example and reports structural findings: empty
// inputs, outputs that do not serialize, malformed call framing, and
// function names outside the dispatch surface.
func Check(examples []corpus.Example) []Finding {
	var findings []Finding
	for i, ex := range examples {
		if strings.TrimSpace(ex.Input) == "" {
			findings = append(findings, Finding{Index: i, Message: "empty input"})
		}
		if ex.Call == nil && ex.Raw == nil {
			findings = append(findings, Finding{Index: i, Message: "no output descriptor"})
			continue
		}
		// The encoder degrades unknown verbs instead of failing, so the raw
		// shape has to be checked here or a bad verb slips through encoded.
		if ex.Raw != nil && !ex.Raw.Action.IsValid() {
			findings = append(findings, Finding{Index: i, Message: fmt.Sprintf("invalid action %q", ex.Raw.Action)})
			continue
		}

		out, err := encode.Encode(ex)
		if err != nil {
			findings = append(findings, Finding{Index: i, Message: fmt.Sprintf("encode: %v", err)})
			continue
		}
		findings = append(findings, checkWire(i, out)...)
	}
	return findings
}

// checkWire verifies the serialized call framing and the function name.
func checkWire(index int, out string) []Finding {
	var findings []Finding

	if !strings.HasPrefix(out, encode.StartMarker) || !strings.HasSuffix(out, encode.EndMarker) {
		findings = append(findings, Finding{Index: index, Message: "missing call markers"})
		return findings
	}

	body := strings.TrimSuffix(strings.TrimPrefix(out, encode.StartMarker), encode.EndMarker)
	m := callNameRe.FindStringSubmatch(body)
	if m == nil {
		findings = append(findings, Finding{Index: index, Message: "malformed call body"})
		return findings
	}
	if _, ok := encode.Functions[m[1]]; !ok {
		findings = append(findings, Finding{Index: index, Message: fmt.Sprintf("unknown function %q", m[1])})
	}
	return findings
}
