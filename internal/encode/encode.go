// Package encode turns action descriptors into the canonical function-call
// grammar consumed by the downstream dispatcher:
//
//	<start_function_call>call:NAME{k:<escape>v<escape>,...}<end_function_call>
//
// There is one serializer. Legacy raw descriptors are first normalized into a
// Call through the fixed verb mapping table, so both accepted input shapes
// produce identical bytes for identical field values.
package encode

import (
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/cosmoos/voicegen/internal/corpus"
)

const (
	StartMarker = "<start_function_call>"
	EndMarker   = "<end_function_call>"
)

// Functions is the fixed dispatcher allow-list. Shared with the validator.
var Functions = map[string]struct{}{
	"create_atom":                  {},
	"update_atom":                  {},
	"delete_atom":                  {},
	"search_atoms":                 {},
	"batch_create":                 {},
	"navigate":                     {},
	"query_level_system":           {},
	"start_deep_work":              {},
	"stop_deep_work":               {},
	"extend_deep_work":             {},
	"log_workout":                  {},
	"trigger_correlation_analysis": {},
}

// Encode renders an example's output in the canonical grammar, accepting
// either shape the generators produce.
func Encode(ex corpus.Example) (string, error) {
	switch {
	case ex.Call != nil:
		return Serialize(*ex.Call)
	case ex.Raw != nil:
		return Serialize(Normalize(ex.Raw))
	default:
		return "", fmt.Errorf("example %q has no output descriptor", ex.Input)
	}
}

// Serialize writes a call in the wire grammar. Parameters are emitted in
// list order with no inserted whitespace.
func Serialize(call corpus.Call) (string, error) {
	var sb strings.Builder
	sb.WriteString(StartMarker)
	sb.WriteString("call:")
	sb.WriteString(call.Name)
	sb.WriteByte('{')
	for i, p := range call.Params {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(p.Key)
		sb.WriteString(":<escape>")
		escaped, err := escape(p.Value)
		if err != nil {
			return "", fmt.Errorf("parameter %s of %s: %w", p.Key, call.Name, err)
		}
		sb.WriteString(escaped)
		sb.WriteString("<escape>")
	}
	sb.WriteByte('}')
	sb.WriteString(EndMarker)
	return sb.String(), nil
}

// escape renders a single parameter value: scalars as their literal text,
// booleans lower-case, numbers bare, composites as compact JSON preserving
// insertion order.
func escape(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		if v {
			return "true", nil
		}
		return "false", nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		out, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("marshal composite value: %w", err)
		}
		return string(out), nil
	}
}

// Normalize maps a legacy raw descriptor onto the fixed verb→function table.
// Parameter order always follows the table, never input order.
func Normalize(raw *corpus.RawExample) corpus.Call {
	switch raw.Action {
	case corpus.VerbCreate:
		return normalizeCreate(raw)
	case corpus.VerbUpdate:
		return normalizeUpdate(raw)
	case corpus.VerbDelete:
		return corpus.Call{Name: "delete_atom", Params: []corpus.Param{
			{Key: "target", Value: fallback(raw.Target, "context")},
		}}
	case corpus.VerbSearch:
		return normalizeSearch(raw)
	case corpus.VerbBatch:
		return normalizeBatch(raw)
	case corpus.VerbNavigate:
		return corpus.Call{Name: "navigate", Params: []corpus.Param{
			{Key: "destination", Value: fallback(raw.Destination, "home")},
		}}
	default:
		// Unknown verbs degrade to an idea capture; the validator reports
		// them as defects on the raw shape.
		return corpus.Call{Name: "create_atom", Params: []corpus.Param{
			{Key: "atom_type", Value: "idea"},
			{Key: "title", Value: "Unknown"},
		}}
	}
}

func normalizeCreate(raw *corpus.RawExample) corpus.Call {
	params := []corpus.Param{
		{Key: "atom_type", Value: fallback(raw.Type, "idea")},
		{Key: "title", Value: fallback(raw.Title, "Untitled")},
	}
	if raw.Body != "" {
		params = append(params, corpus.Param{Key: "body", Value: raw.Body})
	}
	if len(raw.Metadata) > 0 {
		params = append(params, corpus.Param{Key: "metadata", Value: raw.Metadata})
	}
	if len(raw.Links) > 0 {
		params = append(params, corpus.Param{Key: "links", Value: raw.Links})
	}
	return corpus.Call{Name: "create_atom", Params: params}
}

func normalizeUpdate(raw *corpus.RawExample) corpus.Call {
	params := []corpus.Param{
		{Key: "target", Value: fallback(raw.Target, "context")},
	}
	if raw.Title != "" {
		params = append(params, corpus.Param{Key: "title", Value: raw.Title})
	}
	if raw.Body != "" {
		params = append(params, corpus.Param{Key: "body", Value: raw.Body})
	}
	if len(raw.Metadata) > 0 {
		params = append(params, corpus.Param{Key: "metadata", Value: raw.Metadata})
	}
	if len(raw.Links) > 0 {
		params = append(params, corpus.Param{Key: "links", Value: raw.Links})
	}
	return corpus.Call{Name: "update_atom", Params: params}
}

func normalizeSearch(raw *corpus.RawExample) corpus.Call {
	var params []corpus.Param
	if raw.Query != "" {
		params = append(params, corpus.Param{Key: "query", Value: raw.Query})
	}
	if raw.Type != "" {
		params = append(params, corpus.Param{Key: "types", Value: corpus.List{raw.Type}})
	}
	// Filter fields flatten to top-level parameters, preserving order.
	for _, f := range raw.Filter {
		params = append(params, corpus.Param{Key: f.Key, Value: f.Value})
	}
	if raw.Mode != "" {
		params = append(params, corpus.Param{Key: "mode", Value: raw.Mode})
	}
	if raw.Target != "" {
		params = append(params, corpus.Param{Key: "target", Value: raw.Target})
	}
	return corpus.Call{Name: "search_atoms", Params: params}
}

func normalizeBatch(raw *corpus.RawExample) corpus.Call {
	items := make(corpus.List, 0, len(raw.Items))
	for _, it := range raw.Items {
		obj := corpus.Object{
			{Key: "atom_type", Value: fallback(it.Type, "task")},
			{Key: "title", Value: fallback(it.Title, "Untitled")},
		}
		if len(it.Links) > 0 {
			obj = append(obj, corpus.Param{Key: "links", Value: it.Links})
		}
		items = append(items, obj)
	}
	return corpus.Call{Name: "batch_create", Params: []corpus.Param{
		{Key: "items", Value: items},
	}}
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
