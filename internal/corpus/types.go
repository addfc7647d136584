package corpus

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

// Verb is the action of a legacy raw descriptor.
type Verb string

const (
	VerbCreate   Verb = "create"
	VerbUpdate   Verb = "update"
	VerbDelete   Verb = "delete"
	VerbSearch   Verb = "search"
	VerbBatch    Verb = "batch"
	VerbNavigate Verb = "navigate"
)

var validVerbs = map[Verb]struct{}{
	VerbCreate:   {},
	VerbUpdate:   {},
	VerbDelete:   {},
	VerbSearch:   {},
	VerbBatch:    {},
	VerbNavigate: {},
}

func (v Verb) IsValid() bool {
	_, ok := validVerbs[v]
	return ok
}

// Field is one key/value entry of an ordered mapping.
type Field struct {
	Key   string
	Value any
}

// Metadata is an insertion-ordered mapping. It serializes as a compact JSON
// object so encoded output stays byte-stable across runs.
type Metadata []Field

func (m Metadata) Get(key string) (any, bool) {
	for _, f := range m {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

func (m Metadata) MarshalJSON() ([]byte, error) {
	return marshalOrdered([]Field(m))
}

func marshalOrdered(fields []Field) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("marshal field %q: %w", f.Key, err)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Link ties a created or updated entity to a project by fuzzy query.
type Link struct {
	Type  string `json:"type"`
	Query string `json:"query"`
}

// BatchItem is one entity of a batch-create descriptor.
type BatchItem struct {
	Type  string
	Title string
	Links []Link
}

// RawExample is the pre-grammar action descriptor. Only the fields relevant
// to its verb are set; empty fields are omitted everywhere it is serialized.
type RawExample struct {
	Action      Verb
	Type        string
	Title       string
	Body        string
	Target      string
	Query       string
	Mode        string
	Destination string
	Metadata    Metadata
	Filter      Metadata
	Links       []Link
	Items       []BatchItem
}

func (r *RawExample) MarshalJSON() ([]byte, error) {
	fields := []Field{{Key: "action", Value: string(r.Action)}}
	if r.Type != "" {
		fields = append(fields, Field{Key: "type", Value: r.Type})
	}
	if r.Title != "" {
		fields = append(fields, Field{Key: "title", Value: r.Title})
	}
	if r.Body != "" {
		fields = append(fields, Field{Key: "body", Value: r.Body})
	}
	if r.Target != "" {
		fields = append(fields, Field{Key: "target", Value: r.Target})
	}
	if r.Query != "" {
		fields = append(fields, Field{Key: "query", Value: r.Query})
	}
	if r.Destination != "" {
		fields = append(fields, Field{Key: "destination", Value: r.Destination})
	}
	if r.Mode != "" {
		fields = append(fields, Field{Key: "mode", Value: r.Mode})
	}
	if len(r.Metadata) > 0 {
		fields = append(fields, Field{Key: "metadata", Value: r.Metadata})
	}
	if len(r.Filter) > 0 {
		fields = append(fields, Field{Key: "filter", Value: r.Filter})
	}
	if len(r.Links) > 0 {
		fields = append(fields, Field{Key: "links", Value: r.Links})
	}
	if len(r.Items) > 0 {
		items := make([]any, 0, len(r.Items))
		for _, it := range r.Items {
			f := []Field{
				{Key: "type", Value: it.Type},
				{Key: "title", Value: it.Title},
			}
			if len(it.Links) > 0 {
				f = append(f, Field{Key: "links", Value: it.Links})
			}
			items = append(items, Metadata(f))
		}
		fields = append(fields, Field{Key: "items", Value: items})
	}
	return marshalOrdered(fields)
}

// Example is one generated (input, output) pair before encoding. Output is
// carried in one of two shapes: a legacy raw descriptor or a direct call.
type Example struct {
	Input string
	Raw   *RawExample
	Call  *Call
}

func (e Example) MarshalJSON() ([]byte, error) {
	fields := []Field{{Key: "input", Value: e.Input}}
	switch {
	case e.Raw != nil:
		fields = append(fields, Field{Key: "output", Value: e.Raw})
	case e.Call != nil:
		fields = append(fields, Field{Key: "output", Value: e.Call})
	default:
		fields = append(fields, Field{Key: "output", Value: nil})
	}
	return marshalOrdered(fields)
}

// Pair is one fully encoded training pair.
type Pair struct {
	Input  string
	Output string
}
