package corpus

// Param is one positional parameter of a function call. Order matters: the
// encoder emits parameters exactly as listed.
type Param struct {
	Key   string
	Value any
}

// Object is an insertion-ordered composite parameter value. It serializes as
// a compact JSON object.
type Object []Param

func (o Object) MarshalJSON() ([]byte, error) {
	fields := make([]Field, 0, len(o))
	for _, p := range o {
		fields = append(fields, Field{Key: p.Key, Value: p.Value})
	}
	return marshalOrdered(fields)
}

// List is a composite parameter value holding an ordered sequence.
type List []any

// Call is the normalized function call: a name from the dispatcher allow-list
// plus its ordered parameter list.
type Call struct {
	Name   string
	Params []Param
}

func (c *Call) MarshalJSON() ([]byte, error) {
	return marshalOrdered([]Field{
		{Key: "function", Value: c.Name},
		{Key: "params", Value: Object(c.Params)},
	})
}
