package worldview

import (
	"github.com/tidwall/gjson"
)

// InputFromJSON reads a JSON object into an Input, keeping each value's JSON
// type so that numbers, booleans and nulls never match an option. Anything
// that is not a JSON object yields an empty Input.
func InputFromJSON(data []byte) Input {
	in := Input{}
	if !gjson.ValidBytes(data) {
		return in
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return in
	}
	root.ForEach(func(key, value gjson.Result) bool {
		in[key.String()] = value.Value()
		return true
	})
	return in
}

// InputFromValues builds an Input from query or form values. Only the first
// value of each key is used and empty values are treated as absent.
func InputFromValues(values map[string][]string) Input {
	in := Input{}
	for key, vs := range values {
		if len(vs) == 0 || vs[0] == "" {
			continue
		}
		in[key] = vs[0]
	}
	return in
}
