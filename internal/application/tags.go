package application

import (
	"encoding/json"
	"strings"
)

// TagsInput accepts listing tags as either a single comma-delimited string
// or an array of strings, and resolves them into one canonical form at the
// service boundary.
type TagsInput struct {
	values  []string
	present bool
}

// NewTagsInput builds a present TagsInput from a slice (used by tests and
// the seed command).
func NewTagsInput(values []string) TagsInput {
	return TagsInput{values: values, present: true}
}

func (t *TagsInput) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		t.values = strings.Split(s, ",")
		t.present = true
		return nil
	}
	var arr []string
	if err := json.Unmarshal(b, &arr); err != nil {
		return err
	}
	t.values = arr
	t.present = true
	return nil
}

// Present reports whether the field appeared in the request at all.
func (t TagsInput) Present() bool { return t.present }

// Normalize returns the tags trimmed, with empty entries dropped.
func (t TagsInput) Normalize() []string {
	out := make([]string, 0, len(t.values))
	for _, v := range t.values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
