package set

import (
	"encoding/json"
	"sort"
)

// StringSet is a lightweight set implementation for strings.
// It serializes to a sorted JSON string list so responses stay stable
// between requests, while allowing map-like membership checks in code.
type StringSet map[string]bool

func NewStringSet(values ...string) StringSet {
	ss := make(StringSet)
	for _, value := range values {
		ss.Add(value)
	}
	return ss
}

func (ss StringSet) Add(v string) StringSet {
	ss[v] = true
	return ss
}

func (ss StringSet) MarshalJSON() ([]byte, error) {
	values := make([]string, 0, len(ss))
	for v := range ss {
		values = append(values, v)
	}
	sort.Strings(values)
	return json.Marshal(values)
}

func (ss *StringSet) UnmarshalJSON(data []byte) error {
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	*ss = NewStringSet(values...)
	return nil
}
