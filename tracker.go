package clop

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Assignment records the flag which set an option during the last parse
type Assignment struct {
	Flag   string
	Option *Option
}

// tracker records which options were set, and by which flag, during the current parse
type tracker struct {
	assigned *orderedmap.OrderedMap[Handle, string]
}

func newTracker() *tracker {
	return &tracker{assigned: orderedmap.New[Handle, string]()}
}

func (t *tracker) reset() {
	t.assigned = orderedmap.New[Handle, string]()
}

func (t *tracker) flag(h Handle) (string, bool) {
	return t.assigned.Get(h)
}

func (t *tracker) record(h Handle, flag string) {
	t.assigned.Set(h, flag)
}

func (t *tracker) isSet(h Handle) bool {
	_, found := t.assigned.Get(h)
	return found
}

func (t *tracker) each(fn func(h Handle, flag string)) {
	for pair := t.assigned.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}
