package frontmatter

import (
	"fmt"
	"time"
)

// Kind discriminates the three shapes a frontmatter value can take.
type Kind int

const (
	// KindAbsent means the key was not present in the frontmatter block.
	KindAbsent Kind = iota
	// KindScalar is a single text value.
	KindScalar
	// KindSequence is an ordered list of text values.
	KindSequence
)

// Value is a tagged union over {absent, scalar, ordered sequence}. YAML
// scalars of any type (numbers, bools, dates) are coerced to text at
// construction time, so consumers never inspect runtime types.
type Value struct {
	kind  Kind
	items []string
}

// Absent returns the absent value.
func Absent() Value { return Value{kind: KindAbsent} }

// Scalar returns a single-text value.
func Scalar(s string) Value { return Value{kind: KindScalar, items: []string{s}} }

// Sequence returns an ordered list value.
func Sequence(items []string) Value { return Value{kind: KindSequence, items: items} }

// Kind reports which variant this value holds.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether the key was missing.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// Items returns the value as a sequence: a scalar yields one element,
// absent yields nil.
func (v Value) Items() []string { return v.items }

// First returns the first item, or empty string when absent.
func (v Value) First() string {
	if len(v.items) == 0 {
		return ""
	}
	return v.items[0]
}

// coerce converts an arbitrary decoded YAML node into a Value.
func coerce(raw any) Value {
	switch t := raw.(type) {
	case nil:
		return Scalar("")
	case string:
		return Scalar(t)
	case []any:
		items := make([]string, 0, len(t))
		for _, item := range t {
			items = append(items, coerceScalar(item))
		}
		return Sequence(items)
	default:
		return Scalar(coerceScalar(raw))
	}
}

func coerceScalar(raw any) string {
	switch t := raw.(type) {
	case nil:
		return ""
	case string:
		return t
	case time.Time:
		// Unquoted YAML dates decode as time.Time. Re-emit them as ISO
		// text so the date rendering path recognises them.
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
			return t.Format("2006-01-02")
		}
		return t.Format(time.RFC3339)
	default:
		return fmt.Sprint(raw)
	}
}
