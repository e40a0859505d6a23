package askeys

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Value is a single cell value. Sources carry heterogeneous scalars (numbers,
// text, nil); any value used as a key or group label must be comparable.
type Value = any

// Label is one level of a row's group-label vector: a grouping column's name
// paired with the row's value for it, or the synthetic batch label.
type Label struct {
	Name  string
	Value Value
}

// Row is a projected row: one key value annotated with zero or more group
// labels. Index is the row's position in the source, which survives
// projection and deduplication so row identity is never lost.
//
// Within one extraction every row carries the same label arity: the grouping
// columns in GroupBy order, plus the batch label when batching is active.
type Row struct {
	Index  int
	Key    Value
	Labels []Label
}

// labelValues returns the label vector values in label order.
func (r Row) labelValues() []Value {
	return lo.Map(r.Labels, func(l Label, _ int) Value { return l.Value })
}

// labelKey produces a map identity for the row's label vector.
func (r Row) labelKey() string {
	return tupleKey(r.labelValues())
}

// tupleKey builds a map identity for a tuple of scalar values. The printed
// form is prefixed with the dynamic type so 1 and "1" stay distinct, and the
// unit separators keep adjacent values from running together.
func tupleKey(values []Value) string {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteByte(0x1f)
		}
		fmt.Fprintf(&b, "%T\x1e%v", v, v)
	}
	return b.String()
}

// formatValue renders a cell the way all text output does.
func formatValue(v Value) string {
	return fmt.Sprint(v)
}

// compareValues orders two scalar values naturally: nil sorts first, numbers
// compare numerically when both sides are numeric, everything else compares
// by formatted text.
func compareValues(a, b Value) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if af, ok := toFloat(a); ok {
		if bf, ok := toFloat(b); ok {
			return cmp.Compare(af, bf)
		}
	}
	return cmp.Compare(formatValue(a), formatValue(b))
}

// compareLabels orders two label vectors level by level, earlier levels
// taking precedence.
func compareLabels(a, b []Label) int {
	for i := range min(len(a), len(b)) {
		if c := compareValues(a[i].Value, b[i].Value); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func toFloat(v Value) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
