package askeys

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// stringify renders rows as delimited text: a flat join of the key values
// when no labels are active, otherwise one block per partition.
func (e *Extractor) stringify(rows []Row) string {
	if len(rows) == 0 || len(rows[0].Labels) == 0 {
		return e.flatJoin(rows)
	}
	return e.groupedText(rows)
}

// flatJoin joins the formatted key values with the separator, ignoring any
// labels.
func (e *Extractor) flatJoin(rows []Row) string {
	keys := lo.Map(rows, func(r Row, _ int) string { return formatValue(r.Key) })
	return strings.Join(keys, e.sep)
}

// groupedText produces one block per partition, each headed by the label
// vector and the partition's row count:
//
//	[category: A | subcategory: X] (2)
//	1;2
//
// Blocks follow ascending natural order of the label vector, compared level
// by level, not first-occurrence order.
func (e *Extractor) groupedText(rows []Row) string {
	var b strings.Builder
	for _, p := range partitionRows(rows) {
		fmt.Fprintf(&b, "[%s] (%d)\n%s\n\n", p.header(), len(p.rows), e.flatJoin(p.rows))
	}
	return b.String()
}

// partition is the set of rows sharing one label vector value.
type partition struct {
	labels []Label
	rows   []Row
}

// header renders the label vector as "name: value" pairs joined by " | ".
// A single level has no pipe join.
func (p partition) header() string {
	parts := lo.Map(p.labels, func(l Label, _ int) string {
		return fmt.Sprintf("%s: %s", l.Name, formatValue(l.Value))
	})
	return strings.Join(parts, " | ")
}

// partitionRows splits rows by their full label vector, preserving row order
// within each partition, and orders the partitions by ascending label vector.
func partitionRows(rows []Row) []partition {
	keys := make([]string, 0, len(rows))
	byKey := make(map[string][]Row, len(rows))
	for _, r := range rows {
		k := r.labelKey()
		if _, ok := byKey[k]; !ok {
			keys = append(keys, k)
		}
		byKey[k] = append(byKey[k], r)
	}
	parts := lo.Map(keys, func(k string, _ int) partition {
		return partition{labels: byKey[k][0].Labels, rows: byKey[k]}
	})
	slices.SortStableFunc(parts, func(a, b partition) int {
		return compareLabels(a.labels, b.labels)
	})
	return parts
}
