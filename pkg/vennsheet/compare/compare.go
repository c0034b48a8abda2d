// Package compare partitions two columns into unique and shared values.
package compare

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/ukaji3/vennsheet/pkg/vennsheet/models"
)

// Compare stringifies the non-missing values of a and b and splits their
// union into values only in a, values only in b, and values in both.
// Every output slice is sorted ascending.
func Compare(a, b models.Column) models.Partition {
	setA := toSet(a)
	setB := toSet(b)

	p := models.Partition{
		SetA:    sortedKeys(setA),
		SetB:    sortedKeys(setB),
		UniqueA: []string{},
		UniqueB: []string{},
		Shared:  []string{},
	}
	for _, v := range p.SetA {
		if _, ok := setB[v]; ok {
			p.Shared = append(p.Shared, v)
		} else {
			p.UniqueA = append(p.UniqueA, v)
		}
	}
	for _, v := range p.SetB {
		if _, ok := setA[v]; !ok {
			p.UniqueB = append(p.UniqueB, v)
		}
	}
	return p
}

// ComparePair compares the two columns of a pair.
func ComparePair(pair models.ColumnPair) models.Partition {
	return Compare(pair.A, pair.B)
}

// Stringify returns the text form of a cell value. The boolean is false for
// missing values (nil and NaN).
func Stringify(v interface{}) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, true
	case float64:
		return formatFloat(x)
	case float32:
		return formatFloat(float64(x))
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case int32:
		return strconv.FormatInt(int64(x), 10), true
	case uint:
		return strconv.FormatUint(uint64(x), 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	case bool:
		if x {
			return "True", true
		}
		return "False", true
	case fmt.Stringer:
		return x.String(), true
	default:
		return fmt.Sprint(x), true
	}
}

// formatFloat renders integral values with one decimal ("100.0") and
// everything else in shortest round-trip form.
func formatFloat(f float64) (string, bool) {
	if math.IsNaN(f) {
		return "", false
	}
	if math.IsInf(f, 1) {
		return "inf", true
	}
	if math.IsInf(f, -1) {
		return "-inf", true
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e16 {
		return strconv.FormatFloat(f, 'f', 1, 64), true
	}
	return strconv.FormatFloat(f, 'g', -1, 64), true
}

func toSet(col models.Column) map[string]struct{} {
	set := make(map[string]struct{}, len(col))
	for _, v := range col {
		if s, ok := Stringify(v); ok {
			set[s] = struct{}{}
		}
	}
	return set
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Preview returns at most limit leading elements of list and how many
// elements were left out.
func Preview(list []string, limit int) (head []string, more int) {
	if limit < 0 || len(list) <= limit {
		return list, 0
	}
	return list[:limit], len(list) - limit
}
