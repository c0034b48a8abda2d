package models

// Partition is the three-way split of two value sets.
// UniqueA, UniqueB and Shared are disjoint, sorted ascending, and together
// cover the union of SetA and SetB.
type Partition struct {
	SetA    []string `json:"set_a"`
	SetB    []string `json:"set_b"`
	UniqueA []string `json:"unique_a"`
	UniqueB []string `json:"unique_b"`
	Shared  []string `json:"shared"`
}

// Counts holds the cardinalities drawn on a diagram.
type Counts struct {
	UniqueA int `json:"unique_a"`
	UniqueB int `json:"unique_b"`
	Shared  int `json:"shared"`
}

// Counts returns the partition sizes.
func (p Partition) Counts() Counts {
	return Counts{
		UniqueA: len(p.UniqueA),
		UniqueB: len(p.UniqueB),
		Shared:  len(p.Shared),
	}
}
