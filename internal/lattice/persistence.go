package lattice

import (
	"encoding/json"
	"fmt"

	"rnalattice/internal/core"
)

// boardJSON mirrors the on-disk schema of §6: size, params, units, and a
// handful of optional derived fields populated only on save.
type boardJSON struct {
	Size     [3]int      `json:"size"`
	Params   *paramsJSON `json:"params,omitempty"`
	Units    []unitJSON  `json:"unit,omitempty"`
	Fold     string      `json:"fold,omitempty"`
	Energy   *float64    `json:"energy,omitempty"`
	Sequence string      `json:"sequence,omitempty"`
}

type paramsJSON struct {
	Split float64 `json:"split"`
	Stack float64 `json:"stack"`
	AU    float64 `json:"au"`
	GC    float64 `json:"gc"`
	GU    float64 `json:"gu"`
	Temp  float64 `json:"temp"`
}

type unitJSON struct {
	Base string `json:"base"`
	Pos  [3]int `json:"pos"`
	Rev  bool   `json:"rev,omitempty"`
	Prev *int   `json:"prev,omitempty"`
	Next *int   `json:"next,omitempty"`
}

// MarshalOptions controls which optional derived fields ToJSON populates.
type MarshalOptions struct {
	IncludeFold     bool
	IncludeEnergy   bool
	IncludeSequence bool
}

// ToJSON runs AssertValid, then serializes the board per the §6 schema.
// Derived fields (fold/energy/sequence) are included per opts.
func (b *Board) ToJSON(opts MarshalOptions) ([]byte, error) {
	if err := b.AssertValid(); err != nil {
		return nil, fmt.Errorf("lattice: refusing to serialize invalid board: %w", err)
	}

	doc := boardJSON{
		Size: [3]int{b.XSize, b.YSize, b.ZSize},
		Params: &paramsJSON{
			Split: b.Params.SplitProb,
			Stack: b.Params.StackEnergy,
			AU:    b.Params.AUEnergy,
			GC:    b.Params.GCEnergy,
			GU:    b.Params.GUEnergy,
			Temp:  b.Params.Temp,
		},
	}

	for _, u := range b.unit {
		ju := unitJSON{
			Base: string(u.BaseChar()),
			Pos:  [3]int{u.Pos.X, u.Pos.Y, u.Pos.Z},
			Rev:  u.Rev,
		}
		if u.Prev >= 0 {
			prev := u.Prev
			ju.Prev = &prev
		}
		if u.Next >= 0 {
			next := u.Next
			ju.Next = &next
		}
		doc.Units = append(doc.Units, ju)
	}

	if opts.IncludeFold {
		doc.Fold = b.FoldString()
	}
	if opts.IncludeEnergy {
		e := b.FoldEnergy()
		doc.Energy = &e
	}
	if opts.IncludeSequence {
		doc.Sequence = b.Sequence()
	}

	return json.Marshal(&doc)
}

// FromJSON parses the §6 schema into a new Board. Each unit's index
// equals its array position; every Prev pointer sets the predecessor's
// Next (overriding any stored value), so one-sided links still produce a
// consistent chain. Unknown fields are ignored.
func FromJSON(data []byte) (*Board, error) {
	var doc boardJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	b := New(doc.Size[0], doc.Size[1], doc.Size[2])
	if doc.Params != nil {
		b.Params.SplitProb = doc.Params.Split
		b.Params.StackEnergy = doc.Params.Stack
		b.Params.AUEnergy = doc.Params.AU
		b.Params.GCEnergy = doc.Params.GC
		b.Params.GUEnergy = doc.Params.GU
		b.Params.Temp = doc.Params.Temp
	}

	b.unit = make([]Unit, len(doc.Units))
	for i, ju := range doc.Units {
		if len(ju.Base) == 0 {
			return nil, fmt.Errorf("lattice: unit %d has empty base", i)
		}
		base, err := CharToBase(ju.Base[0])
		if err != nil {
			return nil, fmt.Errorf("lattice: unit %d: %w", i, err)
		}
		prev := -1
		if ju.Prev != nil {
			prev = *ju.Prev
		}
		next := -1
		if ju.Next != nil {
			next = *ju.Next
		}
		b.unit[i] = Unit{
			Base:  base,
			Pos:   core.Vec{X: ju.Pos[0], Y: ju.Pos[1], Z: ju.Pos[2]},
			Rev:   ju.Rev,
			Index: i,
			Prev:  prev,
			Next:  next,
		}
	}

	// Derive Next from Prev to tolerate one-sided links on load.
	for i := range b.unit {
		if b.unit[i].Prev >= 0 {
			b.unit[b.unit[i].Prev].Next = i
		}
	}

	for i := range b.unit {
		b.setCell(b.unit[i].Pos, b.unit[i].Rev, i)
	}

	return b, nil
}
