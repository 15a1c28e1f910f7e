package unicodeblock

import (
	"fmt"
	"slices"
	"sort"
)

// BlockRange is one contiguous, named Unicode block. Low and High are inclusive.
type BlockRange struct {
	Low      uint32
	High     uint32
	Name     string
	Assigned int
	Scripts  string
}

// Unknown is returned for any codepoint not covered by a catalogued block
var Unknown = BlockRange{Low: 0, High: 0, Name: "Unknown"}

func (b BlockRange) String() string {
	return fmt.Sprintf("%s (U+%04X..U+%04X)", b.Name, b.Low, b.High)
}

func (b BlockRange) Contains(cp rune) bool {
	return cp >= 0 && uint32(cp) >= b.Low && uint32(cp) <= b.High
}

func (b BlockRange) IsUnknown() bool {
	return b == Unknown
}

// Table is the immutable, ordered catalogue of Unicode blocks.
// It is safe for concurrent use once constructed.
type Table struct {
	blocks []BlockRange
}

// NewTable validates the given ranges and returns a Table over a private copy of them.
// Ranges must be non-empty, sorted by Low and non-overlapping.
func NewTable(blocks []BlockRange) (*Table, error) {
	for i, b := range blocks {
		if b.Low > b.High {
			return nil, fmt.Errorf("block %q: low U+%04X is above high U+%04X", b.Name, b.Low, b.High)
		}
		if b.Name == "" {
			return nil, fmt.Errorf("block U+%04X..U+%04X has no name", b.Low, b.High)
		}
		if i > 0 && b.Low <= blocks[i-1].High {
			return nil, fmt.Errorf("block %q overlaps or precedes %q", b.Name, blocks[i-1].Name)
		}
	}
	return &Table{blocks: slices.Clone(blocks)}, nil
}

// MustNewTable is like NewTable but panics on invalid data
func MustNewTable(blocks []BlockRange) *Table {
	t, err := NewTable(blocks)
	if err != nil {
		panic(fmt.Sprintf("unicodeblock: invalid block data: %v", err))
	}
	return t
}

// Default builds the Table from the embedded Unicode block registry.
// A malformed registry is a packaging defect and panics.
func Default() *Table {
	return MustNewTable(registry)
}

// ClassifyCodepoint returns the block owning cp, or Unknown if no block covers it
func (t *Table) ClassifyCodepoint(cp rune) BlockRange {
	if cp < 0 {
		return Unknown
	}
	u := uint32(cp)
	// first block whose High is at or above cp; disjoint sorted ranges make this the only candidate
	i := sort.Search(len(t.blocks), func(i int) bool {
		return t.blocks[i].High >= u
	})
	if i < len(t.blocks) && t.blocks[i].Low <= u {
		return t.blocks[i]
	}
	return Unknown
}

func (t *Table) Len() int {
	return len(t.blocks)
}

// Blocks returns a copy of the catalogue in ascending order
func (t *Table) Blocks() []BlockRange {
	return slices.Clone(t.blocks)
}

// Lookup finds a block by its exact name
func (t *Table) Lookup(name string) (BlockRange, bool) {
	for _, b := range t.blocks {
		if b.Name == name {
			return b, true
		}
	}
	return Unknown, false
}
