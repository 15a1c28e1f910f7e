// Package classify extracts the distinct characters used by a text and maps
// them to their Unicode blocks.
//
// Text is handled as UTF-16 code units: a supplementary character is seen as
// its two surrogate units, each classified on its own (High/Low Surrogates),
// never as the combined scalar value.
package classify

import (
	"cmp"
	"slices"
	"unicode/utf16"

	f "github.com/multimediallc/unicoder/pkg/functional"
	"github.com/multimediallc/unicoder/pkg/hexfmt"
	"github.com/multimediallc/unicoder/pkg/unicodeblock"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CharacterSet is a strictly ascending list of distinct code units
type CharacterSet []rune

// String joins the units back into text; adjacent surrogate halves pair up again
func (cs CharacterSet) String() string {
	units := make([]uint16, len(cs))
	for i, c := range cs {
		units[i] = uint16(c)
	}
	return string(utf16.Decode(units))
}

func (cs CharacterSet) Contains(c rune) bool {
	_, found := slices.BinarySearch(cs, c)
	return found
}

// CodeUnits splits s into UTF-16 code units
func CodeUnits(s string) []rune {
	encoded := utf16.Encode([]rune(s))
	units := make([]rune, len(encoded))
	for i, u := range encoded {
		units[i] = rune(u)
	}
	return units
}

func newCharacterSet(s *f.Set[rune]) CharacterSet {
	cs := CharacterSet(s.Items())
	slices.Sort(cs)
	return cs
}

// ExtractCharacterSets returns the code units used verbatim across lines, and
// the code units of every line after full-string upper and lower casing.
// The folded set is computed independently and is not a superset of the exact set in general.
func ExtractCharacterSets(lines []string) (exact CharacterSet, folded CharacterSet) {
	// casers carry state and cannot be shared between goroutines
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)

	exactSet := f.NewSet[rune]()
	foldedSet := f.NewSet[rune]()
	for _, line := range lines {
		exactSet.AddAll(CodeUnits(line)...)
		foldedSet.AddAll(CodeUnits(upper.String(line))...)
		foldedSet.AddAll(CodeUnits(lower.String(line))...)
	}
	return newCharacterSet(exactSet), newCharacterSet(foldedSet)
}

// CharacterInfo is the per-character detail row of a report
type CharacterInfo struct {
	Char   rune
	UHex   string
	UTF8   string
	Escape string
	Block  unicodeblock.BlockRange
}

// Display is the character as printable text. Lone surrogate units render as U+FFFD.
func (ci CharacterInfo) Display() string {
	return string(ci.Char)
}

// Engine classifies characters against a shared, read-only block table
type Engine struct {
	table *unicodeblock.Table
}

func NewEngine(table *unicodeblock.Table) *Engine {
	return &Engine{table: table}
}

func (e *Engine) Table() *unicodeblock.Table {
	return e.table
}

func (e *Engine) Classify(c rune) unicodeblock.BlockRange {
	return e.table.ClassifyCodepoint(c)
}

// BlocksUsedBy returns the distinct blocks touched by chars, ordered by low bound
func (e *Engine) BlocksUsedBy(chars []rune) []unicodeblock.BlockRange {
	seen := f.NewSet[unicodeblock.BlockRange]()
	for _, c := range chars {
		seen.Add(e.table.ClassifyCodepoint(c))
	}
	blocks := seen.Items()
	slices.SortFunc(blocks, func(a, b unicodeblock.BlockRange) int {
		if c := cmp.Compare(a.Low, b.Low); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return blocks
}

func (e *Engine) Describe(c rune) CharacterInfo {
	return CharacterInfo{
		Char:   c,
		UHex:   hexfmt.CodepointUHex(c),
		UTF8:   hexfmt.Utf8HexBytes(string(c)),
		Escape: hexfmt.UnicodeEscape(c),
		Block:  e.table.ClassifyCodepoint(c),
	}
}

func (e *Engine) DescribeAll(chars []rune) []CharacterInfo {
	return f.Map(chars, e.Describe)
}

// Result holds both character sets of a text and the blocks they touch
type Result struct {
	Exact        CharacterSet
	Folded       CharacterSet
	ExactBlocks  []unicodeblock.BlockRange
	FoldedBlocks []unicodeblock.BlockRange
}

func (e *Engine) Analyze(lines []string) Result {
	exact, folded := ExtractCharacterSets(lines)
	return Result{
		Exact:        exact,
		Folded:       folded,
		ExactBlocks:  e.BlocksUsedBy(exact),
		FoldedBlocks: e.BlocksUsedBy(folded),
	}
}
