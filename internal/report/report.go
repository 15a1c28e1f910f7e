package report

import (
	"fmt"

	"github.com/multimediallc/unicoder/internal/input"
	"github.com/multimediallc/unicoder/pkg/classify"
	f "github.com/multimediallc/unicoder/pkg/functional"
	"github.com/multimediallc/unicoder/pkg/hexfmt"
	"github.com/multimediallc/unicoder/pkg/unicodeblock"
	"golang.org/x/text/unicode/runenames"
)

type Options struct {
	Exact    bool
	AllCase  bool
	Detailed bool
	Encoding hexfmt.Encoding
}

// Character is one detail row: the character, its codepoint, bytes and block
type Character struct {
	Char   string `json:"char"`
	UHex   string `json:"codepoint"`
	UTF8   string `json:"utf8"`
	Escape string `json:"escape"`
	Name   string `json:"name,omitempty"`
	Block  string `json:"block"`
}

type Block struct {
	Name string `json:"name"`
	Low  string `json:"low"`
	High string `json:"high"`
}

func (b Block) String() string {
	return fmt.Sprintf("%s (%s..%s)", b.Name, b.Low, b.High)
}

type Section struct {
	Label      string      `json:"label"`
	Count      int         `json:"count"`
	Characters string      `json:"characters"`
	Blocks     []Block     `json:"blocks"`
	Info       []Character `json:"info"`
}

type Detail struct {
	Encoding   string      `json:"encoding"`
	Codepoints []string    `json:"codepoints"`
	Bytes      []string    `json:"bytes"`
	Info       []Character `json:"info"`
}

type Report struct {
	Source  string   `json:"source"`
	Charset string   `json:"charset,omitempty"`
	Text    string   `json:"text"`
	Exact   *Section `json:"exact,omitempty"`
	AllCase *Section `json:"allcase,omitempty"`
	Detail  *Detail  `json:"detail,omitempty"`
}

// NewCharacter renders a detail row, including the character name where one is assigned
func NewCharacter(info classify.CharacterInfo) Character {
	return Character{
		Char:   info.Display(),
		UHex:   info.UHex,
		UTF8:   info.UTF8,
		Escape: info.Escape,
		Name:   runenames.Name(info.Char),
		Block:  info.Block.Name,
	}
}

func newSection(engine *classify.Engine, label string, chars classify.CharacterSet, blocks []unicodeblock.BlockRange) *Section {
	return &Section{
		Label:      label,
		Count:      len(chars),
		Characters: chars.String(),
		Blocks: f.Map(blocks, func(b unicodeblock.BlockRange) Block {
			return Block{Name: b.Name, Low: hexfmt.CodepointUHex(rune(b.Low)), High: hexfmt.CodepointUHex(rune(b.High))}
		}),
		Info: f.Map(engine.DescribeAll(chars), NewCharacter),
	}
}

// Build classifies the source and assembles the sections selected in opts
func Build(engine *classify.Engine, source input.Source, opts Options) (*Report, error) {
	result := engine.Analyze(source.Lines)
	report := &Report{
		Source:  source.Name,
		Charset: source.Charset,
		Text:    source.Text,
	}
	if opts.Exact {
		report.Exact = newSection(engine, "exact", result.Exact, result.ExactBlocks)
	}
	if opts.AllCase {
		report.AllCase = newSection(engine, "upper+lowercase", result.Folded, result.FoldedBlocks)
	}
	if opts.Detailed {
		detail, err := buildDetail(engine, source.Lines, opts.Encoding)
		if err != nil {
			return nil, err
		}
		report.Detail = detail
	}
	return report, nil
}

func buildDetail(engine *classify.Engine, lines []string, enc hexfmt.Encoding) (*Detail, error) {
	if enc == "" {
		enc = hexfmt.UTF8
	}
	detail := &Detail{
		Encoding:   string(enc),
		Codepoints: make([]string, 0, len(lines)),
		Bytes:      make([]string, 0, len(lines)),
		Info:       make([]Character, 0),
	}
	for _, line := range lines {
		units := classify.CodeUnits(line)
		detail.Codepoints = append(detail.Codepoints, hexfmt.CodepointHexString(units))
		b, err := hexfmt.HexBytes(line+"\n", enc)
		if err != nil {
			return nil, fmt.Errorf("error rendering bytes: %w", err)
		}
		detail.Bytes = append(detail.Bytes, b)
		detail.Info = append(detail.Info, f.Map(engine.DescribeAll(units), NewCharacter)...)
	}
	return detail, nil
}
