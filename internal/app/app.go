package app

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/multimediallc/unicoder/internal/config"
	"github.com/multimediallc/unicoder/internal/input"
	"github.com/multimediallc/unicoder/internal/report"
	"github.com/multimediallc/unicoder/pkg/classify"
	f "github.com/multimediallc/unicoder/pkg/functional"
	"github.com/multimediallc/unicoder/pkg/hexfmt"
	"github.com/multimediallc/unicoder/pkg/unicodeblock"
)

// Config holds the command line settings. Nil or empty fields fall back to unicoder.toml.
type Config struct {
	ConfigPath    string
	Exact         *bool
	AllCase       *bool
	Detailed      *bool
	Format        string
	Encoding      string
	Glob          bool
	Verbose       bool
	Stdin         io.Reader
	Output        io.Writer
	InfoBuffer    io.Writer
	WarningBuffer io.Writer
}

// App represents the application with its dependencies
type App struct {
	Conf    *config.Config
	config  *Config
	engine  *classify.Engine
	loader  *input.Loader
	options report.Options
	format  report.Format
}

func pick(flag *bool, file *bool, fallback bool) bool {
	if flag != nil {
		return *flag
	}
	if file != nil {
		return *file
	}
	return fallback
}

// New reads unicoder.toml, resolves the report options and builds the block table
func New(cfg Config) (*App, error) {
	if cfg.InfoBuffer == nil {
		cfg.InfoBuffer = io.Discard
	}
	if cfg.WarningBuffer == nil {
		cfg.WarningBuffer = io.Discard
	}
	if cfg.Output == nil {
		cfg.Output = io.Discard
	}
	a := &App{config: &cfg}

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "."
	}
	conf, err := config.ReadConfig(configPath)
	if err != nil {
		a.printWarn("Error reading %s - using default config: %v\n", config.FileName, err)
	}
	a.Conf = conf

	formatName := conf.Format
	if cfg.Format != "" {
		formatName = cfg.Format
	}
	format, err := report.ValidateFormat(formatName)
	if err != nil {
		return nil, err
	}
	encodingName := conf.Encoding
	if cfg.Encoding != "" {
		encodingName = cfg.Encoding
	}
	encoding, err := hexfmt.ParseEncoding(encodingName)
	if err != nil {
		return nil, err
	}

	showExact, showAllCase := config.ShowSections(pick(cfg.Exact, conf.Exact, false), pick(cfg.AllCase, conf.AllCase, false))
	a.format = format
	a.options = report.Options{
		Exact:    showExact,
		AllCase:  showAllCase,
		Detailed: pick(cfg.Detailed, &conf.Detailed, false),
		Encoding: encoding,
	}

	a.engine = classify.NewEngine(unicodeblock.Default())
	a.loader = &input.Loader{
		MaxFileSize:   conf.MaxFileSize,
		Ignore:        conf.Ignore,
		IncludeHidden: conf.Walk.IncludeHidden,
		ExcludeDirs:   conf.Walk.ExcludeDirs,
		Glob:          cfg.Glob,
		Warn:          cfg.WarningBuffer,
	}
	a.printDebug("Loaded %d Unicode blocks\n", a.engine.Table().Len())
	a.printDebug("Options: %+v, format %s\n", a.options, a.format)
	return a, nil
}

func (a *App) printDebug(format string, args ...interface{}) {
	if a.config.Verbose {
		_, _ = fmt.Fprintf(a.config.InfoBuffer, format, args...)
	}
}

func (a *App) printWarn(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(a.config.WarningBuffer, format, args...)
}

func (a *App) Options() report.Options {
	return a.options
}

func (a *App) build(sources []input.Source) ([]*report.Report, error) {
	reports := make([]*report.Report, 0, len(sources))
	for _, source := range sources {
		a.printDebug("Classifying %s: %d lines\n", source.Name, len(source.Lines))
		r, err := report.Build(a.engine, source, a.options)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", source.Name, err)
		}
		reports = append(reports, r)
	}
	return reports, nil
}

// Inspect loads args as files, directories, literal text or, with Glob set, doublestar patterns.
// With no args the configured stdin is read instead.
func (a *App) Inspect(args []string) ([]*report.Report, error) {
	var sources []input.Source
	if len(args) == 0 && a.config.Stdin != nil {
		source, err := a.loader.Read(input.StdinName, a.config.Stdin)
		if err != nil {
			return nil, err
		}
		sources = []input.Source{source}
	} else {
		loaded, err := a.loader.Load(args)
		if err != nil {
			return nil, err
		}
		sources = loaded
	}
	return a.build(sources)
}

// InspectDiff reports only the lines a unified diff adds
func (a *App) InspectDiff(name string, r io.Reader) ([]*report.Report, error) {
	sources, err := a.loader.ReadDiff(name, r)
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		a.printWarn("WARNING: %s adds no lines\n", name)
	}
	return a.build(sources)
}

func (a *App) Write(reports []*report.Report) error {
	return report.Write(a.config.Output, a.format, reports)
}

// ParseCodepoint reads U+XXXX, 0xXXXX, a single character, or bare hex digits.
// Supplementary codepoints yield their two surrogate code units however they are spelled.
func ParseCodepoint(arg string) ([]rune, error) {
	hexDigits := ""
	switch {
	case strings.HasPrefix(arg, "U+"), strings.HasPrefix(arg, "u+"), strings.HasPrefix(arg, "0x"), strings.HasPrefix(arg, "0X"):
		hexDigits = arg[2:]
	case utf8.RuneCountInString(arg) == 1:
		return classify.CodeUnits(arg), nil
	default:
		hexDigits = arg
	}
	cp, err := strconv.ParseUint(hexDigits, 16, 32)
	if err != nil || cp > 0x10FFFF {
		return nil, fmt.Errorf("invalid codepoint %q", arg)
	}
	if cp > 0xFFFF {
		return classify.CodeUnits(string(rune(cp))), nil
	}
	return []rune{rune(cp)}, nil
}

// Classify describes every codepoint named in args
func (a *App) Classify(args []string) ([]report.Character, error) {
	chars := make([]rune, 0, len(args))
	for _, arg := range args {
		cps, err := ParseCodepoint(arg)
		if err != nil {
			return nil, err
		}
		chars = append(chars, cps...)
	}
	return f.Map(a.engine.DescribeAll(chars), report.NewCharacter), nil
}

// Blocks lists the catalogue, optionally only the blocks whose name contains filter
func (a *App) Blocks(filter string) []unicodeblock.BlockRange {
	if filter != "" {
		if b, ok := a.engine.Table().Lookup(filter); ok {
			return []unicodeblock.BlockRange{b}
		}
	}
	filter = strings.ToLower(filter)
	return f.Filtered(a.engine.Table().Blocks(), func(b unicodeblock.BlockRange) bool {
		return strings.Contains(strings.ToLower(b.Name), filter)
	})
}
