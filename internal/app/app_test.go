package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/multimediallc/unicoder/internal/config"
	"github.com/multimediallc/unicoder/internal/input"
	"github.com/multimediallc/unicoder/pkg/hexfmt"
)

func boolPtr(b bool) *bool {
	return &b
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return dir
}

func TestNewResolvesOptions(t *testing.T) {
	tests := []struct {
		name         string
		configFile   string
		cfg          Config
		wantExact    bool
		wantAllCase  bool
		wantDetailed bool
		wantEncoding hexfmt.Encoding
		wantErr      bool
	}{
		{
			name:         "defaults show both sections",
			cfg:          Config{},
			wantExact:    true,
			wantAllCase:  true,
			wantEncoding: hexfmt.UTF8,
		},
		{
			name:         "exact flag hides allcase",
			cfg:          Config{Exact: boolPtr(true)},
			wantExact:    true,
			wantAllCase:  false,
			wantEncoding: hexfmt.UTF8,
		},
		{
			name:         "config file values",
			configFile:   "allcase = true\ndetailed = true\nencoding = \"utf-16\"\n",
			wantExact:    false,
			wantAllCase:  true,
			wantDetailed: true,
			wantEncoding: hexfmt.UTF16,
		},
		{
			name:         "flags override config file",
			configFile:   "allcase = true\ndetailed = true\n",
			cfg:          Config{AllCase: boolPtr(false), Detailed: boolPtr(false), Encoding: "utf8"},
			wantExact:    true,
			wantAllCase:  true,
			wantDetailed: false,
			wantEncoding: hexfmt.UTF8,
		},
		{
			name:    "invalid format",
			cfg:     Config{Format: "xml"},
			wantErr: true,
		},
		{
			name:    "unsupported encoding",
			cfg:     Config{Encoding: "latin1"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			cfg.ConfigPath = t.TempDir()
			if tt.configFile != "" {
				cfg.ConfigPath = writeConfig(t, tt.configFile)
			}
			a, err := New(cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			opts := a.Options()
			if opts.Exact != tt.wantExact || opts.AllCase != tt.wantAllCase || opts.Detailed != tt.wantDetailed {
				t.Errorf("Options() = %+v", opts)
			}
			if opts.Encoding != tt.wantEncoding {
				t.Errorf("Encoding = %q, want %q", opts.Encoding, tt.wantEncoding)
			}
		})
	}
}

func TestNewUnsupportedEncodingError(t *testing.T) {
	_, err := New(Config{ConfigPath: t.TempDir(), Encoding: "latin1"})
	if !errors.Is(err, hexfmt.ErrUnsupportedEncoding) {
		t.Errorf("New() error = %v, want ErrUnsupportedEncoding", err)
	}
}

func TestNewWarnsOnBadConfig(t *testing.T) {
	warn := &bytes.Buffer{}
	a, err := New(Config{ConfigPath: writeConfig(t, "detailed = nope\n"), WarningBuffer: warn})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if !strings.Contains(warn.String(), "using default config") {
		t.Errorf("expected config warning, got %q", warn.String())
	}
	if a.Conf == nil || a.Conf.Format != "default" {
		t.Errorf("expected default config, got %+v", a.Conf)
	}
}

func TestInspectLiteral(t *testing.T) {
	out := &bytes.Buffer{}
	a, err := New(Config{ConfigPath: t.TempDir(), Output: out})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	reports, err := a.Inspect([]string{"Ab1"})
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}
	if len(reports) != 1 || reports[0].Source != input.LiteralName {
		t.Fatalf("Inspect() = %+v", reports)
	}
	if reports[0].Exact.Characters != "1Ab" || reports[0].AllCase.Characters != "1ABab" {
		t.Errorf("sections = %+v %+v", reports[0].Exact, reports[0].AllCase)
	}
	if err := a.Write(reports); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.Contains(out.String(), "Used characters (exact): 3\n1Ab\n") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestInspectStdin(t *testing.T) {
	info := &bytes.Buffer{}
	a, err := New(Config{
		ConfigPath: t.TempDir(),
		Stdin:      strings.NewReader("ß\n"),
		Verbose:    true,
		InfoBuffer: info,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	reports, err := a.Inspect(nil)
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}
	if len(reports) != 1 || reports[0].Source != input.StdinName {
		t.Fatalf("Inspect() = %+v", reports)
	}
	if reports[0].AllCase.Characters != "Sß" {
		t.Errorf("allcase = %q, want Sß", reports[0].AllCase.Characters)
	}
	if !strings.Contains(info.String(), "Classifying <stdin>: 1 lines") {
		t.Errorf("expected debug output, got %q", info.String())
	}
}

func TestInspectNoInput(t *testing.T) {
	a, err := New(Config{ConfigPath: t.TempDir()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := a.Inspect(nil); !errors.Is(err, input.ErrNoInput) {
		t.Errorf("Inspect(nil) error = %v, want ErrNoInput", err)
	}
}

func TestInspectDirectoryHonorsConfigIgnore(t *testing.T) {
	configDir := writeConfig(t, "ignore = [\"*.log\"]\n")
	dataDir := t.TempDir()
	for name, content := range map[string]string{"keep.txt": "ok", "drop.log": "no"} {
		if err := os.WriteFile(filepath.Join(dataDir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	a, err := New(Config{ConfigPath: configDir})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	reports, err := a.Inspect([]string{dataDir})
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}
	if len(reports) != 1 || reports[0].Source != filepath.Join(dataDir, "keep.txt") {
		t.Errorf("Inspect(dir) = %d reports", len(reports))
	}
}

func TestInspectDiff(t *testing.T) {
	patch := "--- a/x.txt\n+++ b/x.txt\n@@ -1,1 +1,2 @@\n keep\n+Ωmega\n"
	warn := &bytes.Buffer{}
	a, err := New(Config{ConfigPath: t.TempDir(), WarningBuffer: warn})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	reports, err := a.InspectDiff("patch", strings.NewReader(patch))
	if err != nil {
		t.Fatalf("InspectDiff() error = %v", err)
	}
	if len(reports) != 1 || reports[0].Source != "x.txt" {
		t.Fatalf("InspectDiff() = %+v", reports)
	}
	if reports[0].Exact.Characters != "aegmΩ" {
		t.Errorf("exact = %q", reports[0].Exact.Characters)
	}

	reports, err = a.InspectDiff("empty", strings.NewReader(""))
	if err != nil {
		t.Fatalf("InspectDiff() error = %v", err)
	}
	if len(reports) != 0 || !strings.Contains(warn.String(), "empty adds no lines") {
		t.Errorf("expected no reports and a warning, got %d, %q", len(reports), warn.String())
	}
}

func TestParseCodepoint(t *testing.T) {
	tests := []struct {
		arg     string
		want    []rune
		wantErr bool
	}{
		{arg: "U+0041", want: []rune{'A'}},
		{arg: "u+1f600", want: []rune{0xD83D, 0xDE00}},
		{arg: "0x10FFFF", want: []rune{0xDBFF, 0xDFFF}},
		{arg: "FFFF", want: []rune{0xFFFF}},
		{arg: "0xD800", want: []rune{0xD800}},
		{arg: "00E9", want: []rune{0xE9}},
		{arg: "A", want: []rune{'A'}},
		{arg: "😀", want: []rune{0xD83D, 0xDE00}},
		{arg: "U+110000", wantErr: true},
		{arg: "hello", wantErr: true},
		{arg: "U+", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := ParseCodepoint(tt.arg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCodepoint(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("ParseCodepoint(%q) = %U, want %U", tt.arg, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	a, err := New(Config{ConfigPath: t.TempDir()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	chars, err := a.Classify([]string{"U+0041", "0xD800", "U+0870"})
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	blocks := []string{chars[0].Block, chars[1].Block, chars[2].Block}
	if !slices.Equal(blocks, []string{"Basic Latin", "High Surrogates", "Unknown"}) {
		t.Errorf("Classify() blocks = %v", blocks)
	}
	if chars[0].UHex != "U+0041" || chars[0].UTF8 != "41" {
		t.Errorf("Classify()[0] = %+v", chars[0])
	}
	if _, err := a.Classify([]string{"zz"}); err == nil {
		t.Error("expected an error for an invalid codepoint")
	}
}

func TestBlocks(t *testing.T) {
	a, err := New(Config{ConfigPath: t.TempDir()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := len(a.Blocks("")); got != 280 {
		t.Errorf("Blocks(\"\") returned %d blocks, want 280", got)
	}
	exact := a.Blocks("Cyrillic")
	if len(exact) != 1 || exact[0].Name != "Cyrillic" {
		t.Errorf("Blocks(Cyrillic) = %v", exact)
	}
	partial := a.Blocks("surrogates")
	names := make([]string, len(partial))
	for i, b := range partial {
		names[i] = b.Name
	}
	want := []string{"High Surrogates", "High Private Use Surrogates", "Low Surrogates"}
	if !slices.Equal(names, want) {
		t.Errorf("Blocks(surrogates) = %v, want %v", names, want)
	}
}
