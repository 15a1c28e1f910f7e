package input

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"unicode/utf8"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func names(sources []Source) []string {
	result := make([]string, len(sources))
	for i, s := range sources {
		result[i] = s.Name
	}
	return result
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty", text: "", want: []string{}},
		{name: "single line", text: "abc", want: []string{"abc"}},
		{name: "trailing LF", text: "abc\n", want: []string{"abc"}},
		{name: "LF", text: "a\nb", want: []string{"a", "b"}},
		{name: "CRLF", text: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "CR", text: "a\rb", want: []string{"a", "b"}},
		{name: "blank lines kept", text: "a\n\nb\n", want: []string{"a", "", "b"}},
		{name: "only newline", text: "\n", want: []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitLines(tt.text); !slices.Equal(got, tt.want) {
				t.Errorf("SplitLines(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name        string
		data        []byte
		wantText    string
		wantCharset string
	}{
		{name: "plain utf-8", data: []byte("héllo"), wantText: "héllo", wantCharset: "UTF-8"},
		{name: "utf-8 bom", data: append([]byte{0xEF, 0xBB, 0xBF}, "héllo"...), wantText: "héllo", wantCharset: "UTF-8"},
		{name: "utf-16le bom", data: []byte{0xFF, 0xFE, 'A', 0x00, 0xE9, 0x00}, wantText: "Aé", wantCharset: "UTF-16LE"},
		{name: "utf-16be bom", data: []byte{0xFE, 0xFF, 0x00, 'A', 0x00, 0xE9}, wantText: "Aé", wantCharset: "UTF-16BE"},
		{name: "utf-16le surrogate pair", data: []byte{0xFF, 0xFE, 0x3D, 0xD8, 0x00, 0xDE}, wantText: "😀", wantCharset: "UTF-16LE"},
		{name: "empty", data: []byte{}, wantText: "", wantCharset: "UTF-8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, charset, err := Decode(tt.data)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if text != tt.wantText {
				t.Errorf("Decode() text = %q, want %q", text, tt.wantText)
			}
			if charset != tt.wantCharset {
				t.Errorf("Decode() charset = %q, want %q", charset, tt.wantCharset)
			}
		})
	}
}

func TestDecodeLegacyCharset(t *testing.T) {
	latin1 := []byte("Le caf\xe9 de la gare servait une cr\xe8me br\xfbl\xe9e d\xe9licieuse, et les gar\xe7ons \xe9taient tr\xe8s aimables avec les voyageurs \xe9trangers.")
	text, charset, err := Decode(latin1)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if charset == "" || charset == "UTF-8" {
		t.Errorf("expected a detected legacy charset, got %q", charset)
	}
	if !utf8.ValidString(text) {
		t.Errorf("decoded text is not valid UTF-8: %q", text)
	}
}

func TestLoadLiteral(t *testing.T) {
	loader := &Loader{}
	sources, err := loader.Load([]string{"hello", "wörld"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(sources) != 1 {
		t.Fatalf("Load() returned %d sources, want 1", len(sources))
	}
	if sources[0].Name != LiteralName || !slices.Equal(sources[0].Lines, []string{"hello wörld"}) {
		t.Errorf("Load() = %+v", sources[0])
	}
}

func TestLoadNoInput(t *testing.T) {
	loader := &Loader{}
	if _, err := loader.Load(nil); !errors.Is(err, ErrNoInput) {
		t.Errorf("Load(nil) error = %v, want ErrNoInput", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.txt")
	writeFile(t, path, []byte("first\r\nsecond\r\n"))

	loader := &Loader{}
	sources, err := loader.Load([]string{path})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(sources) != 1 {
		t.Fatalf("Load() returned %d sources, want 1", len(sources))
	}
	got := sources[0]
	if got.Name != path || got.Charset != "UTF-8" {
		t.Errorf("Load() = %+v", got)
	}
	if !slices.Equal(got.Lines, []string{"first", "second"}) {
		t.Errorf("Lines = %q", got.Lines)
	}
	if got.Text != "first\r\nsecond\r\n" {
		t.Errorf("Text = %q", got.Text)
	}
}

func TestLoadFileIgnoresTrailingWords(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	writeFile(t, path, []byte("secret"))

	warn := &bytes.Buffer{}
	loader := &Loader{Warn: warn}
	sources, err := loader.Load([]string{path, "is", "fine", path})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := names(sources); !slices.Equal(got, []string{path}) {
		t.Errorf("Load() = %v, want only %s", got, path)
	}
	if !strings.Contains(warn.String(), `Ignoring "is"`) || !strings.Contains(warn.String(), `Ignoring "fine"`) {
		t.Errorf("expected warnings for the extra words, got %q", warn.String())
	}
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.txt"), []byte("bee"))
	writeFile(t, filepath.Join(dir, "a.txt"), []byte("ay"))
	writeFile(t, filepath.Join(dir, "sub", "c.md"), []byte("sea"))
	writeFile(t, filepath.Join(dir, "skip", "d.txt"), []byte("dee"))
	writeFile(t, filepath.Join(dir, ".hidden"), []byte("hidden"))
	writeFile(t, filepath.Join(dir, "image.bin"), []byte{0x89, 'P', 'N', 'G', 0x00, 0x01})

	warn := &bytes.Buffer{}
	loader := &Loader{Ignore: []string{"skip/**"}, ExcludeDirs: []string{".git"}, Warn: warn}
	sources, err := loader.Load([]string{dir})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.txt"),
		filepath.Join(dir, "sub", "c.md"),
	}
	if got := names(sources); !slices.Equal(got, want) {
		t.Errorf("Load(dir) = %v, want %v", got, want)
	}
	if !strings.Contains(warn.String(), "Skipping binary file") {
		t.Errorf("expected binary file warning, got %q", warn.String())
	}
}

func TestLoadGlob(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "one.txt"), []byte("1"))
	writeFile(t, filepath.Join(dir, "nested", "two.txt"), []byte("2"))
	writeFile(t, filepath.Join(dir, "three.md"), []byte("3"))

	loader := &Loader{Glob: true}
	pattern := filepath.Join(dir, "**", "*.txt")
	sources, err := loader.Load([]string{pattern, filepath.Join(dir, "one.txt"), pattern})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := []string{
		filepath.Join(dir, "nested", "two.txt"),
		filepath.Join(dir, "one.txt"),
	}
	if got := names(sources); !slices.Equal(got, want) {
		t.Errorf("Load(glob) = %v, want %v", got, want)
	}
}

func TestLoadGlobErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "one.txt"), []byte("1"))

	tests := []struct {
		name    string
		pattern string
		errMsg  string
	}{
		{name: "no matches", pattern: filepath.Join(dir, "*.md"), errMsg: "no files match"},
		{name: "invalid pattern", pattern: filepath.Join(dir, "[a"), errMsg: "invalid glob pattern"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := &Loader{Glob: true}
			_, err := loader.Load([]string{tt.pattern})
			if err == nil || !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("Load(%q) error = %v, want %q", tt.pattern, err, tt.errMsg)
			}
		})
	}
}

func TestLoadGlobMetacharactersAreLiteral(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "notes.txt"), []byte("secret"))
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	loader := &Loader{}
	for _, text := range []string{"*", "*.txt", "what?", "[x]", "a*b"} {
		sources, err := loader.Load([]string{text})
		if err != nil {
			t.Fatalf("Load(%q) error = %v", text, err)
		}
		if len(sources) != 1 || sources[0].Name != LiteralName || sources[0].Text != text {
			t.Errorf("Load(%q) should be literal text, got %+v", text, sources)
		}
	}
}

func TestReadMaxFileSize(t *testing.T) {
	loader := &Loader{MaxFileSize: 4}
	if _, err := loader.Read("big", strings.NewReader("12345")); err == nil {
		t.Error("expected an error for input above max_file_size")
	}
	source, err := loader.Read("small", strings.NewReader("1234"))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if source.Text != "1234" {
		t.Errorf("Read() text = %q", source.Text)
	}
}

func TestReadBinary(t *testing.T) {
	loader := &Loader{}
	_, err := loader.Read("blob", bytes.NewReader([]byte{'a', 0x00, 'b'}))
	if !errors.Is(err, errBinary) {
		t.Errorf("Read() error = %v, want binary file error", err)
	}
}

func TestReadWarnsOnLegacyCharset(t *testing.T) {
	warn := &bytes.Buffer{}
	loader := &Loader{Warn: warn}
	if _, err := loader.Read("utf16", bytes.NewReader([]byte{0xFF, 0xFE, 'A', 0x00})); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !strings.Contains(warn.String(), "Decoded utf16 as UTF-16LE") {
		t.Errorf("expected decode warning, got %q", warn.String())
	}
}
