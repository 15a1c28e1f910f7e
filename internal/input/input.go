// Package input resolves command line arguments and streams into decoded text sources.
package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/boyter/gocodewalker"
	f "github.com/multimediallc/unicoder/pkg/functional"
)

var ErrNoInput = errors.New("no input text or file given")

const (
	LiteralName = "<text>"
	StdinName   = "<stdin>"
)

// Source is one decoded input, split into lines
type Source struct {
	Name    string
	Charset string
	Text    string
	Lines   []string
}

type Loader struct {
	MaxFileSize   int64
	Ignore        []string
	IncludeHidden bool
	ExcludeDirs   []string
	Glob          bool
	Warn          io.Writer
}

func (l *Loader) warnf(format string, args ...interface{}) {
	if l.Warn != nil {
		_, _ = fmt.Fprintf(l.Warn, format, args...)
	}
}

// Literal joins args with spaces into a single line of text
func Literal(args []string) Source {
	text := strings.Join(args, " ")
	return Source{Name: LiteralName, Text: text, Lines: []string{text}}
}

// Load reads args as paths when the first one names an existing file or
// directory; arguments after it that name nothing are skipped with a warning.
// Otherwise the arguments are literal text. With Glob set every argument is
// a path or doublestar pattern that must match at least one file.
func (l *Loader) Load(args []string) ([]Source, error) {
	if len(args) == 0 {
		return nil, ErrNoInput
	}
	if l.Glob {
		return l.loadPatterns(f.RemoveDuplicates(args))
	}
	if _, err := os.Stat(args[0]); err != nil {
		return []Source{Literal(args)}, nil
	}

	paths := []string{args[0]}
	for _, arg := range args[1:] {
		if _, err := os.Stat(arg); err != nil {
			l.warnf("WARNING: Ignoring %q after %s: no such file or directory\n", arg, args[0])
			continue
		}
		paths = append(paths, arg)
	}

	sources := make([]Source, 0, len(paths))
	for _, path := range f.RemoveDuplicates(paths) {
		loaded, err := l.loadPath(path)
		if err != nil {
			return nil, err
		}
		sources = append(sources, loaded...)
	}
	return sources, nil
}

func (l *Loader) loadPatterns(patterns []string) ([]Source, error) {
	files := make([]string, 0, len(patterns))
	sources := make([]Source, 0, len(patterns))
	for _, pattern := range patterns {
		if stat, err := os.Stat(pattern); err == nil {
			if !stat.IsDir() {
				files = append(files, pattern)
				continue
			}
			walked, err := l.walk(pattern)
			if err != nil {
				return nil, err
			}
			sources = append(sources, walked...)
			continue
		}
		matches, err := l.glob(pattern)
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %s", pattern)
		}
		files = append(files, matches...)
	}

	for _, file := range f.RemoveDuplicates(files) {
		source, err := l.ReadFile(file)
		if errors.Is(err, errBinary) {
			l.warnf("WARNING: Skipping binary file: %s\n", file)
			continue
		}
		if err != nil {
			return nil, err
		}
		sources = append(sources, source)
	}
	return sources, nil
}

func (l *Loader) glob(pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
		return nil, fmt.Errorf("invalid glob pattern: %s", pattern)
	}
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("error expanding %s: %w", pattern, err)
	}
	matches = slices.DeleteFunc(matches, l.ignored)
	slices.Sort(matches)
	return matches, nil
}

func (l *Loader) ignored(path string) bool {
	path = filepath.ToSlash(path)
	for _, pattern := range l.Ignore {
		if match, err := doublestar.Match(pattern, path); err == nil && match {
			return true
		}
	}
	return false
}

func (l *Loader) loadPath(path string) ([]Source, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("no such file: %s", path)
	}
	if stat.IsDir() {
		return l.walk(path)
	}
	source, err := l.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return []Source{source}, nil
}

func stripRoot(root string, path string) string {
	if root == "." {
		return path
	}
	return strings.TrimPrefix(path, strings.TrimSuffix(root, "/")+"/")
}

func (l *Loader) walk(dir string) ([]Source, error) {
	fileListQueue := make(chan *gocodewalker.File, 100)

	walker := gocodewalker.NewFileWalker(dir, fileListQueue)
	walker.IncludeHidden = l.IncludeHidden
	walker.ExcludeDirectory = l.ExcludeDirs

	errChan := make(chan error, 1)

	go func() {
		err := walker.Start()
		errChan <- err
		close(errChan)
	}()

	files := make([]string, 0)
	for file := range fileListQueue {
		if l.ignored(stripRoot(dir, file.Location)) {
			continue
		}
		files = append(files, file.Location)
	}

	if err := <-errChan; err != nil {
		return nil, fmt.Errorf("error walking %s: %w", dir, err)
	}
	slices.Sort(files)

	sources := make([]Source, 0, len(files))
	for _, file := range files {
		source, err := l.ReadFile(file)
		if errors.Is(err, errBinary) {
			l.warnf("WARNING: Skipping binary file: %s\n", file)
			continue
		}
		if err != nil {
			return nil, err
		}
		sources = append(sources, source)
	}
	return sources, nil
}

var errBinary = errors.New("binary file")

func (l *Loader) ReadFile(path string) (Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return Source{}, fmt.Errorf("error opening %s: %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()
	return l.Read(path, file)
}

// Read decodes everything r yields into a Source named name
func (l *Loader) Read(name string, r io.Reader) (Source, error) {
	data, err := l.readAll(r)
	if err != nil {
		return Source{}, fmt.Errorf("error reading %s: %w", name, err)
	}
	if looksBinary(data) {
		return Source{}, fmt.Errorf("%s: %w", name, errBinary)
	}
	text, charset, err := Decode(data)
	if err != nil {
		return Source{}, fmt.Errorf("%s: %w", name, err)
	}
	if charset != "UTF-8" {
		l.warnf("Decoded %s as %s\n", name, charset)
	}
	return Source{Name: name, Charset: charset, Text: text, Lines: SplitLines(text)}, nil
}

func (l *Loader) readAll(r io.Reader) ([]byte, error) {
	if l.MaxFileSize <= 0 {
		return io.ReadAll(r)
	}
	data, err := io.ReadAll(io.LimitReader(r, l.MaxFileSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > l.MaxFileSize {
		return nil, fmt.Errorf("input exceeds max_file_size of %d bytes", l.MaxFileSize)
	}
	return data, nil
}

// looksBinary reports NUL bytes in the head of data that carries no UTF-16 byte order mark
func looksBinary(data []byte) bool {
	if len(data) >= 2 && ((data[0] == 0xFF && data[1] == 0xFE) || (data[0] == 0xFE && data[1] == 0xFF)) {
		return false
	}
	head := data[:min(len(data), 8000)]
	return slices.Contains(head, 0)
}
