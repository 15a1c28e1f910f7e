package input

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/sourcegraph/go-diff/diff"
)

// ReadDiff parses a unified diff and returns one Source per changed file,
// holding only the lines the diff adds. Files without added lines are dropped.
func (l *Loader) ReadDiff(name string, r io.Reader) ([]Source, error) {
	data, err := l.readAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", name, err)
	}
	fileDiffs, err := diff.ParseMultiFileDiff(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing diff %s: %w", name, err)
	}

	sources := make([]Source, 0, len(fileDiffs))
	for _, d := range fileDiffs {
		fileName := diffFileName(d)
		if l.ignored(fileName) {
			continue
		}
		lines := make([]string, 0)
		for _, hunk := range d.Hunks {
			lines = append(lines, addedLines(hunk)...)
		}
		if len(lines) == 0 {
			continue
		}
		sources = append(sources, Source{
			Name:    fileName,
			Charset: "UTF-8",
			Text:    strings.Join(lines, "\n") + "\n",
			Lines:   lines,
		})
	}
	return sources, nil
}

func diffFileName(d *diff.FileDiff) string {
	name := d.NewName
	if name == "/dev/null" || name == "" {
		name = d.OrigName
	}
	for _, prefix := range []string{"a/", "b/"} {
		if strings.HasPrefix(name, prefix) {
			return name[len(prefix):]
		}
	}
	return name
}

func addedLines(hunk *diff.Hunk) []string {
	lines := make([]string, 0, hunk.NewLines)
	scanner := bufio.NewScanner(bytes.NewReader(hunk.Body))
	scanner.Buffer(make([]byte, 0, 64*1024), 16<<20)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "+") {
			lines = append(lines, strings.TrimSuffix(line[1:], "\r"))
		}
	}
	return lines
}
