package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	f "github.com/multimediallc/unicoder/pkg/functional"
)

type Format string

const (
	FormatDefault Format = "default"
	FormatJSON    Format = "json"
)

var allowedFormats = []string{string(FormatDefault), string(FormatJSON)}

func ValidateFormat(format string) (Format, error) {
	for _, allowed := range allowedFormats {
		if format == allowed {
			return Format(format), nil
		}
	}
	return "", fmt.Errorf("invalid format %s. Must be one of %s", format, strings.Join(allowedFormats, ", "))
}

func Write(w io.Writer, format Format, reports []*Report) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, reports)
	case FormatDefault, "":
		return WriteText(w, reports)
	}
	return fmt.Errorf("invalid format %s", format)
}

func WriteJSON(w io.Writer, reports []*Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(reports)
}

// errWriter remembers the first write error so the text layout can be printed without checks on every line
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) characters(characters []Character) {
	for _, c := range characters {
		ew.printf("%s\t%s\t%s\t%s\n", c.Char, c.UHex, c.UTF8, c.Block)
	}
}

func WriteText(w io.Writer, reports []*Report) error {
	ew := &errWriter{w: w}
	for _, r := range reports {
		writeReport(ew, r)
	}
	return ew.err
}

func writeReport(ew *errWriter, r *Report) {
	if r.Charset != "" {
		ew.printf("File: %s (%s)\n", r.Source, r.Charset)
	}
	ew.printf("Source:\n%s\n\n", r.Text)

	for _, s := range []*Section{r.Exact, r.AllCase} {
		if s == nil {
			continue
		}
		ew.printf("Used characters (%s): %d\n%s\n\n", s.Label, s.Count, s.Characters)
		blocks := f.Map(s.Blocks, func(b Block) string { return b.String() })
		ew.printf("Used Unicode blocks (%s):\n%s\n\n", s.Label, strings.Join(blocks, "\n"))
		ew.printf("Used Unicode codepoints info [char U+0000 UTF-8 Unicode Block] (%s): %d\n", s.Label, s.Count)
		ew.characters(s.Info)
		ew.printf("\n")
	}

	if r.Detail == nil {
		return
	}
	ew.printf("Source Unicode codepoints U+0000:\n")
	for _, line := range r.Detail.Codepoints {
		ew.printf("%s\n", line)
	}
	ew.printf("\n")

	ew.printf("Source %s bytes (+LF):\n", strings.ToUpper(r.Detail.Encoding))
	for _, line := range r.Detail.Bytes {
		ew.printf("%s\n", line)
	}
	ew.printf("\n")

	ew.printf("Source Unicode info:\n")
	ew.characters(r.Detail.Info)
	ew.printf("\n")
}
