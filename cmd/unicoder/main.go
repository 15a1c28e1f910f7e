package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/multimediallc/unicoder/internal/app"
	"github.com/urfave/cli/v2"
)

var globalFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:  "exact",
		Usage: "Show the characters used exactly as written",
	},
	&cli.BoolFlag{
		Name:  "allcase",
		Usage: "Show the characters used after upper and lower casing",
	},
	&cli.BoolFlag{
		Name:  "detailed",
		Usage: "Dump codepoints, encoded bytes and info for every character of the source",
	},
	&cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "Output format.  Allowed values are: default and json",
	},
	&cli.StringFlag{
		Name:    "encoding",
		Aliases: []string{"e"},
		Usage:   "Encoding of the detailed byte dump.  Allowed values are: utf-8 and utf-16",
	},
	&cli.BoolFlag{
		Name:    "glob",
		Aliases: []string{"g"},
		Usage:   "Treat every argument as a file, directory or doublestar glob pattern",
	},
	&cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Value:   ".",
		Usage:   "Directory holding unicoder.toml, or the path of a .toml file",
	},
	&cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "Verbose output",
	},
}

func optionalBool(cCtx *cli.Context, name string) *bool {
	if !cCtx.IsSet(name) {
		return nil
	}
	value := cCtx.Bool(name)
	return &value
}

// session runs one command against a configured App and flushes its log buffers
type session struct {
	stdout io.Writer
	stderr io.Writer
	stdin  func() io.Reader
}

func (s *session) run(cCtx *cli.Context, action func(a *app.App) error) error {
	infoBuffer := bytes.NewBuffer([]byte{})
	warningBuffer := bytes.NewBuffer([]byte{})
	verbose := cCtx.Bool("verbose")

	defer func() {
		_, _ = warningBuffer.WriteTo(s.stderr)
		if verbose {
			_, _ = infoBuffer.WriteTo(s.stderr)
		}
	}()

	a, err := app.New(app.Config{
		ConfigPath:    cCtx.String("config"),
		Exact:         optionalBool(cCtx, "exact"),
		AllCase:       optionalBool(cCtx, "allcase"),
		Detailed:      optionalBool(cCtx, "detailed"),
		Format:        cCtx.String("format"),
		Encoding:      cCtx.String("encoding"),
		Glob:          cCtx.Bool("glob"),
		Verbose:       verbose,
		Stdin:         s.stdin(),
		Output:        s.stdout,
		InfoBuffer:    infoBuffer,
		WarningBuffer: warningBuffer,
	})
	if err != nil {
		return err
	}
	return action(a)
}

func (s *session) inspect(cCtx *cli.Context) error {
	return s.run(cCtx, func(a *app.App) error {
		reports, err := a.Inspect(cCtx.Args().Slice())
		if err != nil {
			return err
		}
		return a.Write(reports)
	})
}

func (s *session) diff(cCtx *cli.Context) error {
	return s.run(cCtx, func(a *app.App) error {
		name := "<stdin>"
		var r io.Reader = s.stdin()
		if cCtx.NArg() > 0 {
			name = cCtx.Args().First()
			file, err := os.Open(name)
			if err != nil {
				return fmt.Errorf("error opening diff: %w", err)
			}
			defer func() {
				_ = file.Close()
			}()
			r = file
		}
		if r == nil {
			return fmt.Errorf("a patch file or a diff piped on stdin is required")
		}
		reports, err := a.InspectDiff(name, r)
		if err != nil {
			return err
		}
		return a.Write(reports)
	})
}

func (s *session) block(cCtx *cli.Context) error {
	if cCtx.NArg() == 0 {
		return fmt.Errorf("at least one codepoint is required")
	}
	return s.run(cCtx, func(a *app.App) error {
		chars, err := a.Classify(cCtx.Args().Slice())
		if err != nil {
			return err
		}
		for _, c := range chars {
			_, _ = fmt.Fprintf(s.stdout, "%s\t%s\t%s\t%s\t%s\n", c.Char, c.UHex, c.UTF8, c.Block, c.Name)
		}
		return nil
	})
}

func (s *session) blocks(cCtx *cli.Context) error {
	return s.run(cCtx, func(a *app.App) error {
		for _, b := range a.Blocks(strings.Join(cCtx.Args().Slice(), " ")) {
			_, _ = fmt.Fprintf(s.stdout, "%s\t%d\t%s\n", b, b.Assigned, b.Scripts)
		}
		return nil
	})
}

func newApp(stdout io.Writer, stderr io.Writer, stdin func() io.Reader) *cli.App {
	s := &session{stdout: stdout, stderr: stderr, stdin: stdin}
	inspectUsage := "unicoder [options] filename|directory|text\n   unicoder --glob [options] pattern..."

	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version",
		Usage: "Print version",
	}
	return &cli.App{
		Name:        "unicoder",
		Usage:       "Show the Unicode characters, blocks and encodings used by text or files",
		UsageText:   inspectUsage,
		Version:     "v1.0.0",
		Description: "Reports the distinct characters of the input, their Unicode blocks and their UTF-8 bytes, both exactly as written and after upper and lower casing.",
		Writer:      stdout,
		ErrWriter:   stderr,
		Flags:       globalFlags,
		Action:      s.inspect,
		Commands: []*cli.Command{
			{
				Name:        "inspect",
				Aliases:     []string{"i"},
				Usage:       "Report characters and blocks of text, files, directories or globs",
				UsageText:   inspectUsage,
				Description: "If the first argument names a file or directory it is loaded, along with any later arguments that exist; the rest are ignored. Otherwise the arguments are joined into one line of text. With --glob every argument is a path or doublestar pattern. Piped stdin is read when no argument is given.",
				Action:      s.inspect,
			},
			{
				Name:        "diff",
				Aliases:     []string{"d"},
				Usage:       "Report characters added by a unified diff",
				UsageText:   "unicoder [options] diff [patch-file]",
				Description: "Only the lines the diff adds are inspected, one report per changed file. The diff is read from stdin when no patch file is given.",
				Action:      s.diff,
			},
			{
				Name:        "block",
				Aliases:     []string{"b"},
				Usage:       "Classify codepoints",
				UsageText:   "unicoder block <U+XXXX|0xXXXX|XXXX|char>...",
				Description: "Codepoints above U+FFFF are classified per UTF-16 surrogate code unit, the same way inspect classifies them.",
				Action:      s.block,
			},
			{
				Name:      "blocks",
				Usage:     "List the Unicode blocks, optionally filtered by name",
				UsageText: "unicoder blocks [name]",
				Action:    s.blocks,
			},
		},
	}
}

func main() {
	err := newApp(os.Stdout, os.Stderr, pipedStdin).Run(os.Args)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
