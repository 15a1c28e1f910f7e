package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const FileName = "unicoder.toml"

// DefaultMaxFileSize caps how much of a single file is loaded (16 MiB)
const DefaultMaxFileSize int64 = 16 << 20

type Config struct {
	Exact       *bool    `toml:"exact"`
	AllCase     *bool    `toml:"allcase"`
	Detailed    bool     `toml:"detailed"`
	Format      string   `toml:"format"`
	Encoding    string   `toml:"encoding"`
	Ignore      []string `toml:"ignore"`
	MaxFileSize int64    `toml:"max_file_size"`
	Walk        *Walk    `toml:"walk"`
}

// Walk controls how directory inputs are traversed
type Walk struct {
	IncludeHidden bool     `toml:"include_hidden"`
	ExcludeDirs   []string `toml:"exclude_dirs"`
}

func defaultConfig() *Config {
	return &Config{
		Exact:       nil,
		AllCase:     nil,
		Detailed:    false,
		Format:      "default",
		Encoding:    "utf-8",
		Ignore:      []string{},
		MaxFileSize: DefaultMaxFileSize,
		Walk:        &Walk{IncludeHidden: false, ExcludeDirs: []string{".git"}},
	}
}

// ReadConfig loads unicoder.toml from path, which is either a directory
// holding the file or the path of a .toml file. A missing file yields the defaults.
func ReadConfig(path string) (*Config, error) {
	fileName := path
	if !strings.HasSuffix(path, ".toml") {
		fileName = filepath.Join(path, FileName)
	}

	defaults := defaultConfig()
	if _, err := os.Stat(fileName); errors.Is(err, os.ErrNotExist) {
		return defaults, nil
	}
	file, err := os.ReadFile(fileName)
	if err != nil {
		return defaults, err
	}
	config := defaultConfig()
	err = toml.Unmarshal(file, &config)
	if err != nil {
		return defaults, err
	}
	if config.Walk == nil {
		config.Walk = defaults.Walk
	}
	if config.MaxFileSize <= 0 {
		config.MaxFileSize = DefaultMaxFileSize
	}
	if config.Format == "" {
		config.Format = defaults.Format
	}
	if config.Encoding == "" {
		config.Encoding = defaults.Encoding
	}
	return config, nil
}

// ShowSections resolves which character set sections to print.
// The exact set is shown unless only allcase was asked for, and vice versa.
func ShowSections(exact, allCase bool) (showExact bool, showAllCase bool) {
	showExact = exact || !allCase
	showAllCase = allCase || !exact
	return showExact, showAllCase
}
