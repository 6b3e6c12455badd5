// Package wanted loads the list of printings to export from a file.
//
// Supported formats, chosen by file extension:
//
//	.json  [["172", "m10"], ["51", "isd"]]        collector number, set
//	.toml  [[card]] set = "m10" collector_number = "172"
//	.yaml  - {set: m10, collector_number: "172"}
//	.txt   m10 172                                  one per line, # comments
package wanted

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/arcanaland/ttsforge/internal/card"
)

// Format is a wanted-list file format
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatText Format = "txt"
)

// Entry is one printing in a TOML or YAML wanted list
type Entry struct {
	Set             string `toml:"set" yaml:"set"`
	CollectorNumber string `toml:"collector_number" yaml:"collector_number"`
}

type tomlList struct {
	Cards []Entry `toml:"card"`
}

// FormatOf picks the format from a file extension
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".txt", "":
		return FormatText, nil
	}
	return "", fmt.Errorf("unsupported wanted list format: %s", path)
}

// Load reads a wanted list file
func Load(path string) (card.Wanted, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening wanted list: %w", err)
	}
	defer f.Close()

	w, err := Parse(format, f)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return w, nil
}

// Parse reads a wanted list in the given format
func Parse(format Format, r io.Reader) (card.Wanted, error) {
	var entries []Entry

	switch format {
	case FormatJSON:
		var pairs [][]string
		if err := json.NewDecoder(r).Decode(&pairs); err != nil {
			return nil, err
		}
		for i, p := range pairs {
			if len(p) != 2 {
				return nil, fmt.Errorf("entry %d: expected [collector_number, set], got %d values", i, len(p))
			}
			entries = append(entries, Entry{CollectorNumber: p[0], Set: p[1]})
		}

	case FormatTOML:
		var list tomlList
		if _, err := toml.NewDecoder(r).Decode(&list); err != nil {
			return nil, err
		}
		entries = list.Cards

	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&entries); err != nil && err != io.EOF {
			return nil, err
		}

	case FormatText:
		var err error
		if entries, err = parseText(r); err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("unsupported wanted list format: %q", format)
	}

	w := card.NewWanted()
	for i, e := range entries {
		k := key(e)
		if k.Set == "" || k.CollectorNumber == "" {
			return nil, fmt.Errorf("entry %d: set and collector_number are required", i)
		}
		w.Add(k)
	}
	return w, nil
}

func parseText(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := scanner.Text()
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected \"set collector_number\"", n)
		}
		entries = append(entries, Entry{Set: fields[0], CollectorNumber: fields[1]})
	}
	return entries, scanner.Err()
}

// key normalizes an entry; catalog set codes are lowercase
func key(e Entry) card.Key {
	return card.Key{
		CollectorNumber: strings.TrimSpace(e.CollectorNumber),
		Set:             strings.ToLower(strings.TrimSpace(e.Set)),
	}
}
