package config

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/zWesleyDavid/prototipo-luvr/internal/domain"
	"github.com/zWesleyDavid/prototipo-luvr/internal/log"
	"github.com/zWesleyDavid/prototipo-luvr/internal/paths"
)

// ReadLines returns the lines of the config file. A missing or empty file is
// initialized with the visible default keys.
func ReadLines() ([]string, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	lines, err := ReadLinesAt(configPath)
	if err != nil {
		return nil, err
	}

	if len(lines) == 0 {
		lines = initializeDefaults()
		if err := WriteLinesAt(configPath, lines); err != nil {
			log.Warn("config: could not write default config: %v", err)
		}
	}

	return lines, nil
}

// ReadLinesAt reads the file at path line by line. A missing file yields no lines.
func ReadLinesAt(path string) ([]string, error) {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	if err := os.Chmod(path, 0600); err != nil {
		log.Warn("config: could not set permissions on %s: %v", path, err)
	}

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// initializeDefaults creates config lines with default values for visible keys.
func initializeDefaults() []string {
	lines := []string{
		"# luvr configuration",
		"# Edit values below or use: luvr config set <key> <value>",
		"",
	}

	for _, key := range domain.VisibleConfigKeys() {
		value := key.Default
		if fn, ok := Defaults[key.Name]; ok {
			value = fn()
		}
		lines = append(lines, key.Name+"="+FormatValue(value))
	}

	return lines
}
