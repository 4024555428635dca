package logs

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/zWesleyDavid/prototipo-luvr/internal/ui/style"
)

const defaultLogLimit = 50

// ViewOptions controls `luvr logs`.
type ViewOptions struct {
	Limit int
	JSON  bool
}

// View shows the last N lines of the log file
func View(opts ViewOptions) error {
	return view(opts, DefaultDeps())
}

func view(opts ViewOptions, deps Deps) error {
	logPath := deps.LogFilePath()

	// Check if log file exists
	info, err := deps.Stat(logPath)
	if os.IsNotExist(err) {
		if opts.JSON {
			_, _ = deps.Println("[]")
		} else {
			_, _ = deps.Println(style.Muted("No log file found at " + logPath))
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat log file: %w", err)
	}

	if info.Size() == 0 {
		if opts.JSON {
			_, _ = deps.Println("[]")
		} else {
			_, _ = deps.Println(style.Muted("Log file is empty"))
		}
		return nil
	}

	content, err := deps.ReadFile(logPath)
	if err != nil {
		return fmt.Errorf("read log file: %w", err)
	}

	lines := strings.Split(string(content), "\n")

	// Remove empty trailing line if present
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultLogLimit
	}

	start := 0
	if len(lines) > limit {
		start = len(lines) - limit
	}

	if opts.JSON {
		return viewJSON(lines[start:], deps)
	}

	for _, line := range lines[start:] {
		_, _ = deps.Println(colorizeLogLine(line))
	}

	return nil
}

// logEntryRegex matches lines like: [2025-01-29 10:30:45] INFO: theme: mode=dark applied=dark
var logEntryRegex = regexp.MustCompile(`^\[([^\]]+)\]\s+(DEBUG|INFO|WARN|ERROR):\s*(.*)$`)

type logEntry struct {
	Timestamp string `json:"timestamp,omitempty"`
	Level     string `json:"level,omitempty"`
	Component string `json:"component,omitempty"`
	Message   string `json:"message"`
	Raw       string `json:"raw,omitempty"`
}

// parseLine splits a log line. Messages prefixed with "name: " report name
// as the component.
func parseLine(line string) logEntry {
	matches := logEntryRegex.FindStringSubmatch(line)
	if matches == nil {
		return logEntry{Message: line, Raw: line}
	}

	e := logEntry{Timestamp: matches[1], Level: matches[2], Message: matches[3]}
	if component, rest, ok := strings.Cut(e.Message, ": "); ok && !strings.ContainsAny(component, " \t") {
		e.Component = component
		e.Message = rest
	}
	return e
}

func viewJSON(lines []string, deps Deps) error {
	entries := make([]logEntry, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		entries = append(entries, parseLine(line))
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, _ = deps.Println(string(data))
	return nil
}

// Tail follows the log file until ctx is done.
func Tail(ctx context.Context) error {
	return tail(ctx, DefaultDeps())
}

func tail(ctx context.Context, deps Deps) error {
	logPath := deps.LogFilePath()

	file, err := deps.OpenFile(logPath, os.O_RDONLY|os.O_CREATE, 0600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seek log file: %w", err)
	}

	_, _ = deps.Println(style.Muted("Following logs at " + logPath + " (Ctrl+C to stop)"))
	_, _ = deps.Println("")

	interval := deps.PollInterval
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	reader := bufio.NewReader(file)
	var partial string
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("read log file: %w", err)
		}
		if err == nil {
			_, _ = deps.Println(colorizeLogLine(strings.TrimSuffix(partial+line, "\n")))
			partial = ""
			continue
		}

		// EOF: keep the unterminated tail for the next read.
		partial += line
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Clear empties the log file
func Clear() error {
	return clearLog(DefaultDeps())
}

func clearLog(deps Deps) error {
	logPath := deps.LogFilePath()

	if err := deps.WriteFile(logPath, []byte{}, 0600); err != nil {
		return fmt.Errorf("clear log file: %w", err)
	}

	_, _ = deps.Println(style.Success("Log file cleared"))
	return nil
}

// colorizeLogLine adds color to log lines based on level
func colorizeLogLine(line string) string {
	switch parseLine(line).Level {
	case "ERROR":
		return style.Error(line)
	case "WARN":
		return style.Warning(line)
	case "INFO":
		return style.Info(line)
	case "DEBUG":
		return style.Muted(line)
	}
	return line
}
