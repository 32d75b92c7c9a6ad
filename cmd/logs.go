package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hpcloud/tail"
	"github.com/spf13/cobra"

	"github.com/grovetools/hookcfg/cli"
	"github.com/grovetools/hookcfg/logging"
	"github.com/grovetools/hookcfg/tui/theme"
)

// NewLogsCmd creates the `logs` command.
func NewLogsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Display hookcfg tool logs",
		Long: `Shows the log files written under .hookcfg/logs by the hookcfg commands.

Examples:
  # Show the latest log file
  hookcfg logs

  # Follow log output
  hookcfg logs -f

  # Last 50 lines as JSON Lines
  hookcfg logs --tail 50 --json
`,
		RunE: runLogsE,
	}

	cmd.Flags().BoolP("follow", "f", false, "Follow log output")
	cmd.Flags().Int("tail", -1, "Number of lines to show from the end of the log (default: all)")

	return cmd
}

func runLogsE(cmd *cobra.Command, args []string) error {
	opts := cli.GetOptions(cmd)

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	logsDir := filepath.Join(cwd, logging.LogDirName)
	logFile, err := findLatestLogFile(logsDir)
	if err != nil {
		return fmt.Errorf("no logs found under %s", logsDir)
	}

	follow, _ := cmd.Flags().GetBool("follow")
	tailLines, _ := cmd.Flags().GetInt("tail")

	location := &tail.SeekInfo{Offset: 0, Whence: io.SeekStart}
	if tailLines >= 0 {
		if err := printLastLines(logFile, tailLines, opts.JSONOutput); err != nil {
			return err
		}
		if !follow {
			return nil
		}
		location = &tail.SeekInfo{Offset: 0, Whence: io.SeekEnd}
	}

	t, err := tail.TailFile(logFile, tail.Config{
		Follow:   follow,
		ReOpen:   follow,
		Location: location,
		Logger:   stdlog.New(io.Discard, "", 0), // Suppress tail library debug output
	})
	if err != nil {
		return fmt.Errorf("cannot tail %s: %w", logFile, err)
	}

	for line := range t.Lines {
		if line.Err != nil {
			continue
		}
		printLogLine(line.Text, opts.JSONOutput)
	}

	return nil
}

// findLatestLogFile finds the most recently modified non-empty file in a
// directory, falling back to the most recent file overall.
func findLatestLogFile(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("could not read log directory %s: %w", dir, err)
	}

	var latestPath, latestNonEmptyPath string
	var latestMod, latestNonEmptyMod int64

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		mod := info.ModTime().UnixNano()
		if latestPath == "" || mod > latestMod {
			latestPath = path
			latestMod = mod
		}
		if info.Size() > 0 && (latestNonEmptyPath == "" || mod > latestNonEmptyMod) {
			latestNonEmptyPath = path
			latestNonEmptyMod = mod
		}
	}

	if latestNonEmptyPath != "" {
		return latestNonEmptyPath, nil
	}
	if latestPath == "" {
		return "", fmt.Errorf("no log files found in %s", dir)
	}
	return latestPath, nil
}

// printLastLines prints the final n lines of a file.
func printLastLines(path string, n int, jsonOutput bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	start := len(lines) - n
	if n == 0 || start < 0 {
		start = 0
	}
	for _, line := range lines[start:] {
		if line != "" {
			printLogLine(line, jsonOutput)
		}
	}
	return nil
}

// printLogLine prints a single log line, colorized by level for text output.
func printLogLine(line string, jsonOutput bool) {
	if jsonOutput {
		fmt.Println(line)
		return
	}

	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		// Text-formatted lines pass through untouched
		fmt.Println(line)
		return
	}

	level, _ := entry["level"].(string)
	msg, _ := entry["msg"].(string)
	component, _ := entry["component"].(string)

	style := levelStyle(level)
	prefix := style.Render(strings.ToUpper(level))
	if component != "" {
		prefix += " " + theme.DefaultTheme.Accent.Render("["+component+"]")
	}
	fmt.Printf("%s %s\n", prefix, msg)
}

// levelStyle returns theme-based styling for log levels.
func levelStyle(level string) lipgloss.Style {
	switch strings.ToLower(level) {
	case "warning", "warn":
		return theme.DefaultTheme.Warning
	case "error", "fatal", "panic":
		return theme.DefaultTheme.Error
	case "debug", "trace":
		return theme.DefaultTheme.Muted
	default:
		return theme.DefaultTheme.Success
	}
}
