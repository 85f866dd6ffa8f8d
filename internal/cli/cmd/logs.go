package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/floatdesk/internal/cli/styles"
)

var (
	logsFollow   bool
	logsLines    int
	logsClearAll bool
)

const (
	defaultLogsLines = 50
	logFileName      = "floatdesk.log"
	followPoll       = 100 * time.Millisecond
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View the desk log",
	Long: `Show the end of the desk log file. Logging to a file is enabled with
logging.enable_file_log; the terminal itself never shows log lines while
the desk runs.

Examples:
  floatdesk logs              # Last 50 lines
  floatdesk logs -n 200       # Last 200 lines
  floatdesk logs -f           # Follow new lines
  floatdesk logs files        # List the current and rolled files`,
	RunE: runLogs,
}

var logsFilesCmd = &cobra.Command{
	Use:   "files",
	Short: "List log files",
	RunE:  runLogsFiles,
}

var logsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove rolled log files",
	Long: `Remove rolled log files older than logging.max_age days.
Use --all to remove every rolled file. The current file is kept.`,
	RunE: runLogsClear,
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.AddCommand(logsFilesCmd, logsClearCmd)

	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output in real-time")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
	logsClearCmd.Flags().BoolVar(&logsClearAll, "all", false, "remove every rolled file")
}

// LogFile describes the current log file or one rolled copy of it.
type LogFile struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
	Current bool
}

func runLogs(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	path := filepath.Join(app.Config.Logging.LogDir, logFileName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Subtle.Render("No log file at "+path))
			if !app.Config.Logging.EnableFileLog {
				fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Subtle.Render("Set logging.enable_file_log = true to write one"))
			}
			return nil
		}
		return fmt.Errorf("stat log file: %w", err)
	}

	if logsFollow {
		return followLog(cmd.Context(), cmd.OutOrStdout(), path, app.Theme)
	}
	return showLog(cmd.OutOrStdout(), path, logsLines, app.Theme)
}

// listLogFiles returns the current file first, then rolled copies newest first.
func listLogFiles(dir string) ([]LogFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read log dir: %w", err)
	}

	var files []LogFile
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || (name != logFileName && !strings.HasPrefix(name, logFileName+".")) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, LogFile{
			Name:    name,
			Path:    filepath.Join(dir, name),
			Size:    info.Size(),
			ModTime: info.ModTime(),
			Current: name == logFileName,
		})
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].Current != files[j].Current {
			return files[i].Current
		}
		return files[i].ModTime.After(files[j].ModTime)
	})
	return files, nil
}

func runLogsFiles(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	files, err := listLogFiles(app.Config.Logging.LogDir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	theme := app.Theme
	if len(files) == 0 {
		fmt.Fprintln(out, theme.Subtle.Render("No log files in "+app.Config.Logging.LogDir))
		return nil
	}
	fmt.Fprintln(out, theme.Title.Render(fmt.Sprintf("Log files (%d)", len(files))))
	for _, f := range files {
		marker := " "
		if f.Current {
			marker = theme.SuccessStyle.Render("●")
		}
		fmt.Fprintf(out, "  %s %s  %s  %s\n",
			marker,
			theme.Highlight.Render(f.Name),
			theme.Subtle.Render(f.ModTime.Format("2006-01-02 15:04")),
			theme.Subtle.Render("("+formatSize(f.Size)+")"),
		)
	}
	return nil
}

func runLogsClear(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	files, err := listLogFiles(app.Config.Logging.LogDir)
	if err != nil {
		return err
	}

	maxAge := 7
	if app.Config.Logging.MaxAge > 0 {
		maxAge = app.Config.Logging.MaxAge
	}
	removed, failed := clearLogFiles(files, logsClearAll, time.Now().AddDate(0, 0, -maxAge))

	out := cmd.OutOrStdout()
	for _, f := range removed {
		fmt.Fprintf(out, "%s %s (%s)\n", app.Theme.SuccessStyle.Render(styles.IconCheck), f.Name, formatSize(f.Size))
	}
	for _, err := range failed {
		fmt.Fprintf(out, "%s %v\n", app.Theme.ErrorStyle.Render(styles.IconX), err)
	}
	if len(removed) == 0 {
		fmt.Fprintln(out, app.Theme.Subtle.Render(fmt.Sprintf("No rolled logs older than %d days", maxAge)))
		return nil
	}
	fmt.Fprintln(out, app.Theme.SuccessStyle.Render(fmt.Sprintf("Cleared %d file(s)", len(removed))))
	return errors.Join(failed...)
}

// clearLogFiles removes rolled files modified before cutoff, or every rolled
// file when all is set. The current file is never removed.
func clearLogFiles(files []LogFile, all bool, cutoff time.Time) (removed []LogFile, failed []error) {
	for _, f := range files {
		if f.Current || (!all && !f.ModTime.Before(cutoff)) {
			continue
		}
		if err := os.Remove(f.Path); err != nil {
			failed = append(failed, fmt.Errorf("%s: %w", f.Name, err))
			continue
		}
		removed = append(removed, f)
	}
	return removed, failed
}

// showLog prints the last n lines of the log.
func showLog(out io.Writer, path string, n int, theme *styles.Theme) (retErr error) {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("close log file: %w", closeErr)
		}
	}()

	lines, err := lastLines(file, n)
	if err != nil {
		return err
	}
	for _, line := range lines {
		fmt.Fprintln(out, colorizeLogLine(line, theme))
	}
	return nil
}

// lastLines keeps a ring of the last n lines read from r.
func lastLines(r io.Reader, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	ring := make([]string, 0, n)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if len(ring) == n {
			ring = append(ring[:0], ring[1:]...)
		}
		ring = append(ring, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}
	return ring, nil
}

// followLog prints lines appended to the log until ctx is canceled.
func followLog(ctx context.Context, out io.Writer, path string, theme *styles.Theme) error {
	if ctx == nil {
		ctx = context.Background()
	}
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	_, _ = file.Seek(0, io.SeekEnd)

	fmt.Fprintln(out, theme.Subtle.Render("Following logs... (Ctrl+C to stop)"))
	fmt.Fprintln(out)

	reader := bufio.NewReader(file)
	pending := ""
	for {
		chunk, err := reader.ReadString('\n')
		pending += chunk
		if err != nil {
			if err != io.EOF {
				return fmt.Errorf("read log file: %w", err)
			}
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(followPoll):
			}
			continue
		}
		line := strings.TrimSuffix(pending, "\n")
		pending = ""
		fmt.Fprintln(out, colorizeLogLine(line, theme))
	}
}

// logEntry represents a parsed JSON log entry.
type logEntry struct {
	Level     string `json:"level"`
	Time      string `json:"time"`
	Message   string `json:"message"`
	Component string `json:"component"`
}

// colorizeLogLine adds color based on log level.
func colorizeLogLine(line string, theme *styles.Theme) string {
	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err == nil {
		return formatJSONLogLine(entry, theme)
	}

	// console format
	switch {
	case containsAny(line, " ERR ", "ERROR"):
		return theme.ErrorStyle.Render(line)
	case containsAny(line, " WRN ", "WARN"):
		return theme.WarningStyle.Render(line)
	case containsAny(line, " DBG ", " TRC ", "DEBUG"):
		return theme.Subtle.Render(line)
	default:
		return line
	}
}

// formatJSONLogLine formats a parsed JSON log entry with colors.
func formatJSONLogLine(entry logEntry, theme *styles.Theme) string {
	timeStr := entry.Time
	if t, err := time.Parse(time.RFC3339, entry.Time); err == nil {
		timeStr = t.Format("15:04:05")
	}

	var levelStr string
	switch entry.Level {
	case "error", "fatal", "panic":
		levelStr = theme.ErrorStyle.Render("ERR")
	case "warn":
		levelStr = theme.WarningStyle.Render("WRN")
	case "info":
		levelStr = theme.Highlight.Render("INF")
	case "debug":
		levelStr = theme.Subtle.Render("DBG")
	case "trace":
		levelStr = theme.Subtle.Render("TRC")
	default:
		levelStr = entry.Level
	}

	msg := entry.Message
	if entry.Component != "" {
		msg = theme.Subtle.Render("["+entry.Component+"]") + " " + msg
	}
	return strings.TrimSpace(fmt.Sprintf("%s %s %s", theme.Subtle.Render(timeStr), levelStr, msg))
}

// containsAny checks if s contains any of the substrings, ignoring case.
func containsAny(s string, substrs ...string) bool {
	sLower := strings.ToLower(s)
	for _, substr := range substrs {
		if strings.Contains(sLower, strings.ToLower(substr)) {
			return true
		}
	}
	return false
}

func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
