package logtail

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
)

// Window describes the byte range read from a file.
type Window struct {
	Size  int64 // file size at stat time
	Start int64 // first byte read
}

// Len returns the number of raw bytes in the window.
func (w Window) Len() int64 {
	return w.Size - w.Start
}

// Truncated reports whether bytes before the window were skipped.
func (w Window) Truncated() bool {
	return w.Start > 0
}

// Result is the outcome of a window read.
type Result struct {
	Lines  []string
	Window Window
}

// WindowStart returns the offset of the first byte of the trailing window of
// at most limit bytes in a file of size bytes.
func WindowStart(size, limit int64) int64 {
	if limit <= 0 || size <= limit {
		return 0
	}
	return size - limit
}

const minScanBuffer = 64 * 1024

// ReadWindow returns the lines contained in the last limit bytes of path.
func ReadWindow(path string, limit int64) (Result, error) {
	if limit <= 0 {
		return Result{}, fmt.Errorf("read log: limit must be positive, got %d", limit)
	}
	file, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return Result{}, fmt.Errorf("stat log: %w", err)
	}
	if info.IsDir() {
		return Result{}, fmt.Errorf("open log: %s is a directory", path)
	}

	win := Window{Size: info.Size()}
	win.Start = WindowStart(win.Size, limit)
	if _, err := file.Seek(win.Start, io.SeekStart); err != nil {
		return Result{}, fmt.Errorf("seek log: %w", err)
	}

	lines, err := readLines(io.LimitReader(file, win.Len()), win.Len())
	if err != nil {
		return Result{}, err
	}
	return Result{Lines: lines, Window: win}, nil
}

func readLines(r io.Reader, n int64) ([]string, error) {
	scanner := bufio.NewScanner(transform.NewReader(r, newDecoder()))
	scanner.Buffer(make([]byte, 0, minScanBuffer), int(n)+1)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimRightFunc(scanner.Text(), unicode.IsSpace))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	return lines, nil
}
