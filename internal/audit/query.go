package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
)

// Query filters for reading the trail back. Zero values match everything.
type Query struct {
	Actor    string
	Action   string
	Target   string
	Provider string
	Success  *bool
	Page     int // 1-based; 0 means first page
	PageSize int // clamped to MaxPageSize; 0 means DefaultPageSize
}

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// Page is one page of query results.
type Page struct {
	Entries    []Entry `json:"entries"`
	Total      int     `json:"total"`
	PageNumber int     `json:"page"`
	PageSize   int     `json:"page_size"`
}

func (q Query) matches(e Entry) bool {
	if q.Actor != "" && e.Actor != q.Actor {
		return false
	}
	if q.Action != "" && e.Action != q.Action {
		return false
	}
	if q.Target != "" && e.Target != q.Target {
		return false
	}
	if q.Provider != "" && e.Provider != q.Provider {
		return false
	}
	if q.Success != nil && e.Success != *q.Success {
		return false
	}
	return true
}

// Search reads the whole trail and returns the requested page of matching
// entries in write order. Lines that fail to parse are skipped; a trail that
// does not exist yet yields an empty page.
func (l *Logger) Search(q Query) (*Page, error) {
	size := q.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	pageNum := q.Page
	if pageNum <= 0 {
		pageNum = 1
	}

	matched, err := l.scan(q)
	if err != nil {
		return nil, err
	}

	page := &Page{
		Entries:    []Entry{},
		Total:      len(matched),
		PageNumber: pageNum,
		PageSize:   size,
	}
	start := (pageNum - 1) * size
	if start < len(matched) {
		end := start + size
		if end > len(matched) {
			end = len(matched)
		}
		page.Entries = matched[start:end]
	}
	return page, nil
}

// Recent returns the last n entries in write order.
func (l *Logger) Recent(n int) ([]Entry, error) {
	if n <= 0 {
		n = DefaultPageSize
	}
	all, err := l.scan(Query{})
	if err != nil {
		return nil, err
	}
	if len(all) > n {
		all = all[len(all)-n:]
	}
	return all, nil
}

func (l *Logger) scan(q Query) ([]Entry, error) {
	// Serialize against writers so a partially flushed line is never read.
	l.mu.Lock()
	defer l.mu.Unlock()

	file, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open audit file %s: %w", l.path, err)
	}
	defer file.Close()

	var matched []Entry
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(line, &e); err != nil {
			continue
		}
		if q.matches(e) {
			matched = append(matched, e)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan audit file: %w", err)
	}
	return matched, nil
}
