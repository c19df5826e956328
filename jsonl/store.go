package jsonl

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ctzreddy/llmjudge"
)

// Compile-time interface verification.
var _ llmjudge.ReviewStore = (*Store)(nil)

// Store persists and retrieves Review records as JSONL.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads reviews from a JSONL file. Returns empty slice if file doesn't exist.
func (s *Store) Load(path string) ([]llmjudge.Review, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var reviews []llmjudge.Review
	scanner := bufio.NewScanner(f)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var r llmjudge.Review
		if err := json.Unmarshal([]byte(line), &r); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		reviews = append(reviews, r)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}

// Save writes reviews to a JSONL file, creating parent directories if needed.
func (s *Store) Save(path string, reviews []llmjudge.Review) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, r := range reviews {
		data, err := json.Marshal(r)
		if err != nil {
			return err
		}
		if _, err := f.Write(data); err != nil {
			return err
		}
		if _, err := f.WriteString("\n"); err != nil {
			return err
		}
	}

	return nil
}
