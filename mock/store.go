package mock

import "github.com/ctzreddy/llmjudge"

// Compile-time interface verification.
var (
	_ llmjudge.CaseLoader  = (*CaseLoader)(nil)
	_ llmjudge.CaseSaver   = (*CaseSaver)(nil)
	_ llmjudge.ReviewStore = (*ReviewStore)(nil)
	_ llmjudge.Clipboard   = (*Clipboard)(nil)
)

// CaseLoader is a mock implementation of llmjudge.CaseLoader.
type CaseLoader struct {
	LoadFn func(path string) ([]llmjudge.Case, error)
}

func (l *CaseLoader) Load(path string) ([]llmjudge.Case, error) {
	return l.LoadFn(path)
}

// CaseSaver is a mock implementation of llmjudge.CaseSaver.
type CaseSaver struct {
	SaveFn func(path string, c llmjudge.Case) error
}

func (s *CaseSaver) Save(path string, c llmjudge.Case) error {
	return s.SaveFn(path, c)
}

// ReviewStore is a mock implementation of llmjudge.ReviewStore.
type ReviewStore struct {
	LoadFn func(path string) ([]llmjudge.Review, error)
	SaveFn func(path string, reviews []llmjudge.Review) error
}

func (s *ReviewStore) Load(path string) ([]llmjudge.Review, error) {
	return s.LoadFn(path)
}

func (s *ReviewStore) Save(path string, reviews []llmjudge.Review) error {
	return s.SaveFn(path, reviews)
}

// Clipboard is a mock implementation of llmjudge.Clipboard.
type Clipboard struct {
	CopyFn func(content string) error
}

func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}
