package memory

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/loom-agents/loom/pkg/models"
)

// DocStore is a file-backed RAG adapter over a static document set.
// Retrieval ranks documents by term overlap with the query; documents that
// share no term with the query are never returned.
type DocStore struct {
	docs []models.Document
}

// NewDocStore builds a document store from an in-memory document set.
func NewDocStore(docs []models.Document) *DocStore {
	return &DocStore{docs: docs}
}

// docFile is the YAML shape of a document store file: a top-level
// "documents" list.
type docFile struct {
	Documents []models.Document `yaml:"documents"`
}

// LoadDocStore reads a document store from a YAML file.
func LoadDocStore(path string) (*DocStore, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document store: %w", err)
	}
	var file docFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse document store %s: %w", path, err)
	}
	return NewDocStore(file.Documents), nil
}

// Len returns the number of documents in the store.
func (s *DocStore) Len() int {
	return len(s.docs)
}

// Retrieve returns up to limit documents ranked by term overlap with the
// query, best match first. Ties keep file order.
func (s *DocStore) Retrieve(_ context.Context, query string, limit int) ([]models.Document, error) {
	terms := tokenize(query)
	if len(terms) == 0 || limit <= 0 {
		return nil, nil
	}

	var matches []models.Document
	for _, doc := range s.docs {
		score := overlap(terms, tokenize(doc.Content))
		if score == 0 {
			continue
		}
		scored := doc
		scored.Score = score
		matches = append(matches, scored)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// tokenize lowercases and splits on non-alphanumeric runes.
func tokenize(text string) map[string]bool {
	terms := make(map[string]bool)
	for _, term := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		return !isAlnum
	}) {
		terms[term] = true
	}
	return terms
}

// overlap counts query terms present in the document, normalised by the
// query term count so scores are comparable across queries.
func overlap(query, doc map[string]bool) float64 {
	shared := 0
	for term := range query {
		if doc[term] {
			shared++
		}
	}
	return float64(shared) / float64(len(query))
}
