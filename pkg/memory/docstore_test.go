package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loom-agents/loom/pkg/models"
)

func TestDocStoreRetrieveRanksByOverlap(t *testing.T) {
	store := NewDocStore([]models.Document{
		{ID: "billing", Content: "billing retries use exponential backoff"},
		{ID: "checkout", Content: "checkout payment capture flow and capture retries"},
		{ID: "unrelated", Content: "office coffee machine manual"},
	})

	docs, err := store.Retrieve(context.Background(), "payment capture retries", 5)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "checkout", docs[0].ID)
	assert.Equal(t, "billing", docs[1].ID)
	assert.Greater(t, docs[0].Score, docs[1].Score)
}

func TestDocStoreRetrieveHonoursLimit(t *testing.T) {
	store := NewDocStore([]models.Document{
		{ID: "a", Content: "capture one"},
		{ID: "b", Content: "capture two"},
		{ID: "c", Content: "capture three"},
	})

	docs, err := store.Retrieve(context.Background(), "capture", 2)
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestDocStoreRetrieveNoMatch(t *testing.T) {
	store := NewDocStore([]models.Document{
		{ID: "a", Content: "capture one"},
	})

	docs, err := store.Retrieve(context.Background(), "unrelated query", 5)
	require.NoError(t, err)
	assert.Empty(t, docs)

	docs, err = store.Retrieve(context.Background(), "", 5)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestLoadDocStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "documents.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
documents:
  - id: runbook
    content: restart the capture worker after deploys
    metadata:
      team: payments
  - id: faq
    content: common capture failure modes
`), 0o600))

	store, err := LoadDocStore(path)
	require.NoError(t, err)
	assert.Equal(t, 2, store.Len())

	docs, err := store.Retrieve(context.Background(), "capture failure", 5)
	require.NoError(t, err)
	require.NotEmpty(t, docs)
	assert.Equal(t, "faq", docs[0].ID)
}

func TestLoadDocStoreMissingFile(t *testing.T) {
	_, err := LoadDocStore(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
