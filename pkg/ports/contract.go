package ports

import (
	"context"
	"sort"
	"testing"

	"github.com/aretw0/surveyshell/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunSourceLoaderContract runs a suite of tests to verify that a SourceLoader implementation
// adheres to the defined interface contract. fixtures must already be loadable from loader.
func RunSourceLoaderContract(t *testing.T, loader SourceLoader, fixtures map[string][]byte) {
	t.Helper()
	ctx := context.Background()

	t.Run("Load", func(t *testing.T) {
		for name, expected := range fixtures {
			content, err := loader.Load(ctx, name)
			require.NoError(t, err, "Load(%q) should not return error", name)
			assert.Equal(t, string(expected), string(content))
		}
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := loader.Load(ctx, "non-existent-source.json")
		assert.ErrorIs(t, err, domain.ErrSourceNotFound)
	})

	t.Run("Load Escaping Root", func(t *testing.T) {
		_, err := loader.Load(ctx, "../etc/passwd")
		assert.Error(t, err)
	})

	lister, ok := loader.(SourceLister)
	if !ok {
		return
	}

	t.Run("List", func(t *testing.T) {
		names, err := lister.List(ctx)
		require.NoError(t, err)

		expected := make([]string, 0, len(fixtures))
		for name := range fixtures {
			expected = append(expected, name)
		}
		sort.Strings(expected)
		assert.Equal(t, expected, names)
	})
}
