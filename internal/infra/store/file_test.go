//go:build unit

package store_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"car-rental/internal/infra/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()

	t.Run("save then load keeps record order", func(t *testing.T) {
		st := store.NewFileStore(filepath.Join(t.TempDir(), "nested", "database"))
		records := []map[string]any{{"id": "b"}, {"id": "a"}, {"id": "c"}}
		require.NoError(t, st.Save(ctx, "cars", records))

		raws, err := st.Load(ctx, "cars")
		require.NoError(t, err)
		require.Len(t, raws, 3)

		var ids []string
		for _, raw := range raws {
			var rec struct {
				ID string `json:"id"`
			}
			require.NoError(t, json.Unmarshal(raw, &rec))
			ids = append(ids, rec.ID)
		}
		assert.Equal(t, []string{"b", "a", "c"}, ids)
	})

	t.Run("collection maps to a json file", func(t *testing.T) {
		dir := t.TempDir()
		st := store.NewFileStore(dir)
		assert.Equal(t, filepath.Join(dir, "carCategories.json"), st.Path("carCategories"))
	})

	t.Run("empty array is a valid collection", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "cars.json"), []byte("[]"), 0o600))

		raws, err := store.NewFileStore(dir).Load(ctx, "cars")
		require.NoError(t, err)
		assert.Empty(t, raws)
	})

	t.Run("missing collection", func(t *testing.T) {
		_, err := store.NewFileStore(t.TempDir()).Load(ctx, "cars")
		require.ErrorIs(t, err, store.ErrCollectionNotFound)
	})

	t.Run("malformed collection", func(t *testing.T) {
		for name, content := range map[string]string{
			"not json":    "{oops",
			"object root": `{"id":"a"}`,
			"scalar root": `42`,
			"truncated":   `[{"id":"a"}`,
		} {
			t.Run(name, func(t *testing.T) {
				dir := t.TempDir()
				require.NoError(t, os.WriteFile(filepath.Join(dir, "cars.json"), []byte(content), 0o600))

				_, err := store.NewFileStore(dir).Load(ctx, "cars")
				require.ErrorIs(t, err, store.ErrMalformed)
			})
		}
	})

	t.Run("save rejects non-array records", func(t *testing.T) {
		st := store.NewFileStore(t.TempDir())
		err := st.Save(ctx, "cars", map[string]string{"id": "a"})
		require.ErrorIs(t, err, store.ErrMalformed)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		st := store.NewFileStore(t.TempDir())
		require.ErrorIs(t, st.Save(cctx, "cars", []string{}), context.Canceled)
		_, err := st.Load(cctx, "cars")
		require.ErrorIs(t, err, context.Canceled)
	})
}
