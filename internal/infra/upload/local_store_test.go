package upload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"store/config"
	domainerrors "store/internal/domain/errors"
	"store/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *localStore {
	t.Helper()

	cfg := &config.Config{
		Upload: &config.UploadConfig{
			Dir:     t.TempDir(),
			MaxSize: 1 << 20,
		},
	}

	store, err := NewLocalStore(cfg)
	require.NoError(t, err)

	return store.(*localStore)
}

func TestLocalStore_Save(t *testing.T) {
	store := newTestStore(t)

	content := strings.NewReader("fake image bytes")
	webPath, err := store.Save("avatar.PNG", 16, content)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(webPath, "/upload/"))
	assert.True(t, strings.HasSuffix(webPath, ".png"))

	// The stored file carries the uploaded bytes.
	stored := filepath.Join(store.dir, strings.TrimPrefix(webPath, "/upload/"))
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestLocalStore_Save_UniqueNames(t *testing.T) {
	store := newTestStore(t)

	first, err := store.Save("a.jpg", 4, strings.NewReader("aaaa"))
	require.NoError(t, err)
	second, err := store.Save("a.jpg", 4, strings.NewReader("bbbb"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestLocalStore_Save_EmptyFile(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save("avatar.png", 0, strings.NewReader(""))
	assert.ErrorIs(t, err, domainerrors.ErrFileEmpty)
}

func TestLocalStore_Save_TooLarge(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save("avatar.png", 2<<20, strings.NewReader("x"))
	assert.ErrorIs(t, err, domainerrors.ErrFileSize)
}

func TestLocalStore_Save_DisallowedExtension(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save("avatar.svg", 8, strings.NewReader("<svg/>"))
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "FILE_TYPE", appErr.ErrorCode())
}
