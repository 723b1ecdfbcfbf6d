package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveBytesAndDelete(t *testing.T) {
	st, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	key, size, err := st.SaveBytes("gambar sampul.webp", []byte("isi file"))
	require.NoError(t, err)
	assert.Equal(t, int64(8), size)
	assert.NotContains(t, key, " ")

	data, err := os.ReadFile(filepath.Join(st.Dir, key))
	require.NoError(t, err)
	assert.Equal(t, "isi file", string(data))

	assert.Equal(t, "/uploads/"+key, st.URL(key))

	require.NoError(t, st.Delete(key))
	_, err = os.Stat(filepath.Join(st.Dir, key))
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteEmptyKeyIsNoop(t *testing.T) {
	st, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, st.Delete(""))
}
