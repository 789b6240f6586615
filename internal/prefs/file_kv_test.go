package prefs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileKVRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sub", "routines.json")
	kv := NewFileKV(path)

	v, err := kv.Get(ctx, "savedRoutines")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, kv.Put(ctx, "savedRoutines", []byte(`[{"id":"a"}]`)))
	require.NoError(t, kv.Put(ctx, "other", []byte("x")))

	// a fresh handle sees the same data
	v, err = NewFileKV(path).Get(ctx, "savedRoutines")
	require.NoError(t, err)
	require.Equal(t, []byte(`[{"id":"a"}]`), v)

	_, err = os.Stat(path + ".tmp")
	require.True(t, os.IsNotExist(err))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileKVDelete(t *testing.T) {
	ctx := context.Background()
	kv := NewFileKV(filepath.Join(t.TempDir(), "routines.json"))
	require.NoError(t, kv.Delete(ctx, "nothing"))
	require.NoError(t, kv.Put(ctx, "k", []byte("v")))
	require.NoError(t, kv.Delete(ctx, "k"))
	v, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestFileKVCorruptFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "routines.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))
	kv := NewFileKV(path)
	_, err := kv.Get(ctx, "k")
	require.Error(t, err)
	require.Error(t, kv.Put(ctx, "k", []byte("v")))
}

func TestDefaultPath(t *testing.T) {
	p, err := DefaultPath()
	if err != nil {
		t.Skipf("no user config dir: %v", err)
	}
	require.Equal(t, "routines.json", filepath.Base(p))
	require.Equal(t, "skincare", filepath.Base(filepath.Dir(p)))
}
