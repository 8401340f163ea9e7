// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cache

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "decodes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutAndLookup(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, map[string]string{
		"ABC": "C1=CC=CC=C1",
		"DEF": "CCO",
	}))

	hits, err := s.Lookup(ctx, []string{"ABC", "DEF", "GHI"})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"ABC": "C1=CC=CC=C1",
		"DEF": "CCO",
	}, hits)
}

func TestLookupEmptyBatch(t *testing.T) {
	s := openTemp(t)

	hits, err := s.Lookup(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestPutEmptyBatch(t *testing.T) {
	s := openTemp(t)
	require.NoError(t, s.Put(context.Background(), nil))
}

func TestPutReplacesExisting(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, map[string]string{"ABC": "old"}))
	require.NoError(t, s.Put(ctx, map[string]string{"ABC": "new"}))

	hits, err := s.Lookup(ctx, []string{"ABC"})
	require.NoError(t, err)
	assert.Equal(t, "new", hits["ABC"])
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decodes.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, map[string]string{"ABC": "CCO"}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	hits, err := s.Lookup(ctx, []string{"ABC"})
	require.NoError(t, err)
	assert.Equal(t, "CCO", hits["ABC"])
}

func TestOpenCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "decodes.db")

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Put(context.Background(), map[string]string{"ABC": "CCO"}))
}
