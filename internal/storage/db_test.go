package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInMemory(t *testing.T) {
	db, err := NewTestDB()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	assert.Equal(t, ":memory:", db.Path())
	assert.NotNil(t, db.Conn())
}

func TestNewCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "helpdesk.db")

	db, err := New(path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	assert.Equal(t, path, db.Path())
	assert.FileExists(t, path)
}

func TestCloseIsSafe(t *testing.T) {
	db, err := NewTestDB()
	require.NoError(t, err)

	assert.NoError(t, db.Close())
}
