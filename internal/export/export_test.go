// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/jep106/pkg/types"
)

var entries = []types.Entry{
	{ID: "0000", Name: "Noname", Enabled: true},
	{ID: "004E", Name: "Samsung", Enabled: true},
	{ID: "0209", Name: "Macronix", Enabled: false},
	{ID: "FFFF", Name: "Unknown", Enabled: true},
}

func TestNewRecord(t *testing.T) {
	r, err := NewRecord(types.Entry{ID: "0209", Name: "Macronix"})
	require.NoError(t, err)
	assert.Equal(t, Record{ID: "0209", Bank: 3, Code: 9, Name: "Macronix"}, r)

	_, err = NewRecord(types.Entry{ID: "zz"})
	assert.Error(t, err)
}

func TestNewDocument_FiltersDisabled(t *testing.T) {
	doc, err := NewDocument("jep106.S", entries, false)
	require.NoError(t, err)
	assert.Len(t, doc.Manufacturers, 3)

	doc, err = NewDocument("jep106.S", entries, true)
	require.NoError(t, err)
	assert.Len(t, doc.Manufacturers, 4)
}

func TestWriteYAML(t *testing.T) {
	doc, err := NewDocument("jep106.S", entries, true)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "jep106.yaml")
	require.NoError(t, Write(types.ExportYAML, path, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got Document
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, doc, got)
}

func TestWriteJSON(t *testing.T) {
	doc, err := NewDocument("jep106.S", entries, false)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "jep106.json")
	require.NoError(t, Write(types.ExportJSON, path, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got Document
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "Samsung", got.Manufacturers[1].Name)
	assert.Equal(t, 78, got.Manufacturers[1].Code)
}

func TestWriteSQLite(t *testing.T) {
	doc, err := NewDocument("jep106.S", entries, true)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "jep106.db")
	require.NoError(t, Write(types.ExportSQLite, path, doc))
	// A second export replaces rather than duplicates rows.
	require.NoError(t, Write(types.ExportSQLite, path, doc))

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM manufacturers`).Scan(&count))
	assert.Equal(t, 4, count)

	var name string
	var enabled bool
	require.NoError(t, db.QueryRow(`SELECT name, enabled FROM manufacturers WHERE bank = 3 AND code = 9`).Scan(&name, &enabled))
	assert.Equal(t, "Macronix", name)
	assert.False(t, enabled)

	var source string
	require.NoError(t, db.QueryRow(`SELECT value FROM metadata WHERE key = 'source'`).Scan(&source))
	assert.Equal(t, "jep106.S", source)
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write("csv", filepath.Join(t.TempDir(), "x"), Document{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown export format")
}
