// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConverter implements convert.Converter for testing. It returns canned
// lines or an error, depending on configuration.
type fakeConverter struct {
	lines []string
	err   error
	calls int
}

func (f *fakeConverter) Convert(pdfPath string) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.lines, nil
}

var documentLines = strings.Split(`Standard Manufacturer's
Identification Code
JEP106BK
2 Scope
The present list is complete as of January 5, 2024.
The following numbers are all in bank one:
COMPANY 8 7 6 5 4 3 2 1 HEX
1 AMD 0 0 0 0 0 0 0 1 01
2 AMI 0 0 0 0 0 0 1 0 02
The following numbers are all in bank two:
COMPANY 8 7 6 5 4 3 2 1 HEX
3 Synopsys, Inc. 1 0 0 0 0 0 1 1 83
Annex A`, "\n")

func TestGenerate_FirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jep106.S")
	conv := &fakeConverter{lines: documentLines}
	var out bytes.Buffer

	sum, err := Generate(conv, "JEP106BK.pdf", path, &out, nil)
	require.NoError(t, err)

	assert.Equal(t, Header{DocumentID: "JEP106BK", AsOf: "2024-01-05"}, sum.Header)
	assert.Equal(t, 5, sum.Records)
	assert.Equal(t, 5, sum.Enabled)
	assert.Zero(t, sum.Disabled)
	assert.Contains(t, out.String(), "5 records, 5 enabled, 0 disabled, 0 renamed")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\tjedec\t\"0103\", \"Synopsys, Inc.\"\n")
}

func TestGenerate_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jep106.S")
	conv := &fakeConverter{lines: documentLines}

	_, err := Generate(conv, "JEP106BK.pdf", path, &bytes.Buffer{}, nil)
	require.NoError(t, err)
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	var out bytes.Buffer
	sum, err := Generate(conv, "JEP106BK.pdf", path, &out, nil)
	require.NoError(t, err)
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
	assert.Empty(t, sum.Renames)
}

func TestGenerate_PreservesManualEdits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jep106.S")
	prior := "\tjedec\t\"0000\", \"Noname\"\n" +
		"\tjedec\t\"0001\", \"AMD (Advanced Micro Devices)\"\n" +
		"//\tjedec\t\"0002\", \"AMI Old\"\n" +
		"\tjedec\t\"FFFF\", \"Unknown\"\n"
	require.NoError(t, os.WriteFile(path, []byte(prior), 0o644))

	var out bytes.Buffer
	sum, err := Generate(&fakeConverter{lines: documentLines}, "JEP106BK.pdf", path, &out, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "\tjedec\t\"0001\", \"AMD (Advanced Micro Devices)\"\n")
	assert.Contains(t, content, "//\tjedec\t\"0002\", \"AMI\"\n")
	assert.Contains(t, content, "//\tjedec\t\"0103\", \"Synopsys, Inc.\"\n")
	assert.Contains(t, out.String(), `0002: "AMI Old" -> "AMI"`+"\n")
	assert.Equal(t, 3, sum.Enabled)
	assert.Equal(t, 2, sum.Disabled)
}

func TestGenerate_NoRecords(t *testing.T) {
	tests := []struct {
		name string
		conv *fakeConverter
	}{
		{"converter failure", &fakeConverter{err: errors.New("pdftotext: not found")}},
		{"document without table", &fakeConverter{lines: []string{"Standard Manufacturer's", "2 Scope"}}},
		{"unresolvable bank", &fakeConverter{lines: []string{"The following numbers are all in bank many:"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "jep106.S")
			_, err := Generate(tt.conv, "JEP106BK.pdf", path, &bytes.Buffer{}, nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNoRecords)

			_, statErr := os.Stat(path)
			assert.True(t, os.IsNotExist(statErr), "registry must not be written on failure")
		})
	}
}
