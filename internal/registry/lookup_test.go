// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "004E", want: "004E"},
		{in: "8a2c", want: "8A2C"},
		{in: " 0001 ", want: "0001"},
		{in: "1:78", want: "004E"},
		{in: "3:9", want: "0209"},
		{in: "256:255", want: "FFFF"},
		{in: "spd:0x80,0xCE", want: "004E"},
		{in: "SPD:0x02, 0x9E", want: "021E"},
		{in: "spd:128,206", want: "004E"},
		{in: "0:1", wantErr: true},
		{in: "1:300", wantErr: true},
		{in: "spd:0x80", wantErr: true},
		{in: "spd:0x80,zz", wantErr: true},
		{in: "12345", wantErr: true},
		{in: "XYZW", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseID(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFind(t *testing.T) {
	e, ok := Find(sampleEntries, "0002")
	require.True(t, ok)
	assert.Equal(t, "AMI", e.Name)
	assert.False(t, e.Enabled)

	_, ok = Find(sampleEntries, "7F7F")
	assert.False(t, ok)
}
