// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/jep106/pkg/types"
)

var (
	noname  = types.RawRecord{Bank: 0, CompanyID: 0, Name: "Noname"}
	unknown = types.RawRecord{Bank: 255, CompanyID: 255, Name: "Unknown"}
)

func TestReconcile_FirstRunEnablesAll(t *testing.T) {
	records := []types.RawRecord{
		noname,
		{Bank: 0, CompanyID: 1, Name: "AMD"},
		{Bank: 2, CompanyID: 9, Name: "Macronix"},
		unknown,
	}

	got, renames := Reconcile(records, Prior{})

	want := []types.Entry{
		{ID: "0000", Name: "Noname", Enabled: true},
		{ID: "0001", Name: "AMD", Enabled: true},
		{ID: "0209", Name: "Macronix", Enabled: true},
		{ID: "FFFF", Name: "Unknown", Enabled: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, renames)
}

func TestReconcile_NilPriorIsFirstRun(t *testing.T) {
	got, _ := Reconcile([]types.RawRecord{{Bank: 0, CompanyID: 5, Name: "X"}}, nil)
	assert.True(t, got[0].Enabled)
}

func TestReconcile_Precedence(t *testing.T) {
	prior := Prior{
		"0001": {ID: "0001", Name: "AMD (curated)", Enabled: true},
		"0002": {ID: "0002", Name: "AMI", Enabled: false},
		"0003": {ID: "0003", Name: "Fairchild", Enabled: false},
		"0000": {ID: "0000", Name: "Noname", Enabled: false},
	}
	records := []types.RawRecord{
		noname,
		{Bank: 0, CompanyID: 1, Name: "AMD"},
		{Bank: 0, CompanyID: 2, Name: "AMI Corporation"},
		{Bank: 0, CompanyID: 3, Name: "Fairchild"},
		{Bank: 0, CompanyID: 4, Name: "Fujitsu"},
		unknown,
	}

	got, renames := Reconcile(records, prior)

	want := []types.Entry{
		{ID: "0000", Name: "Noname", Enabled: true},
		{ID: "0001", Name: "AMD (curated)", Enabled: true},
		{ID: "0002", Name: "AMI Corporation", Enabled: false},
		{ID: "0003", Name: "Fairchild", Enabled: false},
		{ID: "0004", Name: "Fujitsu", Enabled: false},
		{ID: "FFFF", Name: "Unknown", Enabled: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []Rename{{ID: "0002", OldName: "AMI", NewName: "AMI Corporation"}}, renames)
}

func TestReconcile_SentinelKeepsCuratedName(t *testing.T) {
	prior := Prior{"FFFF": {ID: "FFFF", Name: "Unknown vendor", Enabled: false}}

	got, renames := Reconcile([]types.RawRecord{noname, unknown}, prior)

	assert.Equal(t, types.Entry{ID: "FFFF", Name: "Unknown vendor", Enabled: true}, got[1])
	assert.Empty(t, renames)
}

func TestReconcile_DuplicateIDLastWriteWins(t *testing.T) {
	records := []types.RawRecord{
		noname,
		{Bank: 0, CompanyID: 7, Name: "First"},
		{Bank: 0, CompanyID: 8, Name: "Other"},
		{Bank: 0, CompanyID: 7, Name: "Second"},
		unknown,
	}

	got, _ := Reconcile(records, Prior{})

	ids := make([]string, len(got))
	for i, e := range got {
		ids[i] = e.ID
	}
	assert.Equal(t, []string{"0000", "0007", "0008", "FFFF"}, ids)
	assert.Equal(t, "Second", got[1].Name)
}

func TestRename_String(t *testing.T) {
	r := Rename{ID: "0002", OldName: "AMI", NewName: "AMI Corporation"}
	assert.Equal(t, `0002: "AMI" -> "AMI Corporation"`, r.String())
}
