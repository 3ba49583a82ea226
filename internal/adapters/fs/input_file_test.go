package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/stoich/pkg/batch"
	"github.com/bft-labs/stoich/pkg/reaction"
)

var wantInputs = []reaction.Input{
	{SalicylicAcidMass: 100, AceticAnhydrideMass: 150, CatalystEfficiency: 85},
	{SalicylicAcidMass: 50, AceticAnhydrideMass: 0, CatalystEfficiency: 90},
}

func inputsOf(t *testing.T, items []batch.Item) []reaction.Input {
	t.Helper()
	inputs := make([]reaction.Input, len(items))
	for i, it := range items {
		require.NoError(t, it.Err, "item %d", i+1)
		inputs[i] = it.Input
	}
	return inputs
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestInputFile_Load(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "json array",
			file: "batch.json",
			content: `[
  {"salicylic_acid": 100, "acetic_anhydride": 150, "catalyst_efficiency": 85},
  {"salicylic_acid": 50, "catalyst_efficiency": 90}
]`,
		},
		{
			name: "json lines with blank line",
			file: "batch.jsonl",
			content: `{"salicylic_acid": 100, "acetic_anhydride": 150, "catalyst_efficiency": 85}

{"salicylic_acid": 50, "acetic_anhydride": 0, "catalyst_efficiency": 90}
`,
		},
		{
			name: "yaml sequence",
			file: "batch.yml",
			content: `
- salicylic_acid: 100
  acetic_anhydride: 150
  catalyst_efficiency: 85
- salicylic_acid: 50
  acetic_anhydride: 0
  catalyst_efficiency: 90
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			got, err := NewInputFile(path).Load(context.Background())
			require.NoError(t, err)
			assert.Equal(t, wantInputs, inputsOf(t, got))
		})
	}
}

func TestInputFile_Stdin(t *testing.T) {
	f := NewInputFile(StdinPath)
	f.stdin = strings.NewReader(`[{"salicylic_acid": 1, "acetic_anhydride": 2, "catalyst_efficiency": 3}]`)

	got, err := f.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []reaction.Input{{SalicylicAcidMass: 1, AceticAnhydrideMass: 2, CatalystEfficiency: 3}}, inputsOf(t, got))
}

func TestInputFile_Errors(t *testing.T) {
	_, err := NewInputFile("").Load(context.Background())
	assert.ErrorIs(t, err, ErrNoInput)

	_, err = NewInputFile(writeFile(t, "batch.csv", "a,b,c")).Load(context.Background())
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = NewInputFile(filepath.Join(t.TempDir(), "missing.json")).Load(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = NewInputFile(writeFile(t, "bad.json", `{"salicylic_acid": 1}`)).Load(context.Background())
	assert.Error(t, err, "a JSON batch must be an array")

	_, err = NewInputFile(writeFile(t, "bad.yaml", "- salicylic_acid: [1\n")).Load(context.Background())
	assert.Error(t, err, "unparseable YAML document")
}

func TestInputFile_MalformedRecordKeepsPosition(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		content   string
		wantField string
	}{
		{
			name: "json lines wrong type",
			file: "batch.jsonl",
			content: `{"salicylic_acid": 100, "acetic_anhydride": 150, "catalyst_efficiency": 85}
{"salicylic_acid": "lots", "acetic_anhydride": 150, "catalyst_efficiency": 85}
{"salicylic_acid": 10, "acetic_anhydride": 5, "catalyst_efficiency": 100}
`,
			wantField: reaction.FieldSalicylicAcid,
		},
		{
			name: "json lines not json",
			file: "batch.jsonl",
			content: `{"salicylic_acid": 100, "acetic_anhydride": 150, "catalyst_efficiency": 85}
not json
{"salicylic_acid": 10, "acetic_anhydride": 5, "catalyst_efficiency": 100}
`,
			wantField: reaction.FieldRecord,
		},
		{
			name: "json array wrong type",
			file: "batch.json",
			content: `[
  {"salicylic_acid": 100, "acetic_anhydride": 150, "catalyst_efficiency": 85},
  {"salicylic_acid": 100, "acetic_anhydride": 150, "catalyst_efficiency": "high"},
  {"salicylic_acid": 10, "acetic_anhydride": 5, "catalyst_efficiency": 100}
]`,
			wantField: reaction.FieldCatalystEfficiency,
		},
		{
			name: "yaml wrong type",
			file: "batch.yaml",
			content: `
- salicylic_acid: 100
  acetic_anhydride: 150
  catalyst_efficiency: 85
- salicylic_acid: lots
  acetic_anhydride: 150
  catalyst_efficiency: 85
- salicylic_acid: 10
  acetic_anhydride: 5
  catalyst_efficiency: 100
`,
			wantField: reaction.FieldRecord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := NewInputFile(writeFile(t, tt.file, tt.content)).Load(context.Background())
			require.NoError(t, err)
			require.Len(t, items, 3)

			assert.NoError(t, items[0].Err)
			assert.NoError(t, items[2].Err)
			assert.Equal(t, 10.0, items[2].Input.SalicylicAcidMass)

			require.Error(t, items[1].Err)
			assert.ErrorIs(t, items[1].Err, reaction.ErrInvalidInput)
			var invalid *reaction.InvalidInputError
			require.ErrorAs(t, items[1].Err, &invalid)
			assert.Equal(t, tt.wantField, invalid.Field)

			report, err := batch.NewRunner().RunItems(context.Background(), items)
			require.NoError(t, err)
			require.Len(t, report.Results, 2)
			assert.Equal(t, 1, report.Results[0].BatchID)
			assert.Equal(t, 3, report.Results[1].BatchID)
			require.Len(t, report.Failures, 1)
			assert.Equal(t, 2, report.Failures[0].BatchID)
		})
	}
}

func TestDecode_EmptyJSON(t *testing.T) {
	got, err := Decode([]byte("  \n"), FormatJSON)
	require.NoError(t, err)
	assert.Empty(t, got)
}
