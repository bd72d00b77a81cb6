package main

import (
	"bytes"
	"testing"

	"cityscout/internal/catalog"
	"cityscout/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDataset = `
[[cities]]
name = "Paris"
country = "France"
events = 10

[[cities]]
name = "Porto"
country = "Portugal"
events = 5

[[cities]]
name = "Zürich"
country = "Switzerland"
events = 2

[[events]]
id = 1
name = "Jazz Night"
category = "music"
date = "2025-06-14"
city = "Paris"

[[events]]
id = 2
name = "Food Market"
category = "food"
date = "2025-06-15"
city = "Paris"
`

func loadTestDataset(t *testing.T) *catalog.Dataset {
	t.Helper()
	ds, err := catalog.Parse([]byte(testDataset), "test")
	require.NoError(t, err)
	return ds
}

func TestSuggestMarksMatch(t *testing.T) {
	ds := loadTestDataset(t)
	var out bytes.Buffer

	require.NoError(t, suggest(&out, ds.Directory(), config.DefaultConfig().Suggest, "zur"))

	assert.Contains(t, out.String(), "[Zür]ich")
	assert.NotContains(t, out.String(), "Paris")
}

func TestSuggestEmptyListsPopular(t *testing.T) {
	ds := loadTestDataset(t)
	var out bytes.Buffer

	require.NoError(t, suggest(&out, ds.Directory(), config.DefaultConfig().Suggest, "  "))

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.True(t, bytes.HasPrefix(lines[0], []byte("Paris")))
}

func TestSuggestBelowMinLength(t *testing.T) {
	ds := loadTestDataset(t)
	settings := config.DefaultConfig().Suggest
	settings.MinLength = 3
	var out bytes.Buffer

	require.NoError(t, suggest(&out, ds.Directory(), settings, "pa"))
	assert.Equal(t, "no suggestions\n", out.String())
}

func TestFilter(t *testing.T) {
	ds := loadTestDataset(t)

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{"by city", []string{"-city", "paris"}, "Found 2 events in paris", false},
		{"by category", []string{"-city", "Paris", "-category", "food"}, "Food Market", false},
		{"category display text", []string{"-category", "Music"}, "Jazz Night", false},
		{"no results", []string{"-city", "Pariss"}, "Did you mean Paris?", false},
		{"bad date", []string{"-date", "14/06/2025"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := filter(&out, ds, tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestCitiesWithPrefix(t *testing.T) {
	ds := loadTestDataset(t)
	var out bytes.Buffer

	require.NoError(t, cities(&out, ds.Directory(), "p"))

	assert.Contains(t, out.String(), "Paris")
	assert.Contains(t, out.String(), "Porto")
	assert.NotContains(t, out.String(), "Zürich")
}
