package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/bcn-heatmap-go/internal/database"
	"github.com/jengzang/bcn-heatmap-go/internal/models"
)

func openTestSource(t *testing.T) *SQLiteRecordSource {
	t.Helper()
	conn, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "population.db")})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return NewSQLiteRecordSource(conn)
}

func TestSQLiteRecordSourceMatchesJSONSource(t *testing.T) {
	records, err := ParseRecords([]byte(sampleRecords))
	require.NoError(t, err)

	src := openTestSource(t)
	n, err := src.ImportRecords(records)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	jsonSrc := NewJSONRecordSource(writeFile(t, sampleRecords))
	filters := []models.PopulationFilter{
		{},
		{District: "Eixample"},
		{District: "1"},
		{Year: "2022"},
		{Year: "2023", District: "Eixample"},
		{District: "Gràcia"},
	}
	for _, f := range filters {
		want := jsonSrc.Load(f)
		got := src.Load(f)
		assert.Equal(t, want.Status, got.Status, "%+v", f)
		assert.Equal(t, want.Records, got.Records, "%+v", f)
	}
}

func TestSQLiteImportReplacesRecords(t *testing.T) {
	src := openTestSource(t)

	_, err := src.ImportRecords([]models.CensusRecord{{DistrictName: "Gràcia", RawValue: "10"}})
	require.NoError(t, err)
	_, err = src.ImportRecords([]models.CensusRecord{{DistrictName: "Sants-Montjuïc", RawValue: "20"}})
	require.NoError(t, err)

	res := src.Load(models.PopulationFilter{})
	require.Equal(t, LoadLoaded, res.Status)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "Sants-Montjuïc", res.Records[0].DistrictName)
}

func TestSQLiteRecordSourceFailsOnClosedDB(t *testing.T) {
	src := openTestSource(t)
	require.NoError(t, src.db.Close())

	res := src.Load(models.PopulationFilter{})
	assert.Equal(t, LoadFailed, res.Status)
	assert.Error(t, res.Err)
}
