package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProjectFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.json")
	content := `{
  "project": {"title": "Landing page", "client": "Bar Centrale", "budget": 350},
  "tasks": [
    {"name": "Copywriting", "hours": 3},
    {"name": "Build", "price": 250, "done": true}
  ]
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	pf, err := LoadProjectFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Landing page", pf.Project.Title)
	require.NotNil(t, pf.Project.Budget)
	assert.Equal(t, 350, *pf.Project.Budget)
	require.Len(t, pf.Tasks, 2)
	assert.Nil(t, pf.Tasks[0].Price)
	require.NotNil(t, pf.Tasks[1].Price)
	assert.Equal(t, 250, *pf.Tasks[1].Price)
	assert.True(t, pf.Tasks[1].Done)
}

func TestLoadProjectFile_MissingFile(t *testing.T) {
	_, err := LoadProjectFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadProjectFile_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadProjectFile(path)
	assert.ErrorContains(t, err, "parsing project file")
}

func TestSaveProjectFile_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	pf := validMinimalFile()
	require.NoError(t, SaveProjectFile(path, pf))

	loaded, err := LoadProjectFile(path)
	require.NoError(t, err)
	assert.Equal(t, pf.Project, loaded.Project)
	assert.Equal(t, pf.Tasks, loaded.Tasks)
}
