package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault_HasFourUniqueSections(t *testing.T) {
	doc := Default()
	require.Equal(t, "Leervaardigheden", doc.Title)
	require.Len(t, doc.Sections, 4)
	seen := map[string]bool{}
	for _, s := range doc.Sections {
		require.False(t, seen[s.ID])
		seen[s.ID] = true
	}
}

func TestParse_YAMLAssignsMissingIDs(t *testing.T) {
	doc, err := Parse([]byte(`
title: Notes
sections:
  - title: First
    content: one
  - id: s1
    title: Second
  - title: Third
`))
	require.NoError(t, err)
	require.Equal(t, "Notes", doc.Title)
	require.Len(t, doc.Sections, 3)
	require.Equal(t, "s2", doc.Sections[0].ID)
	require.Equal(t, "s1", doc.Sections[1].ID)
	require.Equal(t, "s3", doc.Sections[2].ID)
	require.Equal(t, "one", doc.Sections[0].Content)
}

func TestParse_JSON(t *testing.T) {
	doc, err := Parse([]byte(`{"title":"J","sections":[{"id":"x","title":"T","content":"C"}]}`))
	require.NoError(t, err)
	require.Equal(t, "x", doc.Sections[0].ID)
	require.Equal(t, "C", doc.Sections[0].Content)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("title: empty\nsections: []\n"))
	require.Error(t, err)

	_, err = Parse([]byte("sections:\n  - id: a\n  - id: a\n"))
	require.ErrorContains(t, err, "duplicate section id")

	_, err = Parse([]byte("sections:\n  - id: a\n    colour: red\n"))
	require.Error(t, err)
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	doc, err := Load("  ")
	require.NoError(t, err)
	require.Equal(t, Default(), doc)
}

func TestLoad_File(t *testing.T) {
	p := filepath.Join(t.TempDir(), "page.yaml")
	require.NoError(t, os.WriteFile(p, []byte("title: F\nsections:\n  - title: only\n"), 0o644))
	doc, err := Load(p)
	require.NoError(t, err)
	require.Equal(t, "F", doc.Title)
	require.Equal(t, "s1", doc.Sections[0].ID)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "read seed")
}
