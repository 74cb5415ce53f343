package mdimport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scholarfolio "github.com/scholarfolio/scholarfolio"
)

const sampleCV = `# Dr. Jane Doe

## Education & Employment

- Postdoctoral Researcher | University of Tech | 2020-Present
- PhD in Computer Science | Science Institute | 2015-2020

## Technical Skills

- Programming | Python, C++, Rust
- Machine Learning | PyTorch, JAX

## Selected Publications

A survey of things, Journal of Stuff, 2024.

Another paper, Conference on Matters, 2023.
`

func TestImportSections(t *testing.T) {
	page, err := Import([]byte(sampleCV), &scholarfolio.SequenceSource{})
	require.NoError(t, err)

	assert.Equal(t, "Dr. Jane Doe", page.Title)
	require.Len(t, page.Layout, 3)

	edu := page.Layout[0]
	assert.Equal(t, scholarfolio.BlockEducationEmployment, edu.Type)
	assert.Equal(t, "Education & Employment", edu.Title.Text)
	require.Len(t, edu.Items, 2)
	assert.Equal(t, "Postdoctoral Researcher", edu.Items[0].Text)
	assert.Equal(t, "University of Tech", edu.Items[0].Subtext)
	assert.Equal(t, "2020-Present", edu.Items[0].Date)

	skills := page.Layout[1]
	assert.Equal(t, scholarfolio.BlockTechnicalSkills, skills.Type)

	pubs := page.Layout[2]
	assert.Equal(t, scholarfolio.BlockPublications, pubs.Type)
	require.Len(t, pubs.Items, 2)
	assert.Equal(t, "A survey of things, Journal of Stuff, 2024.", pubs.Items[0].Text)
}

func TestImportUnrecognizedHeadingIsCustom(t *testing.T) {
	page, err := Import([]byte("## Hobbies\n\n- chess\n"), &scholarfolio.SequenceSource{})
	require.NoError(t, err)
	require.Len(t, page.Layout, 1)
	assert.Equal(t, scholarfolio.BlockCustom, page.Layout[0].Type)
	assert.Equal(t, "Imported Page", page.Title)
}

func TestImportHeadlessContent(t *testing.T) {
	page, err := Import([]byte("just a paragraph"), &scholarfolio.SequenceSource{})
	require.NoError(t, err)
	require.Len(t, page.Layout, 1)
	assert.Equal(t, "Imported Content", page.Layout[0].Title.Text)
	require.Len(t, page.Layout[0].Items, 1)
	assert.Equal(t, "just a paragraph", page.Layout[0].Items[0].Text)
}

func TestImportEmptyFails(t *testing.T) {
	_, err := Import([]byte(""), &scholarfolio.SequenceSource{})
	assert.Error(t, err)
}

func TestImportUniqueIDs(t *testing.T) {
	page, err := Import([]byte(sampleCV), &scholarfolio.SequenceSource{})
	require.NoError(t, err)
	seen := map[string]bool{page.ID: true}
	for _, b := range page.Layout {
		require.False(t, seen[b.ID])
		seen[b.ID] = true
		for _, it := range b.Items {
			require.False(t, seen[it.ID])
			seen[it.ID] = true
		}
	}
}
