package data_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/KaiOnGitHub/galaxy/datatypes/data"
	"github.com/stretchr/testify/assert"
)

func TestManifestRender(t *testing.T) {
	m := &Manifest{
		Title:   "Composite Dataset",
		Heading: "Files:",
		Entries: []*CompositeFile{
			{Name: "First", Description: "the first"},
			{Name: "Second"},
			{Name: "Third", Description: "the third", Optional: true},
		},
	}
	page := m.Render()
	lines := strings.Split(page, "\n")
	assert.Equal(t, "<html><head><title>Composite Dataset</title></head><p/>", lines[0])
	assert.Equal(t, "<div>Files:<p/><ul>", lines[1])
	assert.Equal(t, "<li><a href=\"First\" type=\"text/plain\">First (the first)</a></li>", lines[2])
	assert.Equal(t, "<li><a href=\"Second\" type=\"text/plain\">Second</a></li>", lines[3])
	assert.Equal(t, "<li><a href=\"Third\" type=\"text/plain\">Third (the third)</a> (optional)</li>", lines[4])
	assert.Equal(t, "</ul></div></html>", lines[5])
}

func TestCompositeFileResolvedName(t *testing.T) {
	cf := &CompositeFile{Name: "${base_name}.Sequences", SubstituteNameWithMetadata: "base_name"}
	assert.Equal(t, "velvet.Sequences", cf.ResolvedName(Metadata{BaseName: "velvet"}))
	// substitution disabled
	plain := &CompositeFile{Name: "Sequences"}
	assert.Equal(t, "Sequences", plain.ResolvedName(Metadata{BaseName: "velvet"}))
}

func TestDatasetCompositePath(t *testing.T) {
	ds := NewDataset("/data/primary.html", "/data/dataset_1_files")
	assert.Equal(t, filepath.Join("/data/dataset_1_files", "Log"), ds.CompositePath("Log"))
}

func TestTextSetMeta(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lines.txt")
	assert.NoError(t, os.WriteFile(path, []byte("one\ntwo\nthree"), 0644))

	txt := NewText()
	ds := NewDataset(path, "")
	assert.NoError(t, txt.SetMeta(ds))
	assert.Equal(t, int64(3), ds.Metadata.DataLines)

	// missing primary file leaves metadata untouched
	missing := NewDataset(filepath.Join(dir, "nope"), "")
	missing.Metadata.DataLines = 7
	assert.NoError(t, txt.SetMeta(missing))
	assert.Equal(t, int64(7), missing.Metadata.DataLines)
}

func TestInitMetadataDefaults(t *testing.T) {
	d := &Data{MetadataSpecs: []MetadataSpec{
		{Name: "base_name", Default: "velvet"},
		{Name: "paired_end_reads", Default: "False"},
		{Name: "long_reads", Default: "True"},
	}}
	ds := NewDataset("", "")
	d.InitMetadata(ds)
	assert.Equal(t, "velvet", ds.Metadata.BaseName)
	assert.False(t, ds.Metadata.PairedEndReads)
	assert.True(t, ds.Metadata.LongReads)
}
