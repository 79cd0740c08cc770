package assembly_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/KaiOnGitHub/galaxy/datatypes/assembly"
	"github.com/KaiOnGitHub/galaxy/datatypes/data"
	"github.com/stretchr/testify/assert"
)

func TestVelvetGeneratePrimaryFile(t *testing.T) {
	v := NewVelvet()
	ds := data.NewDataset("", "")
	page := v.GeneratePrimaryFile(ds)

	for _, name := range []string{"Sequences", "Roadmaps", "Log"} {
		assert.Equal(t, 1, strings.Count(page, "<a href=\""+name+"\""), name)
	}
	assert.Less(t, strings.Index(page, "\"Sequences\""), strings.Index(page, "\"Roadmaps\""))
	assert.Less(t, strings.Index(page, "\"Roadmaps\""), strings.Index(page, "\"Log\""))
	assert.Contains(t, page, "Log (Log)</a> (optional)")
	assert.NotContains(t, page, "Sequences (Sequences)</a> (optional)")
}

func TestVelvetRegeneratePrimaryFile(t *testing.T) {
	v := NewVelvet()
	dir := t.TempDir()
	extra := filepath.Join(dir, "dataset_1_files")
	assert.NoError(t, os.MkdirAll(extra, 0755))
	assert.NoError(t, os.WriteFile(filepath.Join(extra, "Log"), []byte("velveth out 21 -shortPaired /reads/pe.fa -long long.fa\n"), 0644))

	ds := data.NewDataset(filepath.Join(dir, "primary.html"), extra)
	v.InitMetadata(ds)
	assert.NoError(t, v.RegeneratePrimaryFile(ds))

	assert.True(t, ds.Metadata.PairedEndReads)
	assert.True(t, ds.Metadata.LongReads)
	assert.False(t, ds.Metadata.Short2Reads)
	assert.True(t, strings.HasPrefix(ds.Info, "hash_length"))

	page, err := os.ReadFile(ds.FileName)
	assert.NoError(t, err)
	assert.Contains(t, string(page), "Uses: Paired-End Reads Long Reads")
	assert.Contains(t, string(page), "\"Sequences\"")
	assert.Contains(t, string(page), "\"Roadmaps\"")
	assert.NotContains(t, string(page), "\"Log\"")
	assert.True(t, strings.HasSuffix(string(page), "\n"))
}

func TestVelvetRegenerateMissingLog(t *testing.T) {
	v := NewVelvet()
	dir := t.TempDir()
	ds := data.NewDataset(filepath.Join(dir, "primary.html"), filepath.Join(dir, "dataset_2_files"))
	v.InitMetadata(ds)

	assert.NoError(t, v.RegeneratePrimaryFile(ds))
	assert.False(t, ds.Metadata.PairedEndReads)
	assert.False(t, ds.Metadata.LongReads)
	assert.False(t, ds.Metadata.Short2Reads)

	page, err := os.ReadFile(ds.FileName)
	assert.NoError(t, err)
	assert.Contains(t, string(page), "<div>Generated:<p/>  </div>")
	assert.NotContains(t, string(page), "\"Log\"")
}

func TestVelvetSetMeta(t *testing.T) {
	v := NewVelvet()
	dir := t.TempDir()
	extra := filepath.Join(dir, "dataset_3_files")
	assert.NoError(t, os.MkdirAll(extra, 0755))
	assert.NoError(t, os.WriteFile(filepath.Join(extra, "Log"), []byte("velveth out 31 -short2 s2.fa\n"), 0644))

	ds := data.NewDataset(filepath.Join(dir, "primary.html"), extra)
	v.InitMetadata(ds)
	assert.Equal(t, "velvet", ds.Metadata.BaseName)

	assert.NoError(t, v.SetMeta(ds))
	assert.True(t, ds.Metadata.Short2Reads)
	assert.False(t, ds.Metadata.PairedEndReads)
	_, err := os.Stat(ds.FileName)
	assert.NoError(t, err)
}
