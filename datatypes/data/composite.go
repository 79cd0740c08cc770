package data

import (
	"fmt"
	"path/filepath"
	"strings"
)

// CompositeFile declares one named sub-file of a composite dataset.
type CompositeFile struct {
	Name                       string
	Description                string
	Mimetype                   string
	SubstituteNameWithMetadata string
	Optional                   bool
	IsBinary                   bool
}

// ResolvedName substitutes the named metadata value into the file name
// when substitution is enabled, else returns Name unchanged.
func (cf *CompositeFile) ResolvedName(meta Metadata) string {
	if cf.SubstituteNameWithMetadata == "base_name" && meta.BaseName != "" {
		return strings.Replace(cf.Name, "${base_name}", meta.BaseName, 1)
	}
	return cf.Name
}

// ManifestItem renders the sub-file as an HTML list item, annotated with
// its description and " (optional)" when the entry is optional.
func (cf *CompositeFile) ManifestItem() string {
	opt := ""
	if cf.Optional {
		opt = " (optional)"
	}
	if cf.Description != "" {
		return fmt.Sprintf("<li><a href=\"%s\" type=\"text/plain\">%s (%s)</a>%s</li>", cf.Name, cf.Name, cf.Description, opt)
	}
	return fmt.Sprintf("<li><a href=\"%s\" type=\"text/plain\">%s</a>%s</li>", cf.Name, cf.Name, opt)
}

// Dataset is the host-facing handle for one dataset instance: where its
// primary display file lives, where its composite sub-files live, and the
// metadata the datatype populates.
type Dataset struct {
	FileName       string
	ExtraFilesPath string
	Info           string
	Metadata       Metadata
}

func NewDataset(fileName, extraFilesPath string) *Dataset {
	return &Dataset{
		FileName:       fileName,
		ExtraFilesPath: extraFilesPath,
	}
}

// CompositePath returns the on-disk path of the named sub-file.
func (ds *Dataset) CompositePath(name string) string {
	return filepath.Join(ds.ExtraFilesPath, name)
}

// Manifest builds the HTML page listing a composite dataset's sub-files.
type Manifest struct {
	Title   string
	Caption []string
	Heading string
	Entries []*CompositeFile
}

// Render produces the page. Deterministic given the declared entries;
// entry order is preserved, each entry listed exactly once.
func (m *Manifest) Render() string {
	rval := []string{fmt.Sprintf("<html><head><title>%s</title></head><p/>", m.Title)}
	rval = append(rval, m.Caption...)
	rval = append(rval, fmt.Sprintf("<div>%s<p/><ul>", m.Heading))
	for _, cf := range m.Entries {
		rval = append(rval, cf.ManifestItem())
	}
	rval = append(rval, "</ul></div></html>")
	return strings.Join(rval, "\n")
}
