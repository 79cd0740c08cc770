// Package contains the base datatype structs and metadata declarations
package data

import (
	"bufio"
	"io"
	"os"

	"github.com/KaiOnGitHub/galaxy/datatypes/conf"
	"github.com/KaiOnGitHub/galaxy/datatypes/prefix"
)

// Datatype is the set of accessors every registered datatype exposes.
type Datatype interface {
	FileExt() string
	Mimetype() string
	Description() string
	EdamData() string
	EdamFormat() string
}

// Sniffer is implemented by datatypes that can be auto-detected from a
// bounded file prefix. Composite datatypes are lookup-only and do not
// implement it.
type Sniffer interface {
	Datatype
	Sniff(fp *prefix.FilePrefix) bool
}

// MetadataSpec declares one metadata element: its name, description,
// string default and mutability flags.
type MetadataSpec struct {
	Name        string
	Desc        string
	Default     string
	ReadOnly    bool
	SetInUpload bool
}

// Metadata holds the per-dataset metadata values the assembly datatypes
// populate.
type Metadata struct {
	BaseName       string
	PairedEndReads bool
	LongReads      bool
	Short2Reads    bool
	DataLines      int64
	Sequences      int64
}

// Data is the base datatype implementation.
type Data struct {
	Ext           string
	Mime          string
	Desc          string
	Edam          string
	EdamFmt       string
	MetadataSpecs []MetadataSpec

	composites []*CompositeFile
}

func (d *Data) FileExt() string {
	if d.Ext == "" {
		return "data"
	}
	return d.Ext
}

func (d *Data) Mimetype() string {
	if d.Mime == "" {
		return "application/octet-stream"
	}
	return d.Mime
}

func (d *Data) Description() string {
	return d.Desc
}

func (d *Data) EdamData() string {
	return d.Edam
}

func (d *Data) EdamFormat() string {
	return d.EdamFmt
}

// AddCompositeFile appends a sub-file declaration. Declaration order is
// preserved for display.
func (d *Data) AddCompositeFile(cf *CompositeFile) {
	d.composites = append(d.composites, cf)
}

// CompositeFiles returns the declared sub-files in declaration order.
func (d *Data) CompositeFiles() []*CompositeFile {
	return d.composites
}

// InitMetadata applies the declared metadata element defaults to ds.
func (d *Data) InitMetadata(ds *Dataset) {
	for _, spec := range d.MetadataSpecs {
		switch spec.Name {
		case "base_name":
			ds.Metadata.BaseName = spec.Default
		case "paired_end_reads":
			ds.Metadata.PairedEndReads = conf.Bool(spec.Default)
		case "long_reads":
			ds.Metadata.LongReads = conf.Bool(spec.Default)
		case "short2_reads":
			ds.Metadata.Short2Reads = conf.Bool(spec.Default)
		}
	}
}

// Text is the line-oriented base datatype.
type Text struct {
	Data
}

func NewText() *Text {
	return &Text{Data{Ext: "txt", Mime: "text/plain"}}
}

// SetMeta counts the data lines of the primary file into
// ds.Metadata.DataLines. A missing primary file leaves metadata untouched.
func (t *Text) SetMeta(ds *Dataset) error {
	fh, err := os.Open(ds.FileName)
	if err != nil {
		return nil
	}
	defer fh.Close()
	r := bufio.NewReader(fh)
	var count int64
	for {
		p, err := r.ReadBytes('\n')
		if err == io.EOF {
			if len(p) > 0 {
				count++
			}
			break
		}
		if err != nil {
			return err
		}
		count++
	}
	ds.Metadata.DataLines = count
	return nil
}

// HTML is the base for datatypes whose primary file is a rendered page.
type HTML struct {
	Text
}

func NewHTML() *HTML {
	return &HTML{Text{Data{Ext: "html", Mime: "text/html"}}}
}
