// Package to describe and sniff sequence file formats
package sequence

import (
	"os"
	"regexp"
	"strings"

	"github.com/KaiOnGitHub/galaxy/datatypes/data"
	"github.com/KaiOnGitHub/galaxy/datatypes/prefix"
)

var seqRegex = regexp.MustCompile(`^[A-Za-z\-\. ]+$`)

// Sequence is the base datatype for biological sequence files.
type Sequence struct {
	data.Text
}

func NewSequence() *Sequence {
	s := &Sequence{*data.NewText()}
	s.MetadataSpecs = append(s.MetadataSpecs, data.MetadataSpec{
		Name:    "sequences",
		Desc:    "Number of sequences",
		Default: "0",
	})
	return s
}

// Fasta is the generic FASTA datatype.
type Fasta struct {
	Sequence
}

func NewFasta() *Fasta {
	f := &Fasta{*NewSequence()}
	f.Ext = "fasta"
	f.Desc = "FASTA sequence file"
	f.Edam = "data_2044"
	f.EdamFmt = "format_1929"
	return f
}

// Sniff reports whether the prefix looks like FASTA: a '>' header on the
// first non-empty line followed by sequence data.
func (f *Fasta) Sniff(fp *prefix.FilePrefix) bool {
	it := fp.LineIterator()
	for {
		line, ok := it.Next()
		if !ok {
			return false
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, ">") {
			return false
		}
		for {
			next, ok := it.Next()
			if !ok {
				return false
			}
			next = strings.TrimSpace(next)
			if next == "" {
				continue
			}
			return seqRegex.MatchString(next)
		}
	}
}

// SetMeta counts data lines and sequence records of the primary file.
func (f *Fasta) SetMeta(ds *data.Dataset) error {
	if err := f.Text.SetMeta(ds); err != nil {
		return err
	}
	fh, err := os.Open(ds.FileName)
	if err != nil {
		return nil
	}
	defer fh.Close()
	n, err := Count(fh)
	if err != nil {
		return err
	}
	ds.Metadata.Sequences = n
	return nil
}
