package assembly

import (
	"regexp"
	"strings"

	"github.com/KaiOnGitHub/galaxy/datatypes/prefix"
	"github.com/KaiOnGitHub/galaxy/datatypes/sequence"
)

var seqHeaderRegex = regexp.MustCompile(`^>[^\t]+\t\d+\t\d+$`)

// Sequences is the FASTA variant written by velveth: each header line has
// three tab-separated fields, sequence_name sequence_index category.
type Sequences struct {
	sequence.Fasta
}

func NewSequences() *Sequences {
	s := &Sequences{*sequence.NewFasta()}
	s.Ext = "sequences"
	s.Desc = "Velvet Sequences file"
	s.Edam = "data_0925"
	return s
}

// Sniff checks the first non-empty line against the velveth header shape,
// then requires the next raw line to be non-empty sequence data. Only two
// lines are ever examined.
func (s *Sequences) Sniff(fp *prefix.FilePrefix) bool {
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
		if !seqHeaderRegex.MatchString(line) {
			return false
		}
		next, ok := it.Next()
		if !ok {
			return false
		}
		next = strings.TrimSpace(next)
		return next != "" && !strings.HasPrefix(next, ">")
	}
}
