package assembly

import (
	"regexp"
	"strings"

	"github.com/KaiOnGitHub/galaxy/datatypes/data"
	"github.com/KaiOnGitHub/galaxy/datatypes/prefix"
)

var (
	roadmapCountsRegex = regexp.MustCompile(`^\d+\t\d+\t\d+$`)
	roadmapEntryRegex  = regexp.MustCompile(`^ROADMAP \d+$`)
)

// Roadmaps is the velveth roadmap intermediate file datatype.
type Roadmaps struct {
	data.Text
}

func NewRoadmaps() *Roadmaps {
	r := &Roadmaps{*data.NewText()}
	r.Ext = "roadmaps"
	r.Desc = "Velvet Roadmaps file"
	r.EdamFmt = "format_2561"
	return r
}

// Sniff requires three tab-separated integers on the first non-empty line
// followed by a ROADMAP record on the next. Exactly two lines are examined.
func (r *Roadmaps) Sniff(fp *prefix.FilePrefix) bool {
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
		if !roadmapCountsRegex.MatchString(line) {
			return false
		}
		next, ok := it.Next()
		if !ok {
			return false
		}
		return roadmapEntryRegex.MatchString(strings.TrimSpace(next))
	}
}
