// Package to describe and sniff velvet assembler file formats
package assembly

import (
	"regexp"
	"strings"

	"github.com/KaiOnGitHub/galaxy/datatypes/data"
	"github.com/KaiOnGitHub/galaxy/datatypes/prefix"
)

var amosRegex = regexp.MustCompile(`^\{(RED|CTG|TLE)$`)

// Amos is the AMOS assembly message file datatype.
type Amos struct {
	data.Text
}

func NewAmos() *Amos {
	a := &Amos{*data.NewText()}
	a.Ext = "afg"
	a.Desc = "AMOS assembly file"
	a.Edam = "data_0925"
	a.EdamFmt = "format_3582"
	return a
}

// Sniff reports whether the prefix is an AMOS assembly file: the first
// non-empty line, trimmed, is exactly one of {RED, {CTG or {TLE.
func (a *Amos) Sniff(fp *prefix.FilePrefix) bool {
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
		return strings.HasPrefix(line, "{") && amosRegex.MatchString(line)
	}
}
