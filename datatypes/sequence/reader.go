package sequence

// Modified under the terms of GPL3 from
// Dan Kortschak github.com/kortschak/BioGo

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	e "github.com/KaiOnGitHub/galaxy/datatypes/errors"
)

// Rec is a single FASTA record.
type Rec struct {
	ID  []byte
	Seq []byte
}

// Reader reads FASTA records from a stream.
type Reader struct {
	f io.Reader
	r *bufio.Reader
}

func NewReader(f io.Reader) *Reader {
	return &Reader{
		f: f,
		r: nil,
	}
}

// Read a single record and return it or an error.
func (self *Reader) Read() (rec *Rec, err error) {
	if self.r == nil {
		self.r = bufio.NewReader(self.f)
	}
	var prev, read, label, body []byte
	var eof bool
	for {
		read, err = self.r.ReadBytes('>')
		// non eof error
		if err != nil {
			if err == io.EOF {
				eof = true
			} else {
				return
			}
		}
		if len(prev) > 0 {
			read = append(prev, read...)
		}
		// only have '>'
		if len(read) == 1 {
			if eof {
				break
			} else {
				continue
			}
		}
		// found an embedded '>'
		if !bytes.Contains(read, []byte{'\n'}) {
			if eof {
				break
			}
			prev = read
			continue
		}
		// process lines
		read = bytes.TrimSpace(bytes.TrimRight(read, ">"))
		lines := bytes.Split(read, []byte{'\n'})
		if len(lines) > 1 {
			label = bytes.TrimSpace(lines[0])
			body = bytes.Join(lines[1:], []byte{})
		}
		break
	}
	if len(label) > 0 && len(body) > 0 {
		rec = &Rec{ID: label, Seq: body}
	} else {
		err = errors.New(e.InvalidFastaEntry)
	}
	if eof {
		err = io.EOF
	}
	return
}

// Count tallies the records in f.
func Count(f io.Reader) (n int64, err error) {
	r := NewReader(f)
	for {
		rec, err := r.Read()
		if rec != nil {
			n++
		}
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
	}
}
