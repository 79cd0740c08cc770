// Package to read a bounded prefix of a file for format sniffing
package prefix

import (
	"bufio"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/KaiOnGitHub/galaxy/datatypes/conf"
	e "github.com/KaiOnGitHub/galaxy/datatypes/errors"
)

// FilePrefix is a read-only view over the leading bytes of a file.
// Immutable after construction; repeated iteration yields identical lines.
type FilePrefix struct {
	name      string
	buf       []byte
	truncated bool
}

// New reads at most conf.PREFIX_SIZE bytes from r.
func New(r io.Reader) (*FilePrefix, error) {
	return NewWithSize(r, conf.PREFIX_SIZE)
}

// NewWithSize reads at most size bytes from r.
func NewWithSize(r io.Reader, size int64) (*FilePrefix, error) {
	if size <= 0 {
		return nil, errors.New(e.InvalidPrefixSize)
	}
	buf, err := io.ReadAll(io.LimitReader(r, size))
	if err != nil {
		return nil, err
	}
	p := &FilePrefix{buf: buf}
	one := make([]byte, 1)
	if n, _ := r.Read(one); n > 0 {
		p.truncated = true
	}
	return p, nil
}

// NewFromFile opens path and reads its prefix. A gzip magic header is
// detected and the prefix is read from the decompressed stream.
func NewFromFile(path string) (*FilePrefix, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	br := bufio.NewReader(fh)
	var r io.Reader = br
	if magic, err := br.Peek(2); err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
	}
	p, err := New(r)
	if err != nil {
		return nil, err
	}
	p.name = path
	return p, nil
}

// NewFromString wraps already-read content, never truncated.
func NewFromString(s string) *FilePrefix {
	return &FilePrefix{buf: []byte(s)}
}

func (p *FilePrefix) Name() string {
	return p.name
}

// Text returns the whole (possibly truncated) prefix.
func (p *FilePrefix) Text() string {
	return string(p.buf)
}

func (p *FilePrefix) Size() int64 {
	return int64(len(p.buf))
}

func (p *FilePrefix) Truncated() bool {
	return p.truncated
}

// Lines returns the prefix lines in on-disk byte order. No line is
// synthesized; when the prefix was truncated mid-line the unterminated
// tail is withheld so line-anchored patterns never match a partial line.
func (p *FilePrefix) Lines() []string {
	text := string(p.buf)
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	} else if p.truncated {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// LineIterator walks the prefix one line at a time.
type LineIterator struct {
	lines []string
	pos   int
}

func (p *FilePrefix) LineIterator() *LineIterator {
	return &LineIterator{lines: p.Lines()}
}

// Next returns the next line and false once the prefix is exhausted.
func (it *LineIterator) Next() (line string, ok bool) {
	if it.pos >= len(it.lines) {
		return "", false
	}
	line = it.lines[it.pos]
	it.pos++
	return line, true
}
