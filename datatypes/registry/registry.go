// Package registry implements datatype registration and ordered sniff dispatch
package registry

import (
	"errors"

	"github.com/KaiOnGitHub/galaxy/datatypes/assembly"
	"github.com/KaiOnGitHub/galaxy/datatypes/data"
	e "github.com/KaiOnGitHub/galaxy/datatypes/errors"
	"github.com/KaiOnGitHub/galaxy/datatypes/prefix"
	"github.com/KaiOnGitHub/galaxy/datatypes/sequence"
)

// Registry holds the registered datatypes. Registration order determines
// sniff order, so more specific formats must be registered before the
// generic ones they specialize.
type Registry struct {
	order []data.Datatype
	byExt map[string]data.Datatype
}

func New() *Registry {
	return &Registry{
		byExt: map[string]data.Datatype{},
	}
}

// Default returns a registry preloaded with the assembly and sequence
// datatypes. The velveth Sequences format is a restricted FASTA and is
// registered ahead of the generic fasta sniffer. Velvet is a composite
// type, available for extension lookup only.
func Default() *Registry {
	r := New()
	r.Register(assembly.NewAmos())
	r.Register(assembly.NewSequences())
	r.Register(assembly.NewRoadmaps())
	r.Register(sequence.NewFasta())
	r.Register(assembly.NewVelvet())
	return r
}

// Register adds dt. Extensions are unique; a duplicate is rejected.
func (r *Registry) Register(dt data.Datatype) error {
	if _, found := r.byExt[dt.FileExt()]; found {
		return errors.New(e.DuplicateExtension)
	}
	r.order = append(r.order, dt)
	r.byExt[dt.FileExt()] = dt
	return nil
}

// Lookup returns the datatype registered for ext.
func (r *Registry) Lookup(ext string) (data.Datatype, error) {
	dt, found := r.byExt[ext]
	if !found {
		return nil, errors.New(e.UnknownExtension)
	}
	return dt, nil
}

// Sniffers returns the sniffable datatypes in registration order.
func (r *Registry) Sniffers() []data.Sniffer {
	sniffers := []data.Sniffer{}
	for _, dt := range r.order {
		if s, ok := dt.(data.Sniffer); ok {
			sniffers = append(sniffers, s)
		}
	}
	return sniffers
}

// Sniff runs the registered sniffers against fp in registration order and
// returns the extension of the first match. No match is not an error.
func (r *Registry) Sniff(fp *prefix.FilePrefix) (ext string, ok bool) {
	for _, s := range r.Sniffers() {
		if s.Sniff(fp) {
			return s.FileExt(), true
		}
	}
	return "", false
}

// GuessExt sniffs the file at path and returns the matched extension.
func (r *Registry) GuessExt(path string) (string, error) {
	fp, err := prefix.NewFromFile(path)
	if err != nil {
		return "", err
	}
	if ext, ok := r.Sniff(fp); ok {
		return ext, nil
	}
	return "", errors.New(e.UnknownFormat)
}
