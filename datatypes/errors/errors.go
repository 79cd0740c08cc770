// Package contains error strings for common datatype errors
package errors

const (
	DuplicateExtension = "Datatype extension already registered"
	UnknownExtension   = "Unknown datatype extension"
	UnknownFormat      = "File format not recognized"
	InvalidPrefixSize  = "Invalid prefix size"
	InvalidFastaEntry  = "Invalid fasta entry"
)
