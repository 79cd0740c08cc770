package assembly

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/KaiOnGitHub/galaxy/datatypes/data"
	"github.com/KaiOnGitHub/galaxy/datatypes/logger"
)

// Bytes of the Log sub-file inspected for run flags.
const logReadLimit = 1000

const manifestTitle = "Velvet Galaxy Composite Dataset "

var (
	pathRegex    = regexp.MustCompile(`/\S*/`)
	pairedRegex  = regexp.MustCompile(`-(short|long)Paired`)
	longRegex    = regexp.MustCompile(`-long`)
	short2Regex  = regexp.MustCompile(`-short(Paired)?2`)
	velvethRegex = regexp.MustCompile(`.*velveth \S+`)
)

// LogFlags are the read-category traits derived from a velveth Log file.
type LogFlags struct {
	PairedEndReads bool
	LongReads      bool
	Short2Reads    bool
	Summary        string
}

// Caption formats the traits for display, omitting absent ones.
func (f LogFlags) Caption() string {
	msg := ""
	if f.PairedEndReads {
		msg += " Paired-End Reads"
	}
	if f.LongReads {
		msg += " Long Reads"
	}
	if msg != "" {
		msg = "Uses:" + msg
	}
	return msg
}

// DeriveFlagsFromLog inspects at most the first 1000 bytes of a velveth
// Log file's content. Path fragments are stripped before matching so
// input file paths never trip the option patterns. Pure and idempotent;
// content matching no pattern yields zero flags, not an error.
func DeriveFlagsFromLog(logText string) LogFlags {
	if len(logText) > logReadLimit {
		logText = logText[:logReadLimit]
	}
	msg := pathRegex.ReplaceAllString(logText, "")
	flags := LogFlags{
		PairedEndReads: pairedRegex.MatchString(msg),
		LongReads:      longRegex.MatchString(msg),
		Short2Reads:    short2Regex.MatchString(msg),
	}
	flags.Summary = velvethRegex.ReplaceAllString(strings.ReplaceAll(msg, "\n", " "), "hash_length")
	return flags
}

// Velvet is the composite dataset written by velveth: Sequences and
// Roadmaps sub-files plus an optional Log, fronted by a generated HTML
// primary file.
type Velvet struct {
	data.HTML
}

func NewVelvet() *Velvet {
	v := &Velvet{*data.NewHTML()}
	v.Ext = "velvet"
	v.Desc = "Velvet assembly dataset"
	v.MetadataSpecs = []data.MetadataSpec{
		{Name: "base_name", Desc: "base name for velveth dataset", Default: "velvet", ReadOnly: true, SetInUpload: true},
		{Name: "paired_end_reads", Desc: "has paired-end reads", Default: "False", SetInUpload: true},
		{Name: "long_reads", Desc: "has long reads", Default: "False", SetInUpload: true},
		{Name: "short2_reads", Desc: "has 2nd short reads", Default: "False", SetInUpload: true},
	}
	v.AddCompositeFile(&data.CompositeFile{Name: "Sequences", Description: "Sequences", Mimetype: "text/html"})
	v.AddCompositeFile(&data.CompositeFile{Name: "Roadmaps", Description: "Roadmaps", Mimetype: "text/html"})
	v.AddCompositeFile(&data.CompositeFile{Name: "Log", Description: "Log", Mimetype: "text/html", Optional: true})
	return v
}

// GeneratePrimaryFile renders the initial manifest page listing every
// declared sub-file in declaration order.
func (v *Velvet) GeneratePrimaryFile(ds *data.Dataset) string {
	logger.Dump(ds)
	m := data.Manifest{
		Title:   manifestTitle,
		Heading: "This composite dataset is composed of the following files:",
		Entries: v.CompositeFiles(),
	}
	return m.Render()
}

// RegeneratePrimaryFile re-renders the manifest after the sub-files are in
// place: flags are derived from the Log sub-file when readable, and the
// listing omits the Log entry. A missing or unreadable Log is not an
// error; the page is written with zero flags and an empty caption.
func (v *Velvet) RegeneratePrimaryFile(ds *data.Dataset) error {
	var flags LogFlags
	if text, err := readHead(ds.CompositePath("Log"), logReadLimit); err == nil {
		flags = DeriveFlagsFromLog(text)
		ds.Metadata.PairedEndReads = flags.PairedEndReads
		ds.Metadata.LongReads = flags.LongReads
		ds.Metadata.Short2Reads = flags.Short2Reads
		ds.Info = flags.Summary
	} else {
		logger.Debug("velvet: could not read Log file in %s", ds.ExtraFilesPath)
	}
	entries := []*data.CompositeFile{}
	for _, cf := range v.CompositeFiles() {
		if strings.Contains(cf.Name, "Log") {
			continue
		}
		entries = append(entries, cf)
	}
	m := data.Manifest{
		Title:   manifestTitle,
		Caption: []string{fmt.Sprintf("<div>Generated:<p/> %s </div>", flags.Caption())},
		Heading: "Velveth dataset:",
		Entries: entries,
	}
	return os.WriteFile(ds.FileName, []byte(m.Render()+"\n"), 0644)
}

// SetMeta fills the base text metadata, then regenerates the primary file
// so the page reflects the Log-derived flags.
func (v *Velvet) SetMeta(ds *data.Dataset) error {
	if err := v.HTML.SetMeta(ds); err != nil {
		return err
	}
	return v.RegeneratePrimaryFile(ds)
}

func readHead(path string, n int64) (string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer fh.Close()
	buf, err := io.ReadAll(io.LimitReader(fh, n))
	if err != nil {
		return "", err
	}
	return string(buf), nil
}
