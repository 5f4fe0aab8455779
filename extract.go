package bindata

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Extractor runs one fixed extraction batch: read each material's
// bindata source from SourceDir, select one array per channel, and
// dump the raw bytes under OutputDir. Progress and warnings go to Out.
//
// The only fatal condition is failing to set up the output directory
// (or a write error once an array has been selected); everything else
// is reported and skipped so the rest of the batch still runs.
type Extractor struct {
	FS        afero.Fs
	SourceDir string
	OutputDir string
	Materials []Material
	Out       io.Writer
}

// Summary reports what a run wrote.
type Summary struct {
	Files int
	Bytes int
}

// Run processes every material in table order and returns the totals.
// Outputs already written stay on disk if a later step fails; a rerun
// over unchanged inputs rewrites them bit-identically.
func (e *Extractor) Run() (Summary, error) {
	var sum Summary

	out := e.Out
	if out == nil {
		out = io.Discard
	}

	if err := e.FS.MkdirAll(e.OutputDir, 0755); err != nil {
		return sum, fmt.Errorf("bindata: creating output directory: %w", err)
	}

	for _, mat := range e.Materials {
		src := filepath.Join(e.SourceDir, mat.Source)
		if ok, err := afero.Exists(e.FS, src); err != nil || !ok {
			fmt.Fprintf(out, "WARNING: %s not found, skipping\n", src)
			continue
		}
		doc, err := afero.ReadFile(e.FS, src)
		if err != nil {
			fmt.Fprintf(out, "WARNING: %s not readable, skipping: %v\n", src, err)
			continue
		}

		fmt.Fprintf(out, "Processing %s...\n", mat.Source)
		arrays := Extract(doc)

		for _, ch := range mat.Channels {
			arr, ok := arrays.Select(ch.Suffix)
			if !ok {
				fmt.Fprintf(out, "  WARNING: No array found for suffix '%s' in %s\n", ch.Suffix, mat.Source)
				continue
			}

			dst := filepath.Join(e.OutputDir, ch.Filename)
			if err := afero.WriteFile(e.FS, dst, arr.Data, 0644); err != nil {
				return sum, fmt.Errorf("bindata: writing %s: %w", dst, err)
			}

			sum.Files++
			sum.Bytes += len(arr.Data)
			fmt.Fprintf(out, "  %s -> %s (%d bytes)\n", arr.Name, ch.Filename, len(arr.Data))
		}
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(out, "\nDone: %d files, %d bytes total\n", sum.Files, sum.Bytes)
	fmt.Fprintf(out, "Output directory: %s\n", e.OutputDir)
	return sum, nil
}
