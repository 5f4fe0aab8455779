// Command matcapdump extracts every matcap HDR image embedded in C++
// Polyscope's bindata sources into standalone files. It takes no
// arguments: one run performs the whole fixed batch.
//
// It expects the C++ checkout at ~/repo/polyscope and writes into
// crates/polyscope-render/data/matcaps relative to the current
// directory, so run it from the polyscope-rs repository root.
package main

import (
	"os"
	"path/filepath"

	"github.com/kisom/goutils/die"
	"github.com/spf13/afero"

	bindata "github.com/xarthurx/polyscope-rs"
)

func main() {
	home, err := os.UserHomeDir()
	die.If(err)

	x := &bindata.Extractor{
		FS:        afero.NewOsFs(),
		SourceDir: filepath.Join(home, "repo", "polyscope", "src", "render", "bindata"),
		OutputDir: filepath.Join("crates", "polyscope-render", "data", "matcaps"),
		Materials: bindata.Matcaps,
		Out:       os.Stdout,
	}

	_, err = x.Run()
	die.If(err)
}
