// Command matcapinfo lists the byte arrays found in bindata source
// files without writing anything.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kisom/goutils/lib"

	bindata "github.com/xarthurx/polyscope-rs"
)

func scanFile(path string) {
	doc, err := os.ReadFile(path)
	if err != nil {
		lib.Warn(err, "failed to read %s", path)
		return
	}

	arrays := bindata.Extract(doc)
	if len(arrays) == 0 {
		fmt.Printf("%s: no bindata arrays\n", path)
		return
	}

	fmt.Printf("%s:\n", path)
	for _, a := range arrays {
		preview := a.Data
		if len(preview) > 4 {
			preview = preview[:4]
		}
		fmt.Printf("  %-24s %8d bytes  [% x]\n", a.Name, len(a.Data), preview)
	}
}

func main() {
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: matcapinfo bindata_file.cpp ...")
		os.Exit(1)
	}

	for _, path := range flag.Args() {
		scanFile(path)
	}
}
