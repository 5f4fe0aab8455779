// Command matcappack embeds a binary image back into a C++ bindata
// source file, the reverse of matcapdump. Useful when a matcap is
// edited and the compiled-in copy needs to be regenerated.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kisom/goutils/die"

	bindata "github.com/xarthurx/polyscope-rs"
)

var (
	outPath   string
	arrayName string
)

func init() {
	flag.StringVar(&outPath, "o", "", "output file (default bindata_<base>.cpp)")
	flag.StringVar(&arrayName, "name", "", "array identifier (default bindata_<base>)")
}

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: matcappack [-o out.cpp] [-name ident] image.hdr")
		os.Exit(1)
	}

	path := flag.Arg(0)
	data, err := os.ReadFile(path)
	die.If(err)

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if arrayName == "" {
		arrayName = "bindata_" + base
	}
	if outPath == "" {
		outPath = "bindata_" + base + ".cpp"
	}

	out, err := os.Create(outPath)
	die.If(err)

	err = bindata.Pack(out, arrayName, data)
	if err != nil {
		out.Close()
		die.If(err)
	}
	die.If(out.Close())

	fmt.Printf("%s -> %s (%d bytes)\n", path, outPath, len(data))
}
