package bindata

import (
	"bufio"
	"fmt"
	"io"
)

// packRowLen is how many byte tokens go on one line of the generated
// literal body, matching the layout of the bindata files Polyscope
// ships.
const packRowLen = 16

// Pack is the inverse of Extract: it writes data as a C++ translation
// unit declaring a single bindata array under name. The output parses
// back through Extract byte-for-byte.
func Pack(w io.Writer, name string, data []byte) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "// Generated file holding the raw bytes of an embedded matcap image.\n")
	fmt.Fprintf(bw, "// Do not edit by hand.\n\n")
	fmt.Fprintf(bw, "#include <array>\n\n")
	fmt.Fprintf(bw, "namespace polyscope {\nnamespace render {\n\n")
	fmt.Fprintf(bw, "const std::array<unsigned char, %d> %s = {", len(data), name)
	for i, b := range data {
		if i%packRowLen == 0 {
			fmt.Fprintf(bw, "\n    ")
		}
		fmt.Fprintf(bw, "0x%02x, ", b)
	}
	fmt.Fprintf(bw, "\n};\n\n")
	fmt.Fprintf(bw, "} // namespace render\n} // namespace polyscope\n")

	return bw.Flush()
}
