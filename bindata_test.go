package bindata

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want Arrays
	}{
		{"empty document", "", nil},
		{"no declarations",
			"#include <array>\n\nstatic int counter = 0;\n",
			nil},
		{"single array",
			`const std::array<unsigned char, 4> bindata_mud = { 0x01, 0x02, 0x03, 0x04 };`,
			Arrays{{"bindata_mud", []byte{0x01, 0x02, 0x03, 0x04}}}},
		{"token order is byte order",
			`const std::array<unsigned char, 4> beef = { 0xDE, 0xAD, 0xBE, 0xEF };`,
			Arrays{{"beef", []byte{0xde, 0xad, 0xbe, 0xef}}}},
		{"body spanning lines with comments",
			"const std::array<unsigned char, 6> wax_r = {\n" +
				"    0x23, 0x3f, // RADIANCE magic\n" +
				"    0x52, 0x41,\n" +
				"    0x44, 0x49,\n" +
				"};\n",
			Arrays{{"wax_r", []byte{0x23, 0x3f, 0x52, 0x41, 0x44, 0x49}}}},
		{"several arrays keep document order",
			"const std::array<unsigned char, 2> clay_r = { 0x01, 0x02 };\n" +
				"const std::array<unsigned char, 2> clay_g = { 0x03, 0x04 };\n",
			Arrays{
				{"clay_r", []byte{0x01, 0x02}},
				{"clay_g", []byte{0x03, 0x04}},
			}},
		{"tokens outside the 0xNN shape are dropped",
			`const std::array<unsigned char, 3> odd = { 0x1, 0xGG, 0x22, 0x333 };`,
			// 0x1 is too short, 0xGG is not hex, and 0x333 yields
			// only its first two digits.
			Arrays{{"odd", []byte{0x22, 0x33}}}},
		{"duplicate name keeps position, later data wins",
			"const std::array<unsigned char, 1> dup = { 0x0a };\n" +
				"const std::array<unsigned char, 1> other = { 0x0b };\n" +
				"const std::array<unsigned char, 1> dup = { 0x0c };\n",
			Arrays{
				{"dup", []byte{0x0c}},
				{"other", []byte{0x0b}},
			}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Extract([]byte(tt.doc))); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestSelect(t *testing.T) {
	channels := Arrays{
		{"mat_r", []byte{0x01}},
		{"mat_g", []byte{0x02}},
	}

	tests := []struct {
		name   string
		as     Arrays
		suffix string
		want   string
		ok     bool
	}{
		{"suffix picks the matching channel", channels, "_g", "mat_g", true},
		{"empty suffix picks the first array", channels, "", "mat_r", true},
		{"unmatched suffix falls back to the first array", channels, "_z", "mat_r", true},
		{"nothing to select from", nil, "_r", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arr, ok := tt.as.Select(tt.suffix)
			if ok != tt.ok {
				t.Fatalf("bindata: Select(%q) ok = %v, want %v", tt.suffix, ok, tt.ok)
			}
			if ok && arr.Name != tt.want {
				t.Errorf("bindata: Select(%q) = %s, want %s", tt.suffix, arr.Name, tt.want)
			}
		})
	}
}

// Two arrays can share a suffix; selection must stick to the first one
// in document order, every time.
func TestSelectAmbiguousSuffix(t *testing.T) {
	doc := "const std::array<unsigned char, 1> oldwax_k = { 0x01 };\n" +
		"const std::array<unsigned char, 1> wax_k = { 0x02 };\n"

	arrays := Extract([]byte(doc))
	for i := 0; i < 5; i++ {
		arr, ok := arrays.Select("_k")
		if !ok {
			t.Fatal("bindata: no selection for suffix _k")
		}
		if arr.Name != "oldwax_k" {
			t.Fatalf("bindata: Select(_k) = %s, want oldwax_k", arr.Name)
		}
	}
}

func TestGetAndNames(t *testing.T) {
	arrays := Extract([]byte(
		"const std::array<unsigned char, 1> flat_r = { 0x10 };\n" +
			"const std::array<unsigned char, 1> flat_g = { 0x20 };\n"))

	if diff := cmp.Diff([]string{"flat_r", "flat_g"}, arrays.Names()); diff != "" {
		t.Error(diff)
	}

	data, ok := arrays.Get("flat_g")
	if !ok {
		t.Fatal("bindata: flat_g not found")
	}
	if len(data) != 1 || data[0] != 0x20 {
		t.Fatalf("bindata: flat_g = % x, want 20", data)
	}

	if _, ok := arrays.Get("flat_b"); ok {
		t.Fatal("bindata: found an array that was never declared")
	}
}
