package bindata

// Channel maps one array-name suffix to the file its decoded bytes are
// written to. The empty suffix means "whichever array comes first",
// used by materials that embed a single image.
type Channel struct {
	Suffix   string
	Filename string
}

// Material names one bindata source file and the channels to pull out
// of it.
type Material struct {
	Source   string
	Channels []Channel
}

// Matcaps is the fixed table of matcap images embedded in C++
// Polyscope. Blendable materials (clay, wax, candy, flat) store a
// separate image per r/g/b/k channel; static materials (mud, ceramic,
// jade, normal) store one image that is reused for all four channels
// at render time.
var Matcaps = []Material{
	{
		Source: "bindata_clay.cpp",
		Channels: []Channel{
			{"_r", "clay_r.hdr"},
			{"_g", "clay_g.hdr"},
			{"_b", "clay_b.hdr"},
			{"_k", "clay_k.hdr"},
		},
	},
	{
		Source: "bindata_wax.cpp",
		Channels: []Channel{
			{"_r", "wax_r.hdr"},
			{"_g", "wax_g.hdr"},
			{"_b", "wax_b.hdr"},
			{"_k", "wax_k.hdr"},
		},
	},
	{
		Source: "bindata_candy.cpp",
		Channels: []Channel{
			{"_r", "candy_r.hdr"},
			{"_g", "candy_g.hdr"},
			{"_b", "candy_b.hdr"},
			{"_k", "candy_k.hdr"},
		},
	},
	{
		Source: "bindata_flat.cpp",
		Channels: []Channel{
			{"_r", "flat_r.hdr"},
			{"_g", "flat_g.hdr"},
			{"_b", "flat_b.hdr"},
			{"_k", "flat_k.hdr"},
		},
	},
	{Source: "bindata_mud.cpp", Channels: []Channel{{"", "mud.hdr"}}},
	{Source: "bindata_ceramic.cpp", Channels: []Channel{{"", "ceramic.hdr"}}},
	{Source: "bindata_jade.cpp", Channels: []Channel{{"", "jade.hdr"}}},
	{Source: "bindata_normal.cpp", Channels: []Channel{{"", "normal.hdr"}}},
}
