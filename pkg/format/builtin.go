package format

// NewBuiltinRegistry returns the formats this package knows out of the box.
// Build it once and pass it to whatever needs lookups.
func NewBuiltinRegistry() *Registry {
	return NewRegistry(builtin()...)
}

func builtin() []Info {
	return []Info{
		{
			Format:                JPEG,
			Description:           "Joint Photographic Experts Group JFIF format",
			MimeType:              "image/jpeg",
			IsReadable:            true,
			IsWritable:            true,
			CanReadMultithreaded:  true,
			CanWriteMultithreaded: true,
			Extensions:            []string{"jpeg", "jpe", "jfif"},
			Signatures:            []Signature{{{0, []byte{0xFF, 0xD8, 0xFF}}}},
		},
		{
			Format:                JPG,
			ModuleFormat:          JPEG,
			Description:           "Joint Photographic Experts Group JFIF format",
			MimeType:              "image/jpeg",
			IsReadable:            true,
			IsWritable:            true,
			CanReadMultithreaded:  true,
			CanWriteMultithreaded: true,
		},
		{
			Format:                PNG,
			Description:           "Portable Network Graphics",
			MimeType:              "image/png",
			IsReadable:            true,
			IsWritable:            true,
			CanReadMultithreaded:  true,
			CanWriteMultithreaded: true,
			Signatures:            []Signature{{{0, []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}}}},
		},
		{
			Format:                GIF,
			Description:           "CompuServe graphics interchange format",
			MimeType:              "image/gif",
			IsReadable:            true,
			IsWritable:            true,
			IsMultiFrame:          true,
			CanReadMultithreaded:  true,
			CanWriteMultithreaded: true,
			Signatures: []Signature{
				{{0, []byte("GIF87a")}},
				{{0, []byte("GIF89a")}},
			},
		},
		{
			Format:                WebP,
			Description:           "WebP Image Format",
			MimeType:              "image/webp",
			IsReadable:            true,
			IsWritable:            true,
			IsMultiFrame:          true,
			CanReadMultithreaded:  true,
			CanWriteMultithreaded: true,
			Signatures:            []Signature{{{0, []byte("RIFF")}, {8, []byte("WEBP")}}},
		},
		{
			Format:                BMP,
			Description:           "Microsoft Windows bitmap image",
			MimeType:              "image/bmp",
			IsReadable:            true,
			IsWritable:            true,
			CanReadMultithreaded:  true,
			CanWriteMultithreaded: true,
			Extensions:            []string{"dib"},
			Signatures:            []Signature{{{0, []byte("BM")}}},
		},
		{
			Format:                TIFF,
			Description:           "Tagged Image File Format",
			MimeType:              "image/tiff",
			IsReadable:            true,
			IsWritable:            true,
			IsMultiFrame:          true,
			CanReadMultithreaded:  true,
			CanWriteMultithreaded: true,
			Extensions:            []string{"tif"},
			Signatures: []Signature{
				{{0, []byte{'I', 'I', 0x2A, 0x00}}},
				{{0, []byte{'M', 'M', 0x00, 0x2A}}},
			},
		},
		{
			Format:                JP2,
			Description:           "JPEG-2000 File Format Syntax",
			MimeType:              "image/jp2",
			IsReadable:            true,
			IsWritable:            true,
			CanReadMultithreaded:  true,
			CanWriteMultithreaded: true,
			Extensions:            []string{"j2k", "jpf"},
			Signatures:            []Signature{{{0, []byte{0x00, 0x00, 0x00, 0x0C, 0x6A, 0x50, 0x20, 0x20, 0x0D, 0x0A, 0x87, 0x0A}}}},
		},
		{
			Format:                Gradient,
			Description:           "Gradual linear passing from one shade to another",
			IsReadable:            true,
			CanReadMultithreaded:  true,
			CanWriteMultithreaded: true,
		},
		{
			Format:      Pango,
			Description: "Pango Markup Language",
			IsReadable:  true,
		},
	}
}
