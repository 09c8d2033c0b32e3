package schema

// Image is an image reference carried in document front matter.
type Image struct {
	Src string `json:"src" yaml:"src"`
	Alt string `json:"alt" yaml:"alt"`
}

// Document is the input unit handed to the chunking pipeline by the
// file-discovery collaborator. It is immutable once loaded; the pipeline
// never mutates it.
type Document struct {
	// RawText is the full document body, front matter already removed.
	RawText string
	Title   string
	Slug    string
	Date    string
	Tags    []string
	// SourceURL is the canonical public URL of the document, if known.
	SourceURL string
	// Path is the filesystem path the document was loaded from.
	Path string
	// OriginalFileSHA256 hashes the raw file bytes, front matter included.
	OriginalFileSHA256 string
	Images             []Image
}

// AltTexts returns the non-empty alt texts of the document's images.
func (d *Document) AltTexts() []string {
	var ret []string
	for _, img := range d.Images {
		if img.Alt != "" {
			ret = append(ret, img.Alt)
		}
	}
	return ret
}
