package source

// Chapter is a single chapter of a manga.
type Chapter struct {
	Name       string `json:"name" jsonschema:"description=Chapter {number} with an optional title suffix"`
	DateUpload int64  `json:"dateUpload" jsonschema:"description=Upload time in milliseconds since the epoch, 0 when unknown"`
	URL        string `json:"url" jsonschema:"description=Provider chapter identifier"`
	ChapterURL string `json:"chapterUrl" jsonschema:"description=Browsable URL of the chapter on the provider site"`
}

func (c *Chapter) String() string {
	return c.Name
}

// Page is one image of a chapter.
type Page struct {
	Index    int    `json:"index" jsonschema:"minimum=0"`
	ImageURL string `json:"imageUrl"`
}

// Image is a downloaded image.
type Image struct {
	Body        []byte
	ContentType string
}
