package source

// Manga is a list entry.
type Manga struct {
	Title     string `json:"title" jsonschema:"description=Display title, Unknown when the provider has none"`
	Thumbnail string `json:"thumbnail" jsonschema:"description=Cover image URL"`
	URL       string `json:"url" jsonschema:"description=Provider manga identifier"`
	MangaURL  string `json:"mangaUrl" jsonschema:"description=Browsable URL of the manga on the provider site"`
}

func (m *Manga) String() string {
	return m.Title
}

// MangaList is one page of a listing.
type MangaList struct {
	Mangas      []Manga `json:"mangas"`
	HasNextPage bool    `json:"hasNextPage"`
}

// MangaDetail describes a single manga.
type MangaDetail struct {
	Title       string `json:"title"`
	Author      string `json:"author" jsonschema:"description=Comma separated author names"`
	Artist      string `json:"artist" jsonschema:"description=Comma separated artist names"`
	Status      Status `json:"status" jsonschema:"enum=Ongoing,enum=Completed,enum=Unknown"`
	Description string `json:"description"`
	Genre       string `json:"genre" jsonschema:"description=Comma separated genres followed by formats"`
	Thumbnail   string `json:"thumbnail"`
}

func (m *MangaDetail) String() string {
	return m.Title
}
