package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/shinigami-rest/shinigami/source"
)

// Operation names one source call.
type Operation string

const (
	Popular  Operation = "popular"
	Latest   Operation = "latest"
	Search   Operation = "search"
	Manga    Operation = "manga"
	Chapters Operation = "chapters"
	Pages    Operation = "pages"
	Image    Operation = "image"
)

// ChaptersFilter narrows a chapter list before it is written.
type ChaptersFilter func([]source.Chapter) ([]source.Chapter, error)

type Options struct {
	Out       io.Writer
	Source    source.Source
	Operation Operation
	// Query is used by Search.
	Query string
	// Page is used by list operations; values below 1 are treated as 1.
	Page int
	// ID is the manga id for Manga and Chapters, the chapter id for Pages.
	ID string
	// URL is the image to download for Image.
	URL string
	// Pretty indents JSON output.
	Pretty         bool
	ChaptersFilter mo.Option[ChaptersFilter]
}

// ParseChaptersFilter parses a chapter selector.
// Supported forms: "first", "last", "all", an index, "from-to" and "@substring@".
func ParseChaptersFilter(description string) (ChaptersFilter, error) {
	switch description {
	case "first":
		return func(chapters []source.Chapter) ([]source.Chapter, error) {
			if len(chapters) == 0 {
				return chapters, nil
			}
			return chapters[:1], nil
		}, nil
	case "last":
		return func(chapters []source.Chapter) ([]source.Chapter, error) {
			if len(chapters) == 0 {
				return chapters, nil
			}
			return chapters[len(chapters)-1:], nil
		}, nil
	case "all":
		return func(chapters []source.Chapter) ([]source.Chapter, error) {
			return chapters, nil
		}, nil
	}

	if strings.HasPrefix(description, "@") && strings.HasSuffix(description, "@") && len(description) > 1 {
		sub := strings.ToLower(description[1 : len(description)-1])
		return func(chapters []source.Chapter) ([]source.Chapter, error) {
			return lo.Filter(chapters, func(c source.Chapter, _ int) bool {
				return strings.Contains(strings.ToLower(c.Name), sub)
			}), nil
		}, nil
	}

	if from, to, ok := strings.Cut(description, "-"); ok {
		start, err1 := strconv.Atoi(from)
		end, err2 := strconv.Atoi(to)
		if err1 != nil || err2 != nil || start < 0 || end < start {
			return nil, fmt.Errorf("invalid chapter range: %s", description)
		}
		return func(chapters []source.Chapter) ([]source.Chapter, error) {
			if start >= len(chapters) {
				return []source.Chapter{}, nil
			}
			return chapters[start:min(end+1, len(chapters))], nil
		}, nil
	}

	if idx, err := strconv.Atoi(description); err == nil && idx >= 0 {
		return func(chapters []source.Chapter) ([]source.Chapter, error) {
			if idx >= len(chapters) {
				return []source.Chapter{}, nil
			}
			return chapters[idx : idx+1], nil
		}, nil
	}

	return nil, fmt.Errorf("invalid chapter filter: %s", description)
}
