// Package shinigami implements source.Source on top of the Shinigami JSON API.
package shinigami

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/shinigami-rest/shinigami/constant"
	"github.com/shinigami-rest/shinigami/key"
	"github.com/shinigami-rest/shinigami/log"
	"github.com/shinigami-rest/shinigami/source"
	"github.com/shinigami-rest/shinigami/upstream"
	"github.com/spf13/viper"
)

// Fetcher is the part of the upstream client the provider needs.
type Fetcher interface {
	FetchJSON(ctx context.Context, path string, query url.Values) (any, error)
	FetchBinary(ctx context.Context, rawURL string) (*upstream.Blob, error)
}

// Options configure a Shinigami source.
type Options struct {
	// BaseURL is the public site used for browsable URLs.
	BaseURL string
	// CDNURL is the image root for payloads that carry no base URL.
	CDNURL string
	// ListPageSize is requested for popular, latest and search listings.
	ListPageSize int
	// ChapterPageSize is requested for chapter lists.
	ChapterPageSize int
}

// Shinigami is the source.Source for the Shinigami provider.
type Shinigami struct {
	fetcher Fetcher
	options Options
}

// New creates a Shinigami source. Zero options fall back to the provider defaults.
func New(fetcher Fetcher, options Options) *Shinigami {
	if options.BaseURL == "" {
		options.BaseURL = constant.ShinigamiBaseURL
	}
	if options.CDNURL == "" {
		options.CDNURL = constant.ShinigamiCDNURL
	}
	if options.ListPageSize <= 0 {
		options.ListPageSize = constant.ListPageSize
	}
	if options.ChapterPageSize <= 0 {
		options.ChapterPageSize = constant.ChapterPageSize
	}
	options.BaseURL = strings.TrimSuffix(options.BaseURL, "/")

	return &Shinigami{fetcher: fetcher, options: options}
}

// FromConfig creates a Shinigami source wired to the configured upstream.
func FromConfig() *Shinigami {
	return New(upstream.FromConfig(), Options{
		BaseURL:         viper.GetString(key.ProviderBaseURL),
		CDNURL:          viper.GetString(key.ProviderCDNURL),
		ListPageSize:    viper.GetInt(key.UpstreamListPageSize),
		ChapterPageSize: viper.GetInt(key.UpstreamChapterPageSize),
	})
}

func (s *Shinigami) Name() string {
	return constant.ShinigamiName
}

func (s *Shinigami) ID() string {
	return constant.ShinigamiID
}

func (s *Shinigami) Popular(ctx context.Context, page int) (*source.MangaList, error) {
	return s.list(ctx, "get popular manga", s.listQuery(page, url.Values{"sort": {"popularity"}}))
}

func (s *Shinigami) Latest(ctx context.Context, page int) (*source.MangaList, error) {
	return s.list(ctx, "get latest updates", s.listQuery(page, url.Values{"sort": {"latest"}}))
}

func (s *Shinigami) Search(ctx context.Context, query string, page int) (*source.MangaList, error) {
	extra := url.Values{}
	if query != "" {
		extra.Set("q", query)
	}
	return s.list(ctx, "search manga", s.listQuery(page, extra))
}

func (s *Shinigami) MangaOf(ctx context.Context, mangaID string) (*source.MangaDetail, error) {
	const op = "get manga details"

	payload, err := s.fetcher.FetchJSON(ctx, "/v1/manga/detail/"+url.PathEscape(mangaID), nil)
	if err != nil {
		return nil, s.fail(op, err)
	}

	detail, err := normalizeDetail(payload)
	if err != nil {
		return nil, s.fail(op, err)
	}
	return detail, nil
}

func (s *Shinigami) ChaptersOf(ctx context.Context, mangaID string) ([]source.Chapter, error) {
	query := url.Values{"page_size": {strconv.Itoa(s.options.ChapterPageSize)}}
	payload, err := s.fetcher.FetchJSON(ctx, "/v1/chapter/"+url.PathEscape(mangaID)+"/list", query)
	if err != nil {
		return nil, s.fail("get chapter list", err)
	}

	chapters := normalizeChapters(payload, s.options.BaseURL, mangaID)
	log.Debugf("found %d chapters for %s", len(chapters), mangaID)
	return chapters, nil
}

func (s *Shinigami) PagesOf(ctx context.Context, chapterID string) ([]source.Page, error) {
	const op = "get page list"

	payload, err := s.fetcher.FetchJSON(ctx, "/v1/chapter/detail/"+url.PathEscape(chapterID), nil)
	if err != nil {
		return nil, s.fail(op, err)
	}

	pages, err := normalizePages(payload, s.options.CDNURL)
	if err != nil {
		return nil, s.fail(op, err)
	}
	return pages, nil
}

func (s *Shinigami) Image(ctx context.Context, rawURL string) (*source.Image, error) {
	blob, err := s.fetcher.FetchBinary(ctx, rawURL)
	if err != nil {
		return nil, s.fail("download image", err)
	}
	return &source.Image{Body: blob.Body, ContentType: blob.ContentType}, nil
}

func (s *Shinigami) list(ctx context.Context, op string, query url.Values) (*source.MangaList, error) {
	payload, err := s.fetcher.FetchJSON(ctx, "/v1/manga/list", query)
	if err != nil {
		return nil, s.fail(op, err)
	}

	list, err := normalizeList(payload, s.options.BaseURL)
	if err != nil {
		return nil, s.fail(op, err)
	}
	return list, nil
}

func (s *Shinigami) listQuery(page int, extra url.Values) url.Values {
	query := url.Values{
		"page":      {strconv.Itoa(page)},
		"page_size": {strconv.Itoa(s.options.ListPageSize)},
	}
	for k, v := range extra {
		query[k] = v
	}
	return query
}

func (s *Shinigami) fail(op string, err error) error {
	wrapped := &OpError{Op: op, Err: err}
	log.Error(wrapped)
	return wrapped
}
