// Package inline runs a single source operation non-interactively and writes its result.
package inline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/shinigami-rest/shinigami/log"
	"github.com/shinigami-rest/shinigami/util"
)

// Run executes options.Operation and writes JSON (or raw image bytes) to options.Out.
func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}
	if options.Source == nil {
		return errors.New("source not set")
	}

	page := util.Max(options.Page, 1)
	src := options.Source

	var (
		result any
		err    error
	)

	switch options.Operation {
	case Popular:
		result, err = src.Popular(ctx, page)
	case Latest:
		result, err = src.Latest(ctx, page)
	case Search:
		query := util.Sanitize(options.Query)
		if query == "" {
			return errors.New("query is required")
		}
		result, err = src.Search(ctx, query, page)
	case Manga:
		if err := requireID(options.ID, "manga id"); err != nil {
			return err
		}
		result, err = src.MangaOf(ctx, options.ID)
	case Chapters:
		if err := requireID(options.ID, "manga id"); err != nil {
			return err
		}
		result, err = chapters(ctx, options)
	case Pages:
		if err := requireID(options.ID, "chapter id"); err != nil {
			return err
		}
		result, err = src.PagesOf(ctx, options.ID)
	case Image:
		return image(ctx, options)
	default:
		return fmt.Errorf("unknown operation: %s", options.Operation)
	}

	if err != nil {
		return err
	}

	return writeJson(options.Out, &Output{
		Source:    src.Name(),
		Operation: options.Operation,
		Query:     options.Query,
		Result:    result,
	}, options.Pretty)
}

func chapters(ctx context.Context, options *Options) (any, error) {
	list, err := options.Source.ChaptersOf(ctx, options.ID)
	if err != nil {
		return nil, err
	}

	if filter, ok := options.ChaptersFilter.Get(); ok {
		list, err = filter(list)
		if err != nil {
			return nil, err
		}
	}

	log.Debugf("writing %s", util.Quantify(len(list), "chapter", "chapters"))
	return list, nil
}

func image(ctx context.Context, options *Options) error {
	if strings.TrimSpace(options.URL) == "" {
		return errors.New("image url is required")
	}

	img, err := options.Source.Image(ctx, options.URL)
	if err != nil {
		return err
	}

	_, err = options.Out.Write(img.Body)
	return err
}

func requireID(id, what string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%s is required", what)
	}
	return nil
}
