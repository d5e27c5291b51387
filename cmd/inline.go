package cmd

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/shinigami-rest/shinigami/filesystem"
	"github.com/shinigami-rest/shinigami/inline"
	"github.com/shinigami-rest/shinigami/source"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.PersistentFlags().StringP("output", "o", "", "Write the output to a file instead of stdout")
	inlineCmd.PersistentFlags().Bool("pretty", term.IsTerminal(int(os.Stdout.Fd())), "Indent JSON output")
}

var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Query the provider once and print the result as JSON",
	Long: `Query the provider once, without starting the server, and print the result as JSON.

Chapter selectors:
  first - first chapter in the list
  last - last chapter in the list
  all - all chapters in the list
  [number] - select chapter by index (starting from 0)
  [from]-[to] - select chapters by range
  @[substring]@ - select chapters by name substring`,
}

// inlineOperation describes one inline subcommand.
type inlineOperation struct {
	operation inline.Operation
	use       string
	short     string
	args      cobra.PositionalArgs
	paged     bool
}

var inlineOperations = []inlineOperation{
	{inline.Popular, "popular", "List popular manga", cobra.NoArgs, true},
	{inline.Latest, "latest", "List latest updates", cobra.NoArgs, true},
	{inline.Search, "search [query]", "Search manga by title", cobra.ExactArgs(1), true},
	{inline.Manga, "manga [id]", "Show manga details", cobra.ExactArgs(1), false},
	{inline.Chapters, "chapters [manga id]", "List chapters of a manga", cobra.ExactArgs(1), false},
	{inline.Pages, "pages [chapter id]", "List page image URLs of a chapter", cobra.ExactArgs(1), false},
	{inline.Image, "image [url]", "Download an image through the provider", cobra.ExactArgs(1), false},
}

func init() {
	for _, op := range inlineOperations {
		inlineCmd.AddCommand(newInlineOperationCmd(op))
	}
}

func newInlineOperationCmd(op inlineOperation) *cobra.Command {
	cmd := &cobra.Command{
		Use:   op.use,
		Short: op.short,
		Args:  op.args,
		Run: func(cmd *cobra.Command, args []string) {
			writer, closeWriter := inlineWriter(cmd)
			defer closeWriter()

			options := &inline.Options{
				Out:       writer,
				Source:    defaultSource(),
				Operation: op.operation,
				Pretty:    lo.Must(cmd.Flags().GetBool("pretty")),
			}

			if op.paged {
				options.Page = lo.Must(cmd.Flags().GetInt("page"))
			}

			switch op.operation {
			case inline.Search:
				options.Query = args[0]
			case inline.Manga, inline.Chapters, inline.Pages:
				options.ID = args[0]
			case inline.Image:
				options.URL = args[0]
			}

			if op.operation == inline.Chapters {
				if selector := lo.Must(cmd.Flags().GetString("chapters")); selector != "" {
					filter, err := inline.ParseChaptersFilter(selector)
					handleErr(err)
					options.ChaptersFilter = mo.Some(filter)
				}
			}

			handleErr(inline.Run(context.Background(), options))
		},
	}

	if op.paged {
		cmd.Flags().IntP("page", "p", 1, "Page number, starting from 1")
	}

	if op.operation == inline.Chapters {
		cmd.Flags().StringP("chapters", "c", "", "Chapter selector")
	}

	if op.operation == inline.Image {
		cmd.Example = "  shinigami inline image https://storage.shngm.id/chapter/page-1.jpg -o page-1.jpg"
	}

	return cmd
}

// inlineWriter opens --output through the filesystem backend, or falls back to stdout.
func inlineWriter(cmd *cobra.Command) (io.Writer, func()) {
	output := lo.Must(cmd.Flags().GetString("output"))
	if output == "" {
		return os.Stdout, func() {}
	}

	file, err := filesystem.API().Create(output)
	handleErr(err)
	return file, func() { _ = file.Close() }
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)

	inlineSchemaCmd.Flags().StringP("record", "r", "", "Generate the schema of a single record instead: manga, detail, chapter or page")
	lo.Must0(inlineSchemaCmd.RegisterFlagCompletionFunc("record", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Keys(schemaRecords), cobra.ShellCompDirectiveNoFileComp
	}))
}

var schemaRecords = map[string]any{
	"manga":   &source.Manga{},
	"detail":  &source.MangaDetail{},
	"chapter": &source.Chapter{},
	"page":    &source.Page{},
}

var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of inline output",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "manga", "chapter", "page", "output":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		var target any = &inline.Output{}
		if record := lo.Must(cmd.Flags().GetString("record")); record != "" {
			r, ok := schemaRecords[strings.ToLower(record)]
			if !ok {
				handleErr(errUnknownRecord(record))
			}
			target = r
		}

		writer, closeWriter := inlineWriter(cmd)
		defer closeWriter()

		encoder := json.NewEncoder(writer)
		if lo.Must(cmd.Flags().GetBool("pretty")) {
			encoder.SetIndent("", "  ")
		}
		handleErr(encoder.Encode(reflector.Reflect(target)))
	},
}
