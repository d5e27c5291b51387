package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/shinigami-rest/shinigami/filesystem"
	"github.com/shinigami-rest/shinigami/icon"
	"github.com/shinigami-rest/shinigami/style"
	"github.com/shinigami-rest/shinigami/util"
	"github.com/shinigami-rest/shinigami/where"
	"github.com/spf13/cobra"
)

// clearTarget is a directory or file the clear command can remove.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
	// keep empties the directory instead of removing it.
	keep bool
}

var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), where.Cache, true},
	{"logs directory", "logs", mo.Some("l"), where.Logs, true},
	{"version cache", "version-cache", mo.None[string](), where.VersionCache, false},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}

	clearCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove cached and logged files",
	Run: func(cmd *cobra.Command, args []string) {
		selected := lo.Filter(clearTargets, func(target clearTarget, _ int) bool {
			return lo.Must(cmd.Flags().GetBool(target.argLong))
		})

		if len(selected) == 0 {
			handleErr(cmd.Help())
			return
		}

		if !lo.Must(cmd.Flags().GetBool("yes")) {
			var confirm bool
			handleErr(survey.AskOne(&survey.Confirm{
				Message: fmt.Sprintf("Clear %s?", util.Quantify(len(selected), "target", "targets")),
				Default: false,
			}, &confirm))

			if !confirm {
				fmt.Printf("%s Nothing cleared\n", icon.Get(icon.Info))
				return
			}
		}

		for _, target := range selected {
			location := target.location()
			size, err := filesystem.Size(location)
			handleErr(err)

			e := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			if target.keep {
				err = filesystem.Clear(location)
			} else if exists, _ := filesystem.API().Exists(location); exists {
				err = util.Delete(location)
			}
			e()
			handleErr(err)

			fmt.Printf(
				"%s %s cleared %s\n",
				icon.Get(icon.Success),
				util.Capitalize(target.name),
				style.Faint("("+util.HumanSize(size)+")"),
			)
		}
	},
}
