package cmd

import (
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/shinigami-rest/shinigami/color"
	"github.com/shinigami-rest/shinigami/config"
	"github.com/shinigami-rest/shinigami/style"
	"github.com/shinigami-rest/shinigami/where"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

// envVar is an environment variable together with the setting it controls.
type envVar struct {
	name string
	key  string
}

func supportedEnv() []envVar {
	vars := lo.Map(config.EnvExposed, func(k string, _ int) envVar {
		field := config.Default[k]
		return envVar{name: field.Env(), key: k}
	})

	vars = append(vars,
		envVar{name: where.EnvConfigPath, key: "config directory"},
		envVar{name: "PORT", key: "server.port"},
	)

	slices.SortFunc(vars, func(a, b envVar) int {
		return strings.Compare(a.name, b.name)
	})

	return vars
}

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only show variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only show variables that are unset")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List supported environment variables",
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		for _, env := range supportedEnv() {
			value, present := os.LookupEnv(env.name)
			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			cmd.Print(style.New().Bold(true).Foreground(color.Purple).Render(env.name))
			cmd.Print("=")

			if present {
				cmd.Print(style.Fg(color.Green)(value))
			} else {
				cmd.Print(style.Fg(color.Red)("unset"))
			}

			cmd.Println(" " + style.Faint("# "+env.key))
		}
	},
}
