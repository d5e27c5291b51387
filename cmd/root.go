// Package cmd implements the command-line interface.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/shinigami-rest/shinigami/color"
	"github.com/shinigami-rest/shinigami/constant"
	"github.com/shinigami-rest/shinigami/icon"
	"github.com/shinigami-rest/shinigami/key"
	"github.com/shinigami-rest/shinigami/log"
	"github.com/shinigami-rest/shinigami/provider"
	"github.com/shinigami-rest/shinigami/source"
	"github.com/shinigami-rest/shinigami/style"
	"github.com/shinigami-rest/shinigami/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icons variant")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringSliceP("source", "S", []string{}, "Provider to serve requests from")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("source", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(provider.Builtins(), func(p *provider.Provider, _ int) string {
			return p.Name
		}), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.DefaultSources, rootCmd.PersistentFlags().Lookup("source")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "REST API for the Shinigami manga reader",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.Red).Render("    - REST API for the Shinigami manga reader"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute runs the root command.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// defaultSource builds the source selected with --source or sources.default.
func defaultSource() source.Source {
	p, ok := provider.Default()
	if !ok {
		handleErr(fmt.Errorf("source not found: %s", strings.Join(viper.GetStringSlice(key.DefaultSources), ", ")))
	}

	src, err := p.CreateSource()
	handleErr(err)
	return src
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
