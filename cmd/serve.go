package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/samber/lo"
	"github.com/shinigami-rest/shinigami/api"
	"github.com/shinigami-rest/shinigami/color"
	"github.com/shinigami-rest/shinigami/icon"
	"github.com/shinigami-rest/shinigami/key"
	"github.com/shinigami-rest/shinigami/log"
	"github.com/shinigami-rest/shinigami/style"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("host", "", "Interface to listen on")
	lo.Must0(viper.BindPFlag(key.ServerHost, serveCmd.Flags().Lookup("host")))

	serveCmd.Flags().IntP("port", "p", 0, "Port to listen on")
	lo.Must0(viper.BindPFlag(key.ServerPort, serveCmd.Flags().Lookup("port")))

	serveCmd.Flags().String("cors-origin", "", "Access-Control-Allow-Origin value")
	lo.Must0(viper.BindPFlag(key.ServerCORSOrigin, serveCmd.Flags().Lookup("cors-origin")))
}

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"server", "start"},
	Short:   "Start the REST API",
	Long: `Start the REST API and serve it until interrupted.

The port defaults to server.port and may also be set with the PORT environment variable.`,
	Example: "  shinigami serve --port 8080",
	Run: func(cmd *cobra.Command, args []string) {
		src := defaultSource()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		server := api.New(src, api.OptionsFromConfig())
		log.WithFields(log.Fields{
			"source": src.Name(),
			"addr":   server.Addr(),
		}).Info("starting server")
		addr := server.Addr()
		if strings.HasPrefix(addr, ":") {
			addr = "localhost" + addr
		}
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Link), style.Fg(color.Cyan)("http://"+addr))

		handleErr(server.Run(ctx))
	},
}
