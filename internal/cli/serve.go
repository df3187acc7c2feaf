package cli

import (
	"github.com/spf13/cobra"

	"github.com/railkit/railsignal/internal/api"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		listen  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the station analysis HTTP API",
		Long: `Serve starts an HTTP server exposing the analysis pipeline:

  GET  /healthz       liveness probe
  POST /api/generate  analyze a station submitted as JSON
  POST /api/upload    analyze an uploaded railML document

The server shares the CLI's cache, so repeated requests for the same
station are served from cache.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(cmd, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			server := api.NewServer(runner, c.Logger)
			return server.ListenAndServe(cmd.Context(), listen)
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", c.Config.Listen, "address to listen on")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the cache")

	return cmd
}
