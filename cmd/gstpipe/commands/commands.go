package commands

import (
	"context"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/xaionaro-go/observability"
)

var (
	// Access these variables only from a main package:

	Root = &cobra.Command{
		Use: os.Args[0],
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			l := logger.FromCtx(ctx).WithLevel(LoggerLevel)
			ctx = logger.CtxWithLogger(ctx, l)
			cmd.SetContext(ctx)
			logger.Debugf(ctx, "log-level: %v", LoggerLevel)

			netPprofAddr, err := cmd.Flags().GetString("go-net-pprof-addr")
			if err != nil {
				l.Errorf("unable to get the value of the flag 'go-net-pprof-addr': %v", err)
			}
			if netPprofAddr != "" {
				observability.Go(ctx, func(ctx context.Context) {
					http.Handle("/metrics", promhttp.Handler())
					l.Infof("starting to listen for net/pprof requests at '%s'", netPprofAddr)
					l.Error(http.ListenAndServe(netPprofAddr, nil))
				})
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			logger.Debug(ctx, "end")
		},
	}

	Play = &cobra.Command{
		Use:  "play <pipeline-description>",
		Args: cobra.ExactArgs(1),
		Run:  play,
	}

	LoggerLevel = logger.LevelWarning
)

func init() {
	Root.PersistentFlags().Var(&LoggerLevel, "log-level", "Log level")
	Root.PersistentFlags().String("go-net-pprof-addr", "", "address to listen to for net/pprof (and /metrics) requests")
	Root.PersistentFlags().String("config-path", "", "path to the config file")

	Play.PersistentFlags().String("backend", "", "pipeline backend to use (gst|builtin)")
	Play.PersistentFlags().String("source-name", "", "name of the element to inject the input buffers into")

	Root.AddCommand(Play)
}
