package cli

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"bnbstat/internal/dashboard"
	"bnbstat/internal/dataset"
	"bnbstat/internal/logging"
	"bnbstat/internal/web"
)

func newServeCmd() *cobra.Command {
	var port int
	var origins []string
	var dev bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the analytics API server",
		Long:  "Start the JSON API server for charting front-ends. The dataset loads in the background; the server answers immediately and /health reports readiness.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, origins, dev)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "port to listen on (default: config port, $BNBSTAT_PORT, or 8080)")
	cmd.Flags().StringSliceVar(&origins, "origin", nil, "allowed CORS origins for the charting front-end")
	cmd.Flags().BoolVar(&dev, "dev", false, "human-readable debug logging")

	return cmd
}

func runServe(port int, origins []string, dev bool) error {
	// Local overrides (BNBSTAT_DATA, BNBSTAT_PORT) may live in a .env.
	_ = godotenv.Load()

	logging.Setup(dev)

	path, err := dataPath()
	if err != nil {
		return err
	}

	if port == 0 {
		port = serverPort()
	}
	if len(origins) == 0 {
		cfg, err := loadConfig()
		if err == nil && len(cfg.AllowedOrigins) > 0 {
			origins = cfg.AllowedOrigins
		} else {
			origins = []string{"http://localhost:3000"}
		}
	}

	mgr := dashboard.New()
	mgr.Subscribe(func(e dashboard.Event) {
		slog.Debug("dashboard event", "event", e.String())
	})

	jobID := mgr.LoadAsync(path, func(p dataset.LoadProgress) {
		slog.Info("load progress", "job", p.JobID, "state", p.State.String())
	})
	slog.Info("loading dataset in background", "job", jobID, "path", path)

	return web.NewServer(mgr, origins).ListenAndServe(port)
}
