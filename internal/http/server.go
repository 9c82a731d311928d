package http

import (
	"net/http"

	"github.com/lhclub/recordkeeper/internal/billiards"
	"github.com/lhclub/recordkeeper/internal/config"
	"github.com/lhclub/recordkeeper/internal/events"
	"github.com/lhclub/recordkeeper/internal/metrics"
	"github.com/lhclub/recordkeeper/internal/notifier"
	"github.com/lhclub/recordkeeper/internal/registry"
	"github.com/lhclub/recordkeeper/internal/tennis"
)

func NewServer(
	users *registry.Service,
	tennisSvc *tennis.Service,
	billiardsSvc *billiards.Service,
	metricsSvc metrics.Metrics,
	metricsHandler http.Handler,
	cfg config.Config,
	notifier notifier.Notifier,
	publisher events.Publisher,
) *Server {
	server := &Server{
		Users:          users,
		Tennis:         tennisSvc,
		Billiards:      billiardsSvc,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Publisher:      publisher,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware, s.durationMiddleware))
	s.Router.Handle("/users", Chain(s.UsersHandler(), paramsMiddleware, s.durationMiddleware))
	s.Router.Handle("/tennis/records", Chain(s.TennisRecordsHandler(), paramsMiddleware, s.durationMiddleware))
	s.Router.Handle("/tennis/stats", Chain(s.TennisStatsHandler(), paramsMiddleware, s.durationMiddleware))
	s.Router.Handle("/billiards/records", Chain(s.BilliardsRecordsHandler(), paramsMiddleware, s.durationMiddleware))
	s.Router.Handle("/billiards/player", Chain(s.BilliardsPlayerHandler(), paramsMiddleware, s.durationMiddleware))
	s.Router.Handle("/billiards/dates", Chain(s.BilliardsDatesHandler(), paramsMiddleware, s.durationMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
