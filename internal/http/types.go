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

type Server struct {
	Users          *registry.Service
	Tennis         *tennis.Service
	Billiards      *billiards.Service
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Publisher      events.Publisher
	Router         *http.ServeMux
}
