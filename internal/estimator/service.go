package estimator

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"homeprice/internal/artifacts"
	"homeprice/pkg/types"
)

// Service gates the Estimator behind the one-time artifact load.
// Load is expected to run during startup, before serving; calling it again
// replaces the Estimator atomically.
type Service struct {
	cur     atomic.Pointer[Estimator]
	opts    []Option
	log     zerolog.Logger
	started time.Time
}

// NewService returns an unloaded Service. opts apply to every Estimator it builds.
func NewService(log zerolog.Logger, opts ...Option) *Service {
	return &Service{
		opts:    append([]Option{WithLogger(log)}, opts...),
		log:     log,
		started: time.Now(),
	}
}

// Load reads the artifacts and publishes a new Estimator. On error the
// previous state (loaded or not) is kept.
func (s *Service) Load(l artifacts.Loader) error {
	a, err := l.Load()
	if err != nil {
		loadsTotal.WithLabelValues("error").Inc()
		return err
	}
	e, err := New(a, s.opts...)
	if err != nil {
		loadsTotal.WithLabelValues("error").Inc()
		return err
	}
	s.cur.Store(e)
	loadsTotal.WithLabelValues("ok").Inc()
	s.log.Info().
		Str("columns", a.ColumnsPath).
		Str("model", a.ModelPath).
		Str("model_kind", a.Model.Kind()).
		Int("features", a.Schema.Len()).
		Int("regions", len(a.Vocabulary.Regions)).
		Int("types", len(a.Vocabulary.Types)).
		Msg("loading saved artifacts...done")
	return nil
}

// Ready reports whether artifacts have been loaded.
func (s *Service) Ready() bool { return s.cur.Load() != nil }

func (s *Service) Regions() ([]string, error) { return s.cur.Load().Regions() }

func (s *Service) Types() ([]string, error) { return s.cur.Load().Types() }

func (s *Service) Estimate(rooms, area float64, region, propertyType string) (Estimate, error) {
	return s.cur.Load().Estimate(rooms, area, region, propertyType)
}

// Status summarizes the loaded artifacts for GET /status.
func (s *Service) Status() types.StatusResponse {
	now := time.Now()
	st := types.StatusResponse{
		State:          "unloaded",
		UptimeSeconds:  int64(now.Sub(s.started).Seconds()),
		ServerTimeUnix: now.Unix(),
	}
	a := s.cur.Load().Artifacts()
	if a == nil {
		return st
	}
	st.State = "ready"
	st.ModelKind = a.Model.Kind()
	st.ColumnsPath = a.ColumnsPath
	st.ModelPath = a.ModelPath
	st.Columns = a.Schema.Len()
	st.Regions = len(a.Vocabulary.Regions)
	st.Types = len(a.Vocabulary.Types)
	st.LoadedAtUnix = a.LoadedAt.Unix()
	if f, ok := a.Model.(interface{ Trees() int }); ok {
		st.Trees = f.Trees()
	}
	return st
}
