package matchruns

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"prom8eus-backend/internal/catalog"
	"prom8eus-backend/internal/matching"
	"prom8eus-backend/internal/shared/metrics"
	"prom8eus-backend/internal/shared/telemetry"
	"prom8eus-backend/internal/shared/util"
	"prom8eus-backend/internal/usage"
)

const (
	maxSubtasks      = 50
	defaultCacheSize = 128
)

// Service runs the matching engine over the catalog and records runs.
type Service struct {
	Repo    Repo
	Catalog *catalog.Service
	Engine  *matching.Engine
	Usage   *usage.Service
	cache   *lru.Cache[string, Output]
}

// NewService constructs a Service with an LRU output cache of the given size.
func NewService(repo Repo, catalogSvc *catalog.Service, engine *matching.Engine, usageSvc *usage.Service, cacheSize int) (*Service, error) {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cache, err := lru.New[string, Output](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("match output cache: %w", err)
	}
	return &Service{
		Repo:    repo,
		Catalog: catalogSvc,
		Engine:  engine,
		Usage:   usageSvc,
		cache:   cache,
	}, nil
}

// Run validates the request, resolves the candidate pool, runs the engine and
// records the result as a run. The engine is deterministic, so identical
// requests over an identical pool are served from the cache; cache hits are
// still recorded and quota-counted like any other run.
func (s *Service) Run(ctx context.Context, userID string, req Request) (Run, error) {
	if userID == "" {
		return Run{}, errors.New("userID is required")
	}
	normalizeRequest(&req)
	if err := validateRequest(req); err != nil {
		return Run{}, err
	}

	if s.Usage != nil {
		ok, _, err := s.Usage.CanConsume(ctx, userID, 1)
		if err != nil {
			return Run{}, err
		}
		if !ok {
			return Run{}, usage.ErrLimitReached
		}
	}

	pool, err := s.resolvePool(ctx, req.SolutionIDs)
	if err != nil {
		return Run{}, err
	}

	// The context hint is folded into the subtasks by normalizeRequest, so the
	// cache key covers exactly what the engine consumes: the normalized
	// subtasks, the pool selection and the pool contents.
	hash, err := util.HashJSON(req.Subtasks, req.SolutionIDs, pool)
	if err != nil {
		return Run{}, fmt.Errorf("hash match request: %w", err)
	}

	metrics.IncMatchRunStarted()
	startedAt := time.Now().UTC()

	output, cached := s.cache.Get(hash)
	if !cached {
		result := s.Engine.Match(req.Subtasks, pool)
		output = Output{
			Result:       result,
			Combinations: s.Engine.Combinations(result.SubtaskMatches),
			Roadmap:      s.Engine.RoadmapFrom(result.SubtaskMatches),
		}
		s.cache.Add(hash, output)
	}

	completedAt := time.Now().UTC()
	run := Run{
		ID:           uuid.NewString(),
		UserID:       userID,
		RequestHash:  hash,
		SubtaskCount: len(req.Subtasks),
		PoolSize:     len(pool),
		Status:       StatusCompleted,
		Output:       &output,
		CacheHit:     cached,
		DurationMS:   float64(completedAt.Sub(startedAt).Microseconds()) / 1000.0,
		CreatedAt:    startedAt,
		CompletedAt:  &completedAt,
	}

	if err := s.Repo.Create(ctx, run); err != nil {
		metrics.IncMatchRunFailed()
		return Run{}, fmt.Errorf("store match run: %w", err)
	}

	if s.Usage != nil {
		if _, err := s.Usage.Consume(ctx, userID, 1); err != nil {
			return Run{}, err
		}
	}

	metrics.IncMatchRunCompleted()
	metrics.ObserveMatchDurationMs(run.DurationMS)
	telemetry.Info("match.run", map[string]any{
		"user_id":       userID,
		"match_run_id":  run.ID,
		"subtask_count": run.SubtaskCount,
		"pool_size":     run.PoolSize,
		"matched_count": output.Result.Stats.MatchedCount,
		"cache_hit":     run.CacheHit,
		"duration_ms":   run.DurationMS,
	})

	return run, nil
}

// Get returns a run by ID, scoped to its owner.
func (s *Service) Get(ctx context.Context, userID, runID string) (Run, error) {
	if runID == "" {
		return Run{}, errors.New("runID is required")
	}
	run, err := s.Repo.GetByID(ctx, runID)
	if err != nil {
		return Run{}, err
	}
	if run.UserID != userID {
		return Run{}, ErrNotFound
	}
	return run, nil
}

// List returns a user's runs ordered newest-first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Run, error) {
	if userID == "" {
		return nil, errors.New("userID is required")
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

func (s *Service) resolvePool(ctx context.Context, ids []string) ([]catalog.Solution, error) {
	if len(ids) == 0 {
		return s.Catalog.Pool(ctx)
	}
	pool, err := s.Catalog.ByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: none of the %d requested ids exist", ErrUnknownSolutions, len(ids))
	}
	return pool, nil
}

// normalizeRequest applies the request-level hints onto the subtasks and
// canonicalizes free-form fields so that equivalent requests hash equally.
func normalizeRequest(req *Request) {
	for i := range req.Subtasks {
		st := &req.Subtasks[i]
		st.ID = strings.TrimSpace(st.ID)
		st.Name = strings.TrimSpace(st.Name)
		if st.BusinessDomain == "" {
			st.BusinessDomain = req.Context.BusinessDomain
		}
		for j, kw := range st.Keywords {
			st.Keywords[j] = strings.ToLower(strings.TrimSpace(kw))
		}
	}
	if len(req.SolutionIDs) > 0 {
		ids := append([]string(nil), req.SolutionIDs...)
		sort.Strings(ids)
		deduped := ids[:0]
		for i, id := range ids {
			if i > 0 && id == ids[i-1] {
				continue
			}
			deduped = append(deduped, id)
		}
		req.SolutionIDs = deduped
	}
}

func validateRequest(req Request) error {
	if len(req.Subtasks) == 0 {
		return fmt.Errorf("%w: at least one subtask is required", ErrInvalidRequest)
	}
	if len(req.Subtasks) > maxSubtasks {
		return fmt.Errorf("%w: at most %d subtasks per request", ErrInvalidRequest, maxSubtasks)
	}
	seen := make(map[string]struct{}, len(req.Subtasks))
	for i, st := range req.Subtasks {
		if st.ID == "" {
			return fmt.Errorf("%w: subtask %d is missing an id", ErrInvalidRequest, i)
		}
		if st.Name == "" {
			return fmt.Errorf("%w: subtask %s is missing a name", ErrInvalidRequest, st.ID)
		}
		if st.AutomationPotential < 0 || st.AutomationPotential > 100 {
			return fmt.Errorf("%w: subtask %s automationPotential must be 0-100", ErrInvalidRequest, st.ID)
		}
		if _, dup := seen[st.ID]; dup {
			return fmt.Errorf("%w: duplicate subtask id %s", ErrInvalidRequest, st.ID)
		}
		seen[st.ID] = struct{}{}
	}
	return nil
}
