package player

import (
	"context"
	"sync"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/concurrency"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/logger"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/repository"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/rewards"
)

// Service reads player HP and XP snapshots through a short-lived cache
type Service interface {
	GetStatus(ctx context.Context, playerID string) (*domain.PlayerStatus, error)
	Invalidate(playerID string)
	CacheStats() CacheStats
}

type service struct {
	repo  repository.PlayerReader
	cache *statusCache
	loads *concurrency.KeyedMutex

	mu       sync.Mutex
	inflight map[string]*pendingLoad
}

// pendingLoad is marked stale when the player is invalidated mid-read
type pendingLoad struct {
	stale bool
}

// NewService creates a player status service
func NewService(repo repository.PlayerReader, cfg CacheConfig) Service {
	return &service{
		repo:     repo,
		cache:    newStatusCache(cfg),
		loads:    concurrency.NewKeyedMutex(),
		inflight: make(map[string]*pendingLoad),
	}
}

// GetStatus returns the player's snapshot. Level progress missing from the
// backend row is derived from total XP.
func (s *service) GetStatus(ctx context.Context, playerID string) (*domain.PlayerStatus, error) {
	log := logger.FromContext(ctx)

	if status, ok := s.cache.Get(playerID); ok {
		log.Debug(LogMsgStatusCacheHit, "player_id", playerID)
		return status, nil
	}

	// Concurrent misses for one player share a single backend read
	unlock, err := s.loads.LockContext(ctx, playerID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if status, ok := s.cache.Get(playerID); ok {
		log.Debug(LogMsgStatusCacheHit, "player_id", playerID)
		return status, nil
	}

	s.beginLoad(playerID)
	status, err := s.repo.GetPlayerStatus(ctx, playerID)
	stale := s.endLoad(playerID)
	if err != nil {
		return nil, err
	}

	if status.XPToNextLevel == 0 {
		progress := rewards.ProgressForXP(status.TotalXPEarned)
		status.XPToNextLevel = progress.XPToNextLevel
		if status.CurrentLevel < progress.Level {
			status.CurrentLevel = progress.Level
		}
	}

	if stale {
		log.Debug(LogMsgStatusLoadStale, "player_id", playerID)
	} else {
		s.cache.Set(status)
		log.Debug(LogMsgStatusLoaded, "player_id", playerID, "current_hp", status.CurrentHP)
	}

	copied := *status
	return &copied, nil
}

// Invalidate drops the cached snapshot so the next read hits the backend.
// A read already in flight for the player will not populate the cache.
func (s *service) Invalidate(playerID string) {
	s.mu.Lock()
	if load, ok := s.inflight[playerID]; ok {
		load.stale = true
	}
	s.mu.Unlock()

	s.cache.Invalidate(playerID)
}

// beginLoad is called with the player's load lock held, so at most one
// pending load exists per player
func (s *service) beginLoad(playerID string) {
	s.mu.Lock()
	s.inflight[playerID] = &pendingLoad{}
	s.mu.Unlock()
}

// endLoad reports whether the player was invalidated during the load
func (s *service) endLoad(playerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	load := s.inflight[playerID]
	delete(s.inflight, playerID)
	return load != nil && load.stale
}

func (s *service) CacheStats() CacheStats {
	return s.cache.GetStats()
}

// InvalidateOnUpdate adapts svc for registration as a realtime update handler
func InvalidateOnUpdate(svc Service) func(ctx context.Context, update domain.PlayerUpdate) {
	return func(ctx context.Context, update domain.PlayerUpdate) {
		svc.Invalidate(update.PlayerID)
		logger.FromContext(ctx).Debug(LogMsgStatusInvalided, "player_id", update.PlayerID, "kind", update.Kind)
	}
}
