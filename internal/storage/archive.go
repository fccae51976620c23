package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"pingo/backend/internal/models"

	"github.com/redis/go-redis/v9"
)

const archivedCacheTTL = 10 * time.Minute

func archivedCacheKey(userID uint) string {
	return fmt.Sprintf("archived:%d", userID)
}

// GetArchived returns the user's archived-partner set, reading through the
// Redis cache. A cache failure falls back to the database; the cache is never
// authoritative.
func (s *Service) GetArchived(userID uint) (models.ArchivedSet, error) {
	cached, err := s.Redis.Get(s.Ctx, archivedCacheKey(userID)).Result()
	if err == nil {
		var set models.ArchivedSet
		if jsonErr := json.Unmarshal([]byte(cached), &set); jsonErr == nil {
			return set.Sorted(), nil
		}
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("WARNING: Redis read failed for user %d archived set: %v", userID, err)
	}

	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	set := user.ArchivedChats.Sorted()
	s.cacheArchived(userID, set)
	return set, nil
}

// AddArchived adds the partner to the user's archived set as a single atomic
// statement, so two concurrent additions for the same user cannot clobber
// each other. Returns the resulting set.
func (s *Service) AddArchived(userID, partnerID uint) (models.ArchivedSet, error) {
	const stmt = `
		UPDATE users
		SET archived_chats = CASE
			WHEN archived_chats @> to_jsonb(?::int) THEN archived_chats
			ELSE archived_chats || to_jsonb(?::int)
		END,
		updated_at = NOW()
		WHERE id = ?
		RETURNING archived_chats`

	return s.mutateArchived(userID, stmt, int64(partnerID), int64(partnerID), userID)
}

// RemoveArchived removes the partner from the archived set atomically.
// Removing an absent entry is a no-op.
func (s *Service) RemoveArchived(userID, partnerID uint) (models.ArchivedSet, error) {
	const stmt = `
		UPDATE users
		SET archived_chats = COALESCE(
			(SELECT jsonb_agg(elem)
			 FROM jsonb_array_elements(archived_chats) elem
			 WHERE elem <> to_jsonb(?::int)),
			'[]'::jsonb),
		updated_at = NOW()
		WHERE id = ?
		RETURNING archived_chats`

	return s.mutateArchived(userID, stmt, int64(partnerID), userID)
}

func (s *Service) mutateArchived(userID uint, stmt string, args ...any) (models.ArchivedSet, error) {
	var set models.ArchivedSet
	row := s.DB.Raw(stmt, args...).Row()
	if err := row.Scan(&set); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		log.Printf("ERROR: Archive update failed for user %d: %v", userID, err)
		return nil, err
	}

	// Invalidate rather than rewrite: concurrent mutations each return
	// their own snapshot, and rewriting could publish the older one. The
	// next read repopulates the cache from the row.
	if err := s.Redis.Del(s.Ctx, archivedCacheKey(userID)).Err(); err != nil {
		log.Printf("WARNING: Redis invalidation failed for user %d archived set: %v", userID, err)
	}

	return set.Sorted(), nil
}

func (s *Service) cacheArchived(userID uint, set models.ArchivedSet) {
	payload, err := json.Marshal(set)
	if err != nil {
		return
	}
	if err := s.Redis.Set(s.Ctx, archivedCacheKey(userID), payload, archivedCacheTTL).Err(); err != nil {
		log.Printf("WARNING: Redis write failed for user %d archived set: %v", userID, err)
	}
}
