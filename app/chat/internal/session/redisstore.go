package session

import (
	"context"
	"encoding/json"
	"time"

	"EmotionAI/app/chat/internal/dialogue"
	"EmotionAI/app/common/consts/biz"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

// RedisStore keeps sessions as JSON values with a TTL, so an abandoned
// conversation evicts itself even if the expiry task never fires.
type RedisStore struct {
	rds *redis.Redis
	ttl time.Duration
}

func NewRedisStore(rds *redis.Redis, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = biz.SessionExpire
	}
	return &RedisStore{rds: rds, ttl: ttl}
}

func key(userID string) string {
	return biz.SessionCacheKey + userID
}

func (s *RedisStore) Get(ctx context.Context, userID string) (*dialogue.Session, error) {
	val, err := s.rds.GetCtx(ctx, key(userID))
	if err != nil {
		return nil, err
	}
	if val == "" {
		return nil, ErrNotFound
	}
	var sess dialogue.Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *RedisStore) Put(ctx context.Context, sess *dialogue.Session) error {
	body, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.rds.SetexCtx(ctx, key(sess.UserID), string(body), int(s.ttl.Seconds()))
}

func (s *RedisStore) Delete(ctx context.Context, userID string) error {
	_, err := s.rds.DelCtx(ctx, key(userID))
	return err
}
