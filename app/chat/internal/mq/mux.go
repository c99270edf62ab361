package mq

import (
	"context"
	"encoding/json"
	"time"

	"EmotionAI/app/chat/internal/dialogue"
	"EmotionAI/app/chat/internal/session"
	"EmotionAI/app/chat/internal/svc"
	conversationdal "EmotionAI/app/dal/conversation"

	"github.com/hibiken/asynq"
	"github.com/zeromicro/go-zero/core/logx"
)

func NewAsynqMux(sc *svc.ServiceContext) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskExpireSession, newExpireSessionHandler(sc))
	return mux
}

// newExpireSessionHandler reaps a session once its timeout fires. The user
// may have kept talking or started a fresh session in the meantime, so the
// task re-checks before deleting anything.
func newExpireSessionHandler(sc *svc.ServiceContext) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload ExpireSessionPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return err
		}
		log := logx.WithContext(ctx)

		sess, err := sc.SessionMgr.CurrentState(ctx, payload.UserId)
		if err == session.ErrNotFound {
			closeSessionRow(ctx, sc, payload.SessionId)
			return nil
		}
		if err != nil {
			return err
		}
		if sess.SessionID != payload.SessionId {
			// a newer session took over, it has its own expiry task
			return nil
		}
		if time.Since(sess.UpdatedAt) < sc.SessionTTL {
			log.Infof("session %s still active, skipping expiry", payload.SessionId)
			return nil
		}

		if err := sc.SessionMgr.Close(ctx, payload.UserId); err != nil {
			return err
		}
		closeSessionRow(ctx, sc, payload.SessionId)
		log.Infof("expired session %s for user %s", payload.SessionId, payload.UserId)
		return nil
	}
}

func closeSessionRow(ctx context.Context, sc *svc.ServiceContext, sessionId string) {
	err := sc.SessionRows.Close(ctx, sessionId, string(dialogue.StateEndSession))
	if err != nil && err != conversationdal.ErrNotFound {
		logx.WithContext(ctx).Errorf("failed to close session row %s: %v", sessionId, err)
	}
}
