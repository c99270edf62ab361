package conversation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ ConversationSessionsModel = (*customConversationSessionsModel)(nil)

type (
	// ConversationSessionsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customConversationSessionsModel.
	ConversationSessionsModel interface {
		conversationSessionsModel
		IncrTurns(ctx context.Context, sessionId string) error
		Close(ctx context.Context, sessionId, state string) error
		CountAll(ctx context.Context) (int64, error)
	}

	customConversationSessionsModel struct {
		*defaultConversationSessionsModel
	}
)

// NewConversationSessionsModel returns a model for the database table.
func NewConversationSessionsModel(conn sqlx.SqlConn, c cache.CacheConf, opts ...cache.Option) ConversationSessionsModel {
	return &customConversationSessionsModel{
		defaultConversationSessionsModel: newConversationSessionsModel(conn, c, opts...),
	}
}

func (m *customConversationSessionsModel) IncrTurns(ctx context.Context, sessionId string) error {
	data, err := m.FindOneBySessionId(ctx, sessionId)
	if err != nil {
		return err
	}

	conversationSessionsIdKey := fmt.Sprintf("%s%v", cacheConversationSessionsIdPrefix, data.Id)
	conversationSessionsSessionIdKey := fmt.Sprintf("%s%v", cacheConversationSessionsSessionIdPrefix, data.SessionId)
	_, err = m.ExecCtx(ctx, func(ctx context.Context, conn sqlx.SqlConn) (result sql.Result, err error) {
		query := fmt.Sprintf("update %s set `turns` = `turns` + 1 where `session_id` = ?", m.table)
		return conn.ExecCtx(ctx, query, sessionId)
	}, conversationSessionsIdKey, conversationSessionsSessionIdKey)
	return err
}

func (m *customConversationSessionsModel) Close(ctx context.Context, sessionId, state string) error {
	data, err := m.FindOneBySessionId(ctx, sessionId)
	if err != nil {
		return err
	}

	conversationSessionsIdKey := fmt.Sprintf("%s%v", cacheConversationSessionsIdPrefix, data.Id)
	conversationSessionsSessionIdKey := fmt.Sprintf("%s%v", cacheConversationSessionsSessionIdPrefix, data.SessionId)
	_, err = m.ExecCtx(ctx, func(ctx context.Context, conn sqlx.SqlConn) (result sql.Result, err error) {
		query := fmt.Sprintf("update %s set `state` = ?, `ended_at` = ? where `session_id` = ?", m.table)
		return conn.ExecCtx(ctx, query, state, time.Now(), sessionId)
	}, conversationSessionsIdKey, conversationSessionsSessionIdKey)
	return err
}

func (m *customConversationSessionsModel) CountAll(ctx context.Context) (int64, error) {
	query := fmt.Sprintf("select count(*) from %s", m.table)
	var total int64
	err := m.QueryRowNoCacheCtx(ctx, &total, query)
	return total, err
}
