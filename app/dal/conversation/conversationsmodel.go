package conversation

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/sqlc"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ ConversationsModel = (*customConversationsModel)(nil)

type (
	// ConversationsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customConversationsModel.
	ConversationsModel interface {
		conversationsModel
		CountAll(ctx context.Context) (int64, error)
		CountByUserId(ctx context.Context, userId string) (int64, error)
		EmotionCountsByUserId(ctx context.Context, userId string) (map[string]int64, error)
		EmotionStats(ctx context.Context) ([]*EmotionStat, error)
		ListRecentByUserId(ctx context.Context, userId string, limit int64) ([]*Conversations, error)
	}

	customConversationsModel struct {
		*defaultConversationsModel
	}

	// EmotionStat is one row of the per-emotion aggregate over the turn log.
	EmotionStat struct {
		Emotion       string  `db:"emotion"`
		Total         int64   `db:"total"`
		AvgConfidence float64 `db:"avg_confidence"`
	}

	emotionCount struct {
		Emotion string `db:"emotion"`
		Total   int64  `db:"total"`
	}
)

// NewConversationsModel returns a model for the database table.
func NewConversationsModel(conn sqlx.SqlConn, c cache.CacheConf, opts ...cache.Option) ConversationsModel {
	return &customConversationsModel{
		defaultConversationsModel: newConversationsModel(conn, c, opts...),
	}
}

func (m *customConversationsModel) CountAll(ctx context.Context) (int64, error) {
	query := fmt.Sprintf("select count(*) from %s", m.table)
	var total int64
	err := m.QueryRowNoCacheCtx(ctx, &total, query)
	return total, err
}

func (m *customConversationsModel) CountByUserId(ctx context.Context, userId string) (int64, error) {
	query := fmt.Sprintf("select count(*) from %s where `user_id` = ?", m.table)
	var total int64
	err := m.QueryRowNoCacheCtx(ctx, &total, query, userId)
	return total, err
}

func (m *customConversationsModel) EmotionCountsByUserId(ctx context.Context, userId string) (map[string]int64, error) {
	query := fmt.Sprintf("select `emotion`, count(*) as total from %s where `user_id` = ? and `emotion` != '' group by `emotion`", m.table)
	var rows []*emotionCount
	if err := m.QueryRowsNoCacheCtx(ctx, &rows, query, userId); err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Emotion] = row.Total
	}
	return counts, nil
}

func (m *customConversationsModel) EmotionStats(ctx context.Context) ([]*EmotionStat, error) {
	query := fmt.Sprintf("select `emotion`, count(*) as total, avg(`confidence`) as avg_confidence from %s where `emotion` != '' group by `emotion`", m.table)
	var rows []*EmotionStat
	if err := m.QueryRowsNoCacheCtx(ctx, &rows, query); err != nil {
		return nil, err
	}
	return rows, nil
}

func (m *customConversationsModel) ListRecentByUserId(ctx context.Context, userId string, limit int64) ([]*Conversations, error) {
	query := fmt.Sprintf("select %s from %s where `user_id` = ? order by `id` desc limit ?", conversationsRows, m.table)
	var resp []*Conversations
	err := m.QueryRowsNoCacheCtx(ctx, &resp, query, userId, limit)
	switch err {
	case nil:
		return resp, nil
	case sqlc.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

