package user

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/sqlc"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ UserPreferencesModel = (*customUserPreferencesModel)(nil)

type (
	// UserPreferencesModel is an interface to be customized, add more methods here,
	// and implement the added methods in customUserPreferencesModel.
	UserPreferencesModel interface {
		userPreferencesModel
		ListByUserId(ctx context.Context, userId string) ([]*UserPreferences, error)
		ListLiked(ctx context.Context, userId, emotion string, minRating int64) ([]*UserPreferences, error)
	}

	customUserPreferencesModel struct {
		*defaultUserPreferencesModel
	}
)

// NewUserPreferencesModel returns a model for the database table.
func NewUserPreferencesModel(conn sqlx.SqlConn, c cache.CacheConf, opts ...cache.Option) UserPreferencesModel {
	return &customUserPreferencesModel{
		defaultUserPreferencesModel: newUserPreferencesModel(conn, c, opts...),
	}
}

func (m *customUserPreferencesModel) ListByUserId(ctx context.Context, userId string) ([]*UserPreferences, error) {
	query := fmt.Sprintf("select %s from %s where `user_id` = ? order by `create_time` desc", userPreferencesRows, m.table)
	var resp []*UserPreferences
	err := m.QueryRowsNoCacheCtx(ctx, &resp, query, userId)
	switch err {
	case nil:
		return resp, nil
	case sqlc.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

func (m *customUserPreferencesModel) ListLiked(ctx context.Context, userId, emotion string, minRating int64) ([]*UserPreferences, error) {
	query := fmt.Sprintf("select %s from %s where `user_id` = ? and `emotion` = ? and `rating` >= ? order by `rating` desc, `create_time` desc", userPreferencesRows, m.table)
	var resp []*UserPreferences
	err := m.QueryRowsNoCacheCtx(ctx, &resp, query, userId, emotion, minRating)
	switch err {
	case nil:
		return resp, nil
	case sqlc.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}
