package fragrance

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/sqlc"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ FragrancesModel = (*customFragrancesModel)(nil)

type (
	// FragrancesModel is an interface to be customized, add more methods here,
	// and implement the added methods in customFragrancesModel.
	FragrancesModel interface {
		fragrancesModel
		ListAll(ctx context.Context) ([]*Fragrances, error)
		ListByEmotion(ctx context.Context, emotion string) ([]*Fragrances, error)
	}

	customFragrancesModel struct {
		*defaultFragrancesModel
	}
)

// NewFragrancesModel returns a model for the database table.
func NewFragrancesModel(conn sqlx.SqlConn, c cache.CacheConf, opts ...cache.Option) FragrancesModel {
	return &customFragrancesModel{
		defaultFragrancesModel: newFragrancesModel(conn, c, opts...),
	}
}

func (m *customFragrancesModel) ListAll(ctx context.Context) ([]*Fragrances, error) {
	query := fmt.Sprintf("select %s from %s order by `emotion`, `id`", fragrancesRows, m.table)
	var resp []*Fragrances
	err := m.QueryRowsNoCacheCtx(ctx, &resp, query)
	switch err {
	case nil:
		return resp, nil
	case sqlc.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

func (m *customFragrancesModel) ListByEmotion(ctx context.Context, emotion string) ([]*Fragrances, error) {
	query := fmt.Sprintf("select %s from %s where `emotion` = ? order by `id`", fragrancesRows, m.table)
	var resp []*Fragrances
	err := m.QueryRowsNoCacheCtx(ctx, &resp, query, emotion)
	switch err {
	case nil:
		return resp, nil
	case sqlc.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}
