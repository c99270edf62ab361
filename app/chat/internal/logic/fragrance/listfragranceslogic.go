package fragrance

import (
	"context"

	"EmotionAI/app/chat/internal/logic/helper"
	"EmotionAI/app/chat/internal/svc"
	"EmotionAI/app/chat/internal/types"
	"EmotionAI/app/common/consts/errno"
	fragrancedal "EmotionAI/app/dal/fragrance"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type ListFragrancesLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListFragrancesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListFragrancesLogic {
	return &ListFragrancesLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListFragrancesLogic) ListFragrances() (*types.ListFragrancesResponse, error) {
	items, err := l.svcCtx.Fragrances.ListAll(l.ctx)
	if err != nil && err != fragrancedal.ErrNotFound {
		l.Logger.Error("logic: list fragrances failed: ", err)
		return nil, errors.New(int(errno.InternalError), "failed to list fragrances")
	}

	resp := &types.ListFragrancesResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "success",
		Fragrances: make([]types.FragranceInfo, 0, len(items)),
	}
	for _, item := range items {
		resp.Fragrances = append(resp.Fragrances, helper.ToFragranceInfo(item))
	}
	return resp, nil
}
