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

type GetFragranceLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetFragranceLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetFragranceLogic {
	return &GetFragranceLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetFragranceLogic) GetFragrance(req *types.GetFragranceRequest) (*types.ListFragrancesResponse, error) {
	if req == nil || req.Emotion == "" {
		return nil, errors.New(int(errno.InvalidParam), "emotion is required")
	}

	items, err := l.svcCtx.Fragrances.ListByEmotion(l.ctx, req.Emotion)
	if err != nil && err != fragrancedal.ErrNotFound {
		l.Logger.Error("logic: list fragrances by emotion failed: ", err)
		return nil, errors.New(int(errno.InternalError), "failed to list fragrances")
	}
	if len(items) == 0 {
		return nil, errors.New(int(errno.FragranceNotFound), "no fragrances for this emotion")
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
