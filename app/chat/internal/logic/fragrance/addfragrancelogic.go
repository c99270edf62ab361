package fragrance

import (
	"context"
	"strings"

	"EmotionAI/app/chat/internal/engine/arbiter"
	"EmotionAI/app/chat/internal/svc"
	"EmotionAI/app/chat/internal/types"
	"EmotionAI/app/common/consts/errno"
	fragrancedal "EmotionAI/app/dal/fragrance"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type AddFragranceLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewAddFragranceLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AddFragranceLogic {
	return &AddFragranceLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *AddFragranceLogic) AddFragrance(req *types.AddFragranceRequest) (*types.AddFragranceResponse, error) {
	if req == nil || strings.TrimSpace(req.Name) == "" {
		return nil, errors.New(int(errno.InvalidParam), "name is required")
	}
	emotion := strings.ToLower(strings.TrimSpace(req.Emotion))
	switch emotion {
	case arbiter.EmotionPositive, arbiter.EmotionNegative, arbiter.EmotionNeutral:
	default:
		return nil, errors.New(int(errno.EmotionUnknown), "unknown emotion category")
	}

	ret, err := l.svcCtx.Fragrances.Insert(l.ctx, &fragrancedal.Fragrances{
		Name:        strings.TrimSpace(req.Name),
		Emotion:     emotion,
		Description: req.Description,
		ScentNotes:  req.ScentNotes,
		Price:       req.Price,
		ImageUrl:    req.ImageUrl,
	})
	if err != nil {
		l.Logger.Error("logic: insert fragrance failed: ", err)
		return nil, errors.New(int(errno.InternalError), "failed to add fragrance")
	}
	id, err := ret.LastInsertId()
	if err != nil {
		l.Logger.Error("logic: read fragrance insert id failed: ", err)
	}

	return &types.AddFragranceResponse{
		StatusCode:  errno.StatusOK,
		StatusMsg:   "success",
		FragranceId: id,
	}, nil
}
