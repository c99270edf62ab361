package stats

import (
	"context"

	"EmotionAI/app/chat/internal/logic/helper"
	"EmotionAI/app/chat/internal/svc"
	"EmotionAI/app/chat/internal/types"
	"EmotionAI/app/common/consts/errno"
	fragrancedal "EmotionAI/app/dal/fragrance"
	userdal "EmotionAI/app/dal/user"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type UserPreferencesLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewUserPreferencesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UserPreferencesLogic {
	return &UserPreferencesLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *UserPreferencesLogic) UserPreferences(req *types.UserPathRequest) (*types.UserPreferencesResponse, error) {
	if req == nil || req.UserId == "" {
		return nil, errors.New(int(errno.InvalidParam), "user_id is required")
	}

	prefs, err := l.svcCtx.UserPreferences.ListByUserId(l.ctx, req.UserId)
	if err != nil && err != userdal.ErrNotFound {
		l.Logger.Error("logic: list preferences failed: ", err)
		return nil, errors.New(int(errno.InternalError), "failed to load preferences")
	}

	resp := &types.UserPreferencesResponse{
		StatusCode:  errno.StatusOK,
		StatusMsg:   "success",
		UserId:      req.UserId,
		Preferences: make([]types.PreferenceInfo, 0, len(prefs)),
	}
	for _, pref := range prefs {
		var name string
		item, err := l.svcCtx.Fragrances.FindOne(l.ctx, pref.FragranceId)
		switch err {
		case nil:
			name = item.Name
		case fragrancedal.ErrNotFound:
		default:
			l.Logger.Error("logic: find fragrance failed: ", err)
		}
		resp.Preferences = append(resp.Preferences, helper.ToPreferenceInfo(pref, name))
	}
	return resp, nil
}
