package stats

import (
	"context"

	"EmotionAI/app/chat/internal/logic/helper"
	"EmotionAI/app/chat/internal/svc"
	"EmotionAI/app/chat/internal/types"
	"EmotionAI/app/common/consts/errno"
	conversationdal "EmotionAI/app/dal/conversation"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

// recentTurnLimit caps the history slice returned with user stats.
const recentTurnLimit = 5

type UserStatsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewUserStatsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UserStatsLogic {
	return &UserStatsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *UserStatsLogic) UserStats(req *types.UserPathRequest) (*types.UserStatsResponse, error) {
	if req == nil || req.UserId == "" {
		return nil, errors.New(int(errno.InvalidParam), "user_id is required")
	}

	total, err := l.svcCtx.Conversations.CountByUserId(l.ctx, req.UserId)
	if err != nil {
		l.Logger.Error("logic: count conversations failed: ", err)
		return nil, errors.New(int(errno.InternalError), "failed to load stats")
	}

	counts, err := l.svcCtx.Conversations.EmotionCountsByUserId(l.ctx, req.UserId)
	if err != nil {
		l.Logger.Error("logic: emotion counts failed: ", err)
		return nil, errors.New(int(errno.InternalError), "failed to load stats")
	}

	recent, err := l.svcCtx.Conversations.ListRecentByUserId(l.ctx, req.UserId, recentTurnLimit)
	if err != nil && err != conversationdal.ErrNotFound {
		l.Logger.Error("logic: list recent conversations failed: ", err)
		return nil, errors.New(int(errno.InternalError), "failed to load stats")
	}
	turns := make([]types.TurnInfo, 0, len(recent))
	for _, c := range recent {
		turns = append(turns, helper.ToTurnInfo(c))
	}

	return &types.UserStatsResponse{
		StatusCode:      errno.StatusOK,
		StatusMsg:       "success",
		UserId:          req.UserId,
		TotalMessages:   total,
		EmotionCounts:   counts,
		DominantEmotion: helper.DominantEmotion(counts),
		RecentMessages:  turns,
	}, nil
}
