package stats

import (
	"context"

	"EmotionAI/app/chat/internal/svc"
	"EmotionAI/app/chat/internal/types"
	"EmotionAI/app/common/consts/errno"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type AnalyticsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewAnalyticsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AnalyticsLogic {
	return &AnalyticsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *AnalyticsLogic) Analytics() (*types.AnalyticsResponse, error) {
	users, err := l.svcCtx.Users.CountAll(l.ctx)
	if err != nil {
		l.Logger.Error("logic: count users failed: ", err)
		return nil, errors.New(int(errno.InternalError), "failed to load analytics")
	}
	sessions, err := l.svcCtx.SessionRows.CountAll(l.ctx)
	if err != nil {
		l.Logger.Error("logic: count sessions failed: ", err)
		return nil, errors.New(int(errno.InternalError), "failed to load analytics")
	}
	conversations, err := l.svcCtx.Conversations.CountAll(l.ctx)
	if err != nil {
		l.Logger.Error("logic: count conversations failed: ", err)
		return nil, errors.New(int(errno.InternalError), "failed to load analytics")
	}
	stats, err := l.svcCtx.Conversations.EmotionStats(l.ctx)
	if err != nil {
		l.Logger.Error("logic: emotion stats failed: ", err)
		return nil, errors.New(int(errno.InternalError), "failed to load analytics")
	}
	emotionStats := make([]types.EmotionStatInfo, 0, len(stats))
	for _, s := range stats {
		emotionStats = append(emotionStats, types.EmotionStatInfo{
			Emotion:       s.Emotion,
			Total:         s.Total,
			AvgConfidence: s.AvgConfidence,
		})
	}

	return &types.AnalyticsResponse{
		StatusCode:         errno.StatusOK,
		StatusMsg:          "success",
		TotalUsers:         users,
		TotalSessions:      sessions,
		TotalConversations: conversations,
		EmotionStats:       emotionStats,
	}, nil
}
