package chat

import (
	"context"
	"strings"

	"EmotionAI/app/chat/internal/svc"
	"EmotionAI/app/chat/internal/types"
	"EmotionAI/app/common/consts/errno"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type AnalyzeLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewAnalyzeLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AnalyzeLogic {
	return &AnalyzeLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Analyze exposes the raw classification without touching any session.
func (l *AnalyzeLogic) Analyze(req *types.AnalyzeRequest) (*types.AnalyzeResponse, error) {
	if req == nil || strings.TrimSpace(req.Text) == "" {
		return nil, errors.New(int(errno.InvalidParam), "text is required")
	}

	res := l.svcCtx.Engine.Arbiter.Analyze(req.Text)

	return &types.AnalyzeResponse{
		StatusCode:        errno.StatusOK,
		StatusMsg:         "success",
		Type:              res.Type,
		Emotion:           res.Emotion,
		EmotionConfidence: res.EmotionConfidence,
		Intent:            res.Intent,
		IntentConfidence:  res.IntentConfidence,
	}, nil
}
