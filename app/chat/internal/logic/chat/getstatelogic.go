package chat

import (
	"context"

	"EmotionAI/app/chat/internal/session"
	"EmotionAI/app/chat/internal/svc"
	"EmotionAI/app/chat/internal/types"
	"EmotionAI/app/common/consts/errno"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type GetStateLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetStateLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetStateLogic {
	return &GetStateLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetStateLogic) GetState(req *types.SessionStateRequest) (*types.SessionStateResponse, error) {
	if req == nil || req.UserId == "" {
		return nil, errors.New(int(errno.InvalidParam), "user_id is required")
	}

	sess, err := l.svcCtx.SessionMgr.CurrentState(l.ctx, req.UserId)
	if err == session.ErrNotFound {
		return nil, errors.New(int(errno.SessionNotFound), "no active session")
	}
	if err != nil {
		l.Logger.Error("logic: load session failed: ", err)
		return nil, errors.New(int(errno.InternalError), "failed to load session")
	}

	return &types.SessionStateResponse{
		StatusCode:        errno.StatusOK,
		StatusMsg:         "success",
		SessionId:         sess.SessionID,
		State:             string(sess.State),
		Emotion:           sess.Emotion,
		Confidence:        sess.Confidence,
		EmotionsDiscussed: sess.EmotionsDiscussed,
	}, nil
}
