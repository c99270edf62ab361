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

type ResetSessionLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewResetSessionLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ResetSessionLogic {
	return &ResetSessionLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ResetSessionLogic) ResetSession(req *types.ResetSessionRequest) (*types.SessionStateResponse, error) {
	if req == nil || req.UserId == "" {
		return nil, errors.New(int(errno.InvalidParam), "user_id is required")
	}

	sess, err := l.svcCtx.SessionMgr.Reset(l.ctx, req.UserId)
	if err == session.ErrNotFound {
		return nil, errors.New(int(errno.SessionNotFound), "no active session")
	}
	if err != nil {
		l.Logger.Error("logic: reset session failed: ", err)
		return nil, errors.New(int(errno.InternalError), "failed to reset session")
	}

	return &types.SessionStateResponse{
		StatusCode:        errno.StatusOK,
		StatusMsg:         "success",
		SessionId:         sess.SessionID,
		State:             string(sess.State),
		EmotionsDiscussed: sess.EmotionsDiscussed,
	}, nil
}
