package chat

import (
	"context"
	"encoding/json"
	"strings"

	"EmotionAI/app/chat/internal/dialogue"
	"EmotionAI/app/chat/internal/logic/helper"
	"EmotionAI/app/chat/internal/mq"
	"EmotionAI/app/chat/internal/svc"
	"EmotionAI/app/chat/internal/types"
	"EmotionAI/app/common/consts/errno"
	conversationdal "EmotionAI/app/dal/conversation"
	fragrancedal "EmotionAI/app/dal/fragrance"
	userdal "EmotionAI/app/dal/user"

	"github.com/hibiken/asynq"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

// AnonymousUser is used when the client sends no user id.
const AnonymousUser = "anonymous"

type ChatLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewChatLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ChatLogic {
	return &ChatLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ChatLogic) Chat(req *types.ChatRequest) (*types.ChatResponse, error) {
	if req == nil || strings.TrimSpace(req.Message) == "" {
		return nil, errors.New(int(errno.InvalidParam), "message is required")
	}
	userID := req.UserId
	if userID == "" {
		userID = AnonymousUser
	}

	turn, sess, created, err := l.svcCtx.SessionMgr.ProcessTurn(l.ctx, userID, req.Message)
	if err != nil {
		l.Logger.Error("logic: process turn failed: ", err)
		return nil, errors.New(int(errno.InternalError), "failed to process message")
	}

	if created {
		l.recordNewSession(sess)
	}
	l.ensureUser(userID)

	resp := &types.ChatResponse{
		StatusCode:  errno.StatusOK,
		StatusMsg:   "success",
		SessionId:   sess.SessionID,
		Response:    turn.Response,
		State:       string(turn.State),
		PrevState:   string(turn.PrevState),
		Suggestions: turn.Suggestions,
		Emotion:     turn.Emotion,
		Confidence:  turn.Confidence,
	}

	if turn.State == dialogue.StateSuggestFragrance && turn.Emotion != "" {
		l.attachSuggestion(resp, userID, turn.Emotion)
	}

	l.recordTurn(sess, req.Message, resp.Response, turn)

	if turn.State == dialogue.StateEndSession && turn.PrevState != dialogue.StateEndSession {
		err := l.svcCtx.SessionRows.Close(l.ctx, sess.SessionID, string(dialogue.StateEndSession))
		if err != nil && err != conversationdal.ErrNotFound {
			l.Logger.Error("logic: close session row failed: ", err)
		}
	}

	return resp, nil
}

func (l *ChatLogic) attachSuggestion(resp *types.ChatResponse, userID, emotion string) {
	suggestion, err := l.svcCtx.Recommender.Suggest(l.ctx, userID, emotion)
	switch err {
	case nil:
	case fragrancedal.ErrNotFound:
		l.Logger.Infof("no fragrance in catalog for emotion %s", emotion)
		return
	default:
		l.Logger.Error("logic: recommend failed: ", err)
		return
	}

	info := helper.ToFragranceInfo(suggestion.Fragrance)
	resp.Fragrance = &info
	resp.Personalized = suggestion.Personalized
	resp.Response = helper.FragranceReply(resp.Response, suggestion.Fragrance)

	if err := l.svcCtx.SessionMgr.RecordSuggestion(l.ctx, userID, suggestion.Fragrance.Name); err != nil {
		l.Logger.Error("logic: record suggestion failed: ", err)
	}
	if userID != AnonymousUser {
		l.recordPreference(userID, emotion, suggestion.Fragrance.Id)
	}
}

// recordNewSession writes the session row and schedules the expiry task.
// Both are best effort, a chat turn never fails on bookkeeping.
func (l *ChatLogic) recordNewSession(sess *dialogue.Session) {
	_, err := l.svcCtx.SessionRows.Insert(l.ctx, &conversationdal.ConversationSessions{
		SessionId: sess.SessionID,
		UserId:    sess.UserID,
		State:     string(sess.State),
		StartedAt: sess.StartedAt,
	})
	if err != nil {
		l.Logger.Error("logic: insert session row failed: ", err)
	}

	payload, err := json.Marshal(mq.ExpireSessionPayload{
		SessionId: sess.SessionID,
		UserId:    sess.UserID,
	})
	if err != nil {
		l.Logger.Error("logic: marshal expiry payload failed: ", err)
		return
	}
	task := asynq.NewTask(mq.TaskExpireSession, payload)
	if _, err := l.svcCtx.AsynqClient.Enqueue(task, asynq.ProcessIn(l.svcCtx.SessionTTL)); err != nil {
		l.Logger.Error("logic: enqueue session expiry failed: ", err)
	}
}

func (l *ChatLogic) ensureUser(userID string) {
	_, err := l.svcCtx.Users.FindOneByUserId(l.ctx, userID)
	if err == nil {
		return
	}
	if err != userdal.ErrNotFound {
		l.Logger.Error("logic: find user failed: ", err)
		return
	}
	if _, err := l.svcCtx.Users.Insert(l.ctx, &userdal.Users{UserId: userID, Username: userID}); err != nil {
		l.Logger.Error("logic: insert user failed: ", err)
	}
}

func (l *ChatLogic) recordPreference(userID, emotion string, fragranceID int64) {
	_, err := l.svcCtx.UserPreferences.Insert(l.ctx, &userdal.UserPreferences{
		UserId:      userID,
		Emotion:     emotion,
		FragranceId: fragranceID,
		Rating:      3,
	})
	if err != nil {
		l.Logger.Error("logic: insert preference failed: ", err)
	}
}

func (l *ChatLogic) recordTurn(sess *dialogue.Session, message, response string, turn *dialogue.Turn) {
	_, err := l.svcCtx.Conversations.Insert(l.ctx, &conversationdal.Conversations{
		SessionId:  sess.SessionID,
		UserId:     sess.UserID,
		Message:    message,
		Response:   response,
		Emotion:    turn.Emotion,
		Confidence: turn.Confidence,
		State:      string(turn.State),
	})
	if err != nil {
		l.Logger.Error("logic: insert conversation failed: ", err)
	}

	err = l.svcCtx.SessionRows.IncrTurns(l.ctx, sess.SessionID)
	if err != nil && err != conversationdal.ErrNotFound {
		l.Logger.Error("logic: bump session turns failed: ", err)
	}

	evt := mq.TurnEvent{
		SessionId:  sess.SessionID,
		UserId:     sess.UserID,
		Message:    message,
		Response:   response,
		Emotion:    turn.Emotion,
		Confidence: turn.Confidence,
		PrevState:  string(turn.PrevState),
		State:      string(turn.State),
		Timestamp:  sess.UpdatedAt.Unix(),
	}
	if err := mq.PublishTurnEvent(l.svcCtx, evt); err != nil {
		l.Logger.Error("logic: publish turn event failed: ", err)
	}
}
