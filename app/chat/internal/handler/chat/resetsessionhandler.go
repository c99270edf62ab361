// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package chat

import (
	"net/http"

	"EmotionAI/app/chat/internal/logic/chat"
	"EmotionAI/app/chat/internal/svc"
	"EmotionAI/app/chat/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func ResetSessionHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ResetSessionRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := chat.NewResetSessionLogic(r.Context(), svcCtx)
		resp, err := l.ResetSession(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
