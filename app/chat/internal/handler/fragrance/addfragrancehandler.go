// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package fragrance

import (
	"net/http"

	"EmotionAI/app/chat/internal/logic/fragrance"
	"EmotionAI/app/chat/internal/svc"
	"EmotionAI/app/chat/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func AddFragranceHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.AddFragranceRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := fragrance.NewAddFragranceLogic(r.Context(), svcCtx)
		resp, err := l.AddFragrance(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
