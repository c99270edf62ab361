// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package fragrance

import (
	"net/http"

	"EmotionAI/app/chat/internal/logic/fragrance"
	"EmotionAI/app/chat/internal/svc"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func ListFragrancesHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := fragrance.NewListFragrancesLogic(r.Context(), svcCtx)
		resp, err := l.ListFragrances()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
