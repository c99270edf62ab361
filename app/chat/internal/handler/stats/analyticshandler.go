// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package stats

import (
	"net/http"

	"EmotionAI/app/chat/internal/logic/stats"
	"EmotionAI/app/chat/internal/svc"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func AnalyticsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := stats.NewAnalyticsLogic(r.Context(), svcCtx)
		resp, err := l.Analytics()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
