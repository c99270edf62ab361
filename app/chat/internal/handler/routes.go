// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	chat "EmotionAI/app/chat/internal/handler/chat"
	fragrance "EmotionAI/app/chat/internal/handler/fragrance"
	stats "EmotionAI/app/chat/internal/handler/stats"
	"EmotionAI/app/chat/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/api/chat",
				Handler: chat.ChatHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/chat/state",
				Handler: chat.GetStateHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/chat/reset",
				Handler: chat.ResetSessionHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/analyze",
				Handler: chat.AnalyzeHandler(serverCtx),
			},
		},
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/api/fragrances",
				Handler: fragrance.ListFragrancesHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/fragrance/:emotion",
				Handler: fragrance.GetFragranceHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/fragrance/add",
				Handler: fragrance.AddFragranceHandler(serverCtx),
			},
		},
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/api/user/:user_id/stats",
				Handler: stats.UserStatsHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/user/:user_id/preferences",
				Handler: stats.UserPreferencesHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/analytics",
				Handler: stats.AnalyticsHandler(serverCtx),
			},
		},
	)
}
