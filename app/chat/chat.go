package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"

	"EmotionAI/app/chat/internal/bootstrap"
	"EmotionAI/app/chat/internal/config"
	"EmotionAI/app/chat/internal/handler"
	"EmotionAI/app/chat/internal/svc"
	"EmotionAI/app/common/consts/errno"
	"EmotionAI/app/common/response"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/httpx"
	xerrors "github.com/zeromicro/x/errors"
)

var configFile = flag.String("f", "etc/chat-api.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)

	httpx.SetErrorHandlerCtx(errorHandler)

	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	ctx := svc.NewServiceContext(c)
	handler.RegisterHandlers(server, ctx)

	stopAsynq := bootstrap.StartAsynq(ctx)
	defer stopAsynq()

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}

// errorHandler maps business errors to the response envelope and a fitting
// HTTP status.
func errorHandler(_ context.Context, err error) (int, any) {
	var cm *xerrors.CodeMsg
	if errors.As(err, &cm) {
		status := http.StatusOK
		switch cm.Code {
		case errno.InvalidParam:
			status = http.StatusBadRequest
		case errno.UserNotFound, errno.FragranceNotFound, errno.SessionNotFound:
			status = http.StatusNotFound
		case errno.InternalError:
			status = http.StatusInternalServerError
		}
		return status, response.NewResponse(cm.Code, cm.Msg)
	}
	return http.StatusBadRequest, response.NewResponse(errno.InvalidParam, err.Error())
}
