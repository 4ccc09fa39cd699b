package rpc

import (
	"log/slog"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/velkovsky/blog-portal/internal/blogportal"
)

func New(logger *slog.Logger, blogManager *blogportal.Manager) *zenrpc.Server {
	rpcService := NewBlogService(blogManager)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("blog", rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "blog-portal", nil))

	return rpcServer
}
