package main

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mager/cochlea/config"
	"github.com/mager/cochlea/extractor"
	"github.com/mager/cochlea/handler/health"
	musicHandler "github.com/mager/cochlea/handler/music"
	trackHandler "github.com/mager/cochlea/handler/track"
	"github.com/mager/cochlea/logger"
	"github.com/mager/cochlea/music"
	"github.com/mager/cochlea/saavn"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Route is an http.Handler that knows the mux pattern
// under which it will be registered.
type Route interface {
	http.Handler

	// Pattern reports the path at which this is registered.
	Pattern() string
}

func main() {
	fx.New(
		fx.Provide(NewHTTPServer,
			config.Options,
			logger.Options,
			saavn.Options,
			extractor.Options,
			music.Options,

			AsRoute(health.NewHealthHandler),
			AsRoute(musicHandler.NewGenerateHandler),
			AsRoute(musicHandler.NewAnalyzeHandler),
			AsRoute(trackHandler.NewGetTrackHandler),
		),
		fx.Invoke(func(*http.Server) {}),
	).Run()
}

type ServerParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Logger    *zap.SugaredLogger
	Config    config.Config
	Routes    []Route `group:"routes"`
}

func NewHTTPServer(p ServerParams) *http.Server {
	router := mux.NewRouter()
	for _, route := range p.Routes {
		router.Handle(route.Pattern(), route)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", p.Config.Port),
		Handler: jsonMiddleware(router),
	}
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			p.Logger.Infof("starting HTTP server at %s", srv.Addr)
			go srv.Serve(ln)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	return srv
}

// AsRoute annotates the given constructor to state that
// it provides a route to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

func jsonMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
