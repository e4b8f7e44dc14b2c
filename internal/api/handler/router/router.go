package router

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/leora-investor/investor-os-api/pkg/log"
)

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.pending = append(router.pending, routes...)
		}
	}

	// WithAuth define o middleware aplicado a toda rota que não é pública
	WithAuth = func(auth func(http.Handler) http.Handler) ConfigRouter {
		return func(router *Router) {
			router.auth = auth
		}
	}
)

// Route descreve um endpoint. Rotas não públicas passam pelo middleware de auth do
// router antes dos middlewares próprios. Os parâmetros do path (":snapshot_id",
// ":session_id") entram no log da requisição com o mesmo nome.
type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Public      bool
	Middlewares []func(http.Handler) http.Handler
}

type Router struct {
	router  *httprouter.Router
	auth    func(http.Handler) http.Handler
	pending []Route
}

type ConfigRouter func(router *Router)

// New aplica as configurações e só então registra as rotas, então a ordem entre
// WithAuth e WithRoutes não importa.
func New(configs ...ConfigRouter) Router {
	router := &Router{
		router: httprouter.New(),
	}

	for _, config := range configs {
		config(router)
	}
	router.AddRoutes(router.pending...)
	router.pending = nil

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes registra as rotas: auth (se não pública), depois os middlewares da rota
// na ordem declarada, depois o handler.
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		var handler http.Handler = route.Handler

		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		if !route.Public && r.auth != nil {
			handler = r.auth(handler)
		}

		r.router.Handle(route.Method, route.Path, withRouteContext(route.Path, handler))
	}
}

// withRouteContext expõe os parâmetros para httprouter.ParamsFromContext e os anexa
// ao log da requisição.
func withRouteContext(path string, next http.Handler) httprouter.Handle {
	return func(w http.ResponseWriter, req *http.Request, params httprouter.Params) {
		ctx := context.WithValue(req.Context(), httprouter.ParamsKey, params)
		ctx = log.AddField(ctx, "route", path)
		for _, p := range params {
			ctx = log.AddField(ctx, p.Key, p.Value)
		}
		next.ServeHTTP(w, req.WithContext(ctx))
	}
}
