package http

import (
	"net/http"
	"strings"
	"time"

	"euroasia/internal/http/handlers"
	httpmw "euroasia/internal/http/middleware"
)

type RouterDependencies struct {
	JobHandler         *handlers.JobHandler
	AuthHandler        *handlers.AuthHandler
	ApplicationHandler *handlers.ApplicationHandler
	SessionMiddleware  *httpmw.SessionMiddleware
	AdminPages         http.Handler
	RequestTimeout     time.Duration
}

type Router struct {
	deps RouterDependencies
}

const maxBodyBytes = 1 << 20

func NewRouter(deps RouterDependencies) http.Handler {
	return &Router{deps: deps}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	handler := httpmw.Chain(r.baseHandler(), httpmw.RequestID, httpmw.Logging, httpmw.BodyLimit(maxBodyBytes), httpmw.Recover, httpmw.Timeout(r.deps.RequestTimeout))
	handler.ServeHTTP(w, req)
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path

		switch {
		case req.Method == http.MethodGet && path == "/health":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		case req.Method == http.MethodGet && path == "/jobs":
			r.deps.JobHandler.List(w, req)
			return
		case req.Method == http.MethodGet && strings.HasPrefix(path, "/jobs/"):
			r.deps.JobHandler.Get(w, req)
			return
		case req.Method == http.MethodPost && path == "/auth/login":
			r.deps.AuthHandler.Login(w, req)
			return
		case req.Method == http.MethodGet && path == "/auth/check":
			r.deps.AuthHandler.Check(w, req)
			return
		case req.Method == http.MethodPost && path == "/auth/logout":
			r.deps.AuthHandler.Logout(w, req)
			return
		case req.Method == http.MethodPost && path == "/applications":
			r.deps.ApplicationHandler.Submit(w, req)
			return
		}

		if strings.HasPrefix(path, "/jobs") {
			protected := r.deps.SessionMiddleware.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				r.handleProtected(w, req)
			}))
			protected.ServeHTTP(w, req)
			return
		}

		if path == "/admin" || strings.HasPrefix(path, "/admin/") {
			r.deps.SessionMiddleware.GateAdminPages(r.adminPages()).ServeHTTP(w, req)
			return
		}

		http.NotFound(w, req)
	})
}

func (r *Router) handleProtected(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path

	switch {
	case req.Method == http.MethodPost && path == "/jobs":
		r.deps.JobHandler.Create(w, req)
		return
	case req.Method == http.MethodPut && strings.HasPrefix(path, "/jobs/"):
		r.deps.JobHandler.Update(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/jobs/"):
		r.deps.JobHandler.Delete(w, req)
		return
	}

	http.NotFound(w, req)
}

func (r *Router) adminPages() http.Handler {
	pages := r.deps.AdminPages
	if pages == nil {
		pages = http.NotFoundHandler()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		// The asset handler strips "/admin/", so the bare entry point
		// needs the trailing slash first.
		if req.URL.Path == "/admin" {
			http.Redirect(w, req, "/admin/", http.StatusMovedPermanently)
			return
		}
		pages.ServeHTTP(w, req)
	})
}
