package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"pacp_coder/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Route("/reports", func(r chi.Router) {
				r.Post("/", handler(s.postV1Reports))
				r.Get("/{id}", handler(s.getV1Report))
				r.Get("/{id}/export", handler(s.getV1ReportExport))
			})

			r.Route("/exclusions", func(r chi.Router) {
				r.Get("/", handler(s.getV1Exclusions))
				r.Post("/resolve", handler(s.postV1ExclusionsResolve))
			})
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
