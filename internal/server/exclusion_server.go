package server

import (
	"fmt"
	"net/http"

	"pacp_coder/internal/domain/value"
	"pacp_coder/pkg/httpx/reply"
	"pacp_coder/pkg/httpx/req"
	"pacp_coder/pkg/rest"
)

// ExclusionServer exposes the exclusion-set editor contract: the default set
// plus resolution of add/remove deltas against it.
type ExclusionServer struct{}

func NewExclusionServer() ExclusionServer {
	return ExclusionServer{}
}

func (s ExclusionServer) getV1Exclusions(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, newRESTExclusionSet(value.DefaultExclusions()))

	return nil
}

func (s ExclusionServer) postV1ExclusionsResolve(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.ResolveExclusionsRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	resolved := value.DefaultExclusions().Overlay(
		value.ParseCodeList(request.Add),
		value.ParseCodeList(request.Remove),
	)

	reply.JSON(ctx, w, http.StatusOK, newRESTExclusionSet(resolved))

	return nil
}
