package api

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/railkit/railsignal/pkg/buildinfo"
	apperrors "github.com/railkit/railsignal/pkg/errors"
	stationio "github.com/railkit/railsignal/pkg/io"
	"github.com/railkit/railsignal/pkg/network"
	"github.com/railkit/railsignal/pkg/pipeline"
	"github.com/railkit/railsignal/pkg/railml"
)

// =============================================================================
// Request / Response Types
// =============================================================================

// generateRequest is the body for POST /api/generate. The station layout
// uses the same wire format as the JSON interchange files.
type generateRequest struct {
	Name  string           `json:"name"`
	Nodes []stationio.Node `json:"nodes"`
	Edges []stationio.Edge `json:"edges"`

	SignalDistance float64  `json:"signal_distance,omitempty"`
	MaxPathEdges   int      `json:"max_path_edges,omitempty"`
	Formats        []string `json:"formats,omitempty"`
	EdgeLabels     bool     `json:"edge_labels,omitempty"`
}

// zoneDetail describes one conflict zone in a response.
type zoneDetail struct {
	ID         string   `json:"id"`
	Approaches []string `json:"approaches"`
}

// signalDetail describes one placed signal in a response.
type signalDetail struct {
	ID           string  `json:"id"`
	ProtectsZone string  `json:"protects_cdl_zone"`
	ApproachFrom string  `json:"approach_from"`
	Distance     float64 `json:"distance_to_cdl"`
	Offset       float64 `json:"offset_from_placement"`
}

// analysisResponse is the body returned by both analysis endpoints.
// SVG and PNG artifacts are base64 data URIs ready for an <img> tag;
// DOT and JSON artifacts are included as plain text.
type analysisResponse struct {
	Station     string             `json:"station"`
	NetworkHash string             `json:"network_hash"`
	Stats       network.Statistics `json:"stats"`
	Zones       []zoneDetail       `json:"cdl_zones"`
	Signals     []signalDetail     `json:"signals"`
	Artifacts   map[string]string  `json:"artifacts"`
	Cached      bool               `json:"cached"`
}

// =============================================================================
// Handlers
// =============================================================================

// handleHealth reports liveness and build information.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// handleGenerate analyzes a station submitted as JSON.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}
	if len(req.Nodes) == 0 {
		s.respondError(w, r, apperrors.New(apperrors.ErrCodeInvalidInput, "station has no nodes"))
		return
	}

	net, err := stationio.ToNetwork(stationio.Station{
		Name:  req.Name,
		Nodes: req.Nodes,
		Edges: req.Edges,
	})
	if err != nil {
		s.respondError(w, r, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid station"))
		return
	}

	s.runAnalysis(w, r, net, pipeline.Options{
		SignalDistance: req.SignalDistance,
		MaxPathEdges:   req.MaxPathEdges,
		Formats:        req.Formats,
		EdgeLabels:     req.EdgeLabels,
	})
}

// handleUpload analyzes an uploaded railML document. The multipart form
// carries the document in the "file" field; analysis options arrive as
// plain form values.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.MaxUploadBytes); err != nil {
		s.respondError(w, r, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid multipart form"))
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		s.respondError(w, r, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "missing file field"))
		return
	}
	defer file.Close()

	net, err := railml.Import(file)
	if err != nil {
		s.respondError(w, r, apperrors.Wrap(apperrors.ErrCodeInvalidRailML, err, "failed to parse railML document"))
		return
	}

	opts := pipeline.Options{
		EdgeLabels: r.FormValue("edge_labels") == "true",
	}
	if v := r.FormValue("signal_distance"); v != "" {
		distance, err := strconv.ParseFloat(v, 64)
		if err != nil {
			s.respondError(w, r, apperrors.New(apperrors.ErrCodeInvalidDistance, "invalid signal_distance: %q", v))
			return
		}
		opts.SignalDistance = distance
	}
	if v := r.FormValue("formats"); v != "" {
		opts.Formats = strings.Split(v, ",")
	}

	s.runAnalysis(w, r, net, opts)
}

// runAnalysis validates options, executes the pipeline, and writes the
// analysis response.
func (s *Server) runAnalysis(w http.ResponseWriter, r *http.Request, net *network.Network, opts pipeline.Options) {
	if opts.SignalDistance != 0 {
		if err := apperrors.ValidateSignalDistance(opts.SignalDistance); err != nil {
			s.respondError(w, r, err)
			return
		}
	}
	for _, format := range opts.Formats {
		if err := apperrors.ValidateFormat(format); err != nil {
			s.respondError(w, r, err)
			return
		}
	}
	opts.Logger = s.logger

	result, err := s.runner.Execute(r.Context(), net, opts)
	if err != nil {
		s.respondError(w, r, apperrors.Wrap(apperrors.ErrCodeInternal, err, "analysis failed"))
		return
	}

	s.respondJSON(w, http.StatusOK, buildResponse(result))
}

// buildResponse converts a pipeline result into the API response shape.
func buildResponse(result *pipeline.Result) analysisResponse {
	resp := analysisResponse{
		Station:     result.Network.Name(),
		NetworkHash: result.NetworkHash,
		Stats:       result.Stats,
		Zones:       make([]zoneDetail, 0, len(result.Zones)),
		Signals:     make([]signalDetail, 0, len(result.Signals)),
		Artifacts:   make(map[string]string, len(result.Artifacts)),
		Cached:      result.CacheInfo.AnalyzeHit && result.CacheInfo.RenderHit,
	}

	for _, id := range result.Zones {
		node, ok := result.Network.Node(id)
		if !ok || node.Conflict == nil {
			continue
		}
		resp.Zones = append(resp.Zones, zoneDetail{
			ID:         id,
			Approaches: node.Conflict.Approaches,
		})
	}

	for _, id := range result.Signals {
		node, ok := result.Network.Node(id)
		if !ok || node.Signal == nil {
			continue
		}
		resp.Signals = append(resp.Signals, signalDetail{
			ID:           id,
			ProtectsZone: node.Signal.ProtectsZone,
			ApproachFrom: node.Signal.ApproachFrom,
			Distance:     node.Signal.Distance,
			Offset:       node.Signal.Offset,
		})
	}

	for format, data := range result.Artifacts {
		switch format {
		case pipeline.FormatSVG:
			resp.Artifacts[format] = "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(data)
		case pipeline.FormatPNG:
			resp.Artifacts[format] = "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)
		default:
			resp.Artifacts[format] = string(data)
		}
	}

	return resp
}
