// Package server exposes the catalog and calculator over a JSON HTTP API,
// plus estimate downloads in PDF and XLSX form.
package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/smirnovd/stroycalc/internal/catalog"
	"github.com/smirnovd/stroycalc/internal/export"
	"github.com/smirnovd/stroycalc/internal/model"
)

// Server holds the resolved catalog and serves calculation requests.
type Server struct {
	materials []catalog.Material
	baseURL   string // public URL prefix for product links on estimates
}

// New creates a server over an already resolved catalog.
func New(materials []catalog.Material, baseURL string) *Server {
	return &Server{materials: materials, baseURL: strings.TrimSuffix(baseURL, "/")}
}

// Router builds the chi router with all API routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api/categories", func(r chi.Router) {
		r.Get("/", s.handleListCategories)
		r.Get("/{slug}", s.handleGetCategory)
		r.Post("/{slug}/calculate", s.handleCalculate)
		r.Post("/{slug}/estimate.pdf", s.handleEstimatePDF)
		r.Post("/{slug}/estimate.xlsx", s.handleEstimateXLSX)
	})

	return r
}

// categorySummary is the list-view payload: enough to render a catalog tile
// without shipping every product row.
type categorySummary struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Products    int    `json:"products"`
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	summaries := make([]categorySummary, 0, len(s.materials))
	for _, m := range s.materials {
		summaries = append(summaries, categorySummary{
			Slug:        m.Slug,
			Name:        m.Name,
			Description: m.Description,
			Icon:        m.Icon,
			Products:    len(m.Products),
		})
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	m := s.material(w, r)
	if m == nil {
		return
	}
	writeJSON(w, http.StatusOK, m.Category)
}

// calculateRequest is the body of calculate and estimate requests. Absent
// input values fall back to the category's field defaults.
type calculateRequest struct {
	ProductID string             `json:"product_id"`
	Size      string             `json:"size,omitempty"`
	Values    map[string]float64 `json:"values"`
}

// calculateResponse pairs the result with the product actually priced, so
// clients see the resolved size variant.
type calculateResponse struct {
	Result  model.Result  `json:"result"`
	Product model.Product `json:"product"`
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	m, req, ok := s.parseCalculate(w, r)
	if !ok {
		return
	}

	result, product, err := m.CalculateProduct(req.Values, req.ProductID, req.Size)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, calculateResponse{Result: result, Product: product})
}

func (s *Server) handleEstimatePDF(w http.ResponseWriter, r *http.Request) {
	m, req, ok := s.parseCalculate(w, r)
	if !ok {
		return
	}

	result, product, err := m.CalculateProduct(req.Values, req.ProductID, req.Size)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	est := s.buildEstimate(m, product, result, req.Values)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="estimate.pdf"`)
	if err := export.WritePDF(w, est); err != nil {
		// Headers are already out; all we can do is log.
		log.Printf("warning: pdf export failed: %v", err)
	}
}

func (s *Server) handleEstimateXLSX(w http.ResponseWriter, r *http.Request) {
	m, req, ok := s.parseCalculate(w, r)
	if !ok {
		return
	}

	result, product, err := m.CalculateProduct(req.Values, req.ProductID, req.Size)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	est := s.buildEstimate(m, product, result, req.Values)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="estimate.xlsx"`)
	if err := export.WriteXLSX(w, est); err != nil {
		log.Printf("warning: xlsx export failed: %v", err)
	}
}

// material resolves the {slug} URL parameter, writing a 404 when unknown.
func (s *Server) material(w http.ResponseWriter, r *http.Request) *catalog.Material {
	slug := chi.URLParam(r, "slug")
	m := catalog.Find(s.materials, slug)
	if m == nil {
		writeError(w, http.StatusNotFound, "unknown category: "+slug)
	}
	return m
}

// parseCalculate reads the request body and merges absent inputs with the
// category defaults.
func (s *Server) parseCalculate(w http.ResponseWriter, r *http.Request) (*catalog.Material, calculateRequest, bool) {
	m := s.material(w, r)
	if m == nil {
		return nil, calculateRequest{}, false
	}

	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return nil, calculateRequest{}, false
	}
	if req.ProductID == "" {
		writeError(w, http.StatusBadRequest, "product_id is required")
		return nil, calculateRequest{}, false
	}

	values := m.DefaultValues()
	for k, v := range req.Values {
		values[k] = v
	}
	req.Values = values

	return m, req, true
}

// buildEstimate assembles the export payload from a finished calculation.
func (s *Server) buildEstimate(m *catalog.Material, p model.Product, result model.Result, values map[string]float64) export.Estimate {
	est := export.Estimate{
		CategoryName:    m.Name,
		ProductName:     p.Name,
		Amount:          result.Amount,
		UnitLabel:       result.Unit,
		TotalWeight:     result.TotalWeight,
		Price:           result.EstimatedPrice,
		Details:         result.Details,
		Recommendations: result.Recommendations,
		GeneratedAt:     time.Now(),
	}

	if s.baseURL != "" {
		urlID := p.URLID
		if urlID == "" {
			urlID = p.ID
		}
		est.ProductURL = s.baseURL + "/p/" + urlID
	}

	// Inputs in authored field order, not map order.
	for _, f := range m.Inputs {
		v, ok := values[f.Key]
		if !ok {
			continue
		}
		label := f.Label
		if f.Unit != "" {
			label += ", " + f.Unit
		}
		est.Inputs = append(est.Inputs, export.InputLine{
			Label: label,
			Value: strconv.FormatFloat(v, 'f', -1, 64),
		})
	}

	return est
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("warning: writing response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
