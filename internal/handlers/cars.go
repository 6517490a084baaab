package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"time"

	"go.uber.org/zap"

	"flyweight-registry/internal/car"
	"flyweight-registry/internal/catalog"
	"flyweight-registry/pkg/logging/logging"
)

// CarHandler holds dependencies for the /v1 car endpoints.
type CarHandler struct {
	Registry *car.Registry
	Catalog  catalog.Catalog

	now func() time.Time
}

func NewCarHandler(registry *car.Registry, cat catalog.Catalog) *CarHandler {
	return &CarHandler{
		Registry: registry,
		Catalog:  cat,
		now:      time.Now,
	}
}

// RenderRequest carries the intrinsic attributes of a car model plus the
// registration it is shown with.
type RenderRequest struct {
	Model              string `json:"model"`
	Brand              string `json:"brand"`
	EngineType         string `json:"engine_type"`
	RegistrationNumber string `json:"registration_number"`
	Owner              string `json:"owner"`
}

type RenderResponse struct {
	Key     string `json:"key"`
	Reused  bool   `json:"reused"`
	Details string `json:"details"`
}

type FlyweightView struct {
	Key        string `json:"key"`
	Model      string `json:"model"`
	Brand      string `json:"brand"`
	EngineType string `json:"engine_type"`
}

type FlyweightsResponse struct {
	Count   int             `json:"count"`
	Entries []FlyweightView `json:"entries"`
}

type CatalogResponse struct {
	Count int            `json:"count"`
	Items []catalog.Item `json:"items"`
}

// Render handles POST /v1/cars/render.
func (h *CarHandler) Render(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.L(ctx)

	var req RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request_too_large")
			return
		}
		logger.Warn("invalid request", zap.Error(err))
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	key := car.NewKey(req.Model, req.Brand, req.EngineType)
	if err := key.Validate(); err != nil {
		// rejected before the registry is touched
		logger.Warn("invalid attributes", zap.Error(err))
		writeError(w, http.StatusBadRequest, "invalid_attributes")
		return
	}

	model, created := h.Registry.AcquireKey(key)

	// Recorded on every acquire so a failed record is repaired by the next
	// hit; the catalog keeps the first item per key.
	if h.Catalog != nil {
		if err := h.Catalog.Record(ctx, catalog.ItemFromModel(model, h.now())); err != nil {
			logger.Warn("catalog_record_error", zap.Error(err))
		}
	}

	details := car.Render(model, car.Registration{
		Number: req.RegistrationNumber,
		Owner:  req.Owner,
	})

	logger.Info("car_rendered",
		zap.String("key", key.String()),
		zap.Bool("reused", !created),
		zap.String("registration_number", req.RegistrationNumber),
	)

	writeJSON(w, http.StatusOK, RenderResponse{
		Key:     key.String(),
		Reused:  !created,
		Details: details,
	})
}

// ListFlyweights handles GET /v1/flyweights.
func (h *CarHandler) ListFlyweights(w http.ResponseWriter, r *http.Request) {
	models := h.Registry.Models()

	views := make([]FlyweightView, 0, len(models))
	for _, m := range models {
		views = append(views, FlyweightView{
			Key:        m.Key().String(),
			Model:      m.Name(),
			Brand:      m.Brand(),
			EngineType: m.EngineType(),
		})
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Key < views[j].Key })

	writeJSON(w, http.StatusOK, FlyweightsResponse{Count: len(views), Entries: views})
}

// ListCatalog handles GET /v1/catalog.
func (h *CarHandler) ListCatalog(w http.ResponseWriter, r *http.Request) {
	if h.Catalog == nil {
		writeJSON(w, http.StatusOK, CatalogResponse{Items: []catalog.Item{}})
		return
	}

	items, err := h.Catalog.List(r.Context())
	if err != nil {
		logging.L(r.Context()).Warn("catalog_list_error", zap.Error(err))
		writeError(w, http.StatusBadGateway, "catalog_unavailable")
		return
	}

	writeJSON(w, http.StatusOK, CatalogResponse{Count: len(items), Items: items})
}

type ReadyResponse struct {
	Flyweights   int `json:"flyweights"`
	CatalogItems int `json:"catalog_items"`
}

// Ready handles GET /readyz. It reports not ready while the catalog backend
// cannot be counted.
func (h *CarHandler) Ready(w http.ResponseWriter, r *http.Request) {
	resp := ReadyResponse{Flyweights: h.Registry.Len()}

	if h.Catalog != nil {
		n, err := h.Catalog.Count(r.Context())
		if err != nil {
			logging.L(r.Context()).Warn("catalog_count_error", zap.Error(err))
			writeError(w, http.StatusServiceUnavailable, "catalog_unavailable")
			return
		}
		resp.CatalogItems = n
	}

	writeJSON(w, http.StatusOK, resp)
}

// writeJSON is a small helper to send JSON responses consistently.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
