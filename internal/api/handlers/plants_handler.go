package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/plant-tracker/server/internal/api/validation"
	"github.com/plant-tracker/server/internal/metrics"
	"github.com/plant-tracker/server/internal/models"
	"github.com/plant-tracker/server/internal/repository"
	"github.com/plant-tracker/server/pkg/logger"
)

// PlantsHandler serves the /plants routes. It holds no state besides the
// injected repository; every outcome of a request funnels into exactly one
// writeJSON or writeError call.
type PlantsHandler struct {
	repo repository.PlantRepository
}

func NewPlantsHandler(repo repository.PlantRepository) *PlantsHandler {
	return &PlantsHandler{repo: repo}
}

// List godoc
// @Summary      List all plants
// @Tags         plants
// @Produce      json
// @Success      200  {array}   models.Plant
// @Failure      500  {object}  types.ErrorBody
// @Router       /plants [get]
func (h *PlantsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	metrics.RecordPlantOperation("list")
	writeJSON(w, http.StatusOK, items)
}

// Get godoc
// @Summary      Get a plant by id
// @Tags         plants
// @Produce      json
// @Param        id   path      string  true  "Plant ID"
// @Success      200  {object}  models.Plant
// @Failure      404  {object}  types.ErrorBody
// @Failure      500  {object}  types.ErrorBody
// @Router       /plants/{id} [get]
func (h *PlantsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var p models.Plant
	if err := h.repo.GetByID(r.Context(), id, &p); err != nil {
		writeError(w, r, err)
		return
	}
	metrics.RecordPlantOperation("get")
	writeJSON(w, http.StatusOK, p)
}

// Create godoc
// @Summary      Create a plant
// @Tags         plants
// @Accept       json
// @Produce      json
// @Param        plant  body      models.InsertPlant  true  "Plant to create"
// @Success      201    {object}  models.Plant
// @Failure      400    {object}  types.ErrorBody
// @Failure      500    {object}  types.ErrorBody
// @Router       /plants [post]
func (h *PlantsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.InsertPlant
	if issues := validation.DecodeBody(r, &in); issues != nil {
		writeValidationError(w, r, issues)
		return
	}

	p := in.ToPlant()
	if err := h.repo.Create(r.Context(), &p); err != nil {
		writeError(w, r, err)
		return
	}

	logger.L().Info("created plant",
		zap.String("event", "db_transaction"),
		zap.String("table", "plants"),
		zap.String("id", p.ID),
		zap.Any("record", p),
	)
	metrics.RecordPlantOperation("create")
	writeJSON(w, http.StatusCreated, p)
}

// Update godoc
// @Summary      Update a plant
// @Description  Partial update; absent fields keep their stored values.
// @Tags         plants
// @Accept       json
// @Produce      json
// @Param        id     path      string              true  "Plant ID"
// @Param        plant  body      models.UpdatePlant  true  "Fields to update"
// @Success      200    {object}  models.Plant
// @Failure      400    {object}  types.ErrorBody
// @Failure      404    {object}  types.ErrorBody
// @Failure      500    {object}  types.ErrorBody
// @Router       /plants/{id} [put]
func (h *PlantsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var in models.UpdatePlant
	if issues := validation.DecodeBody(r, &in); issues != nil {
		writeValidationError(w, r, issues)
		return
	}

	var p models.Plant
	if err := h.repo.GetByID(r.Context(), id, &p); err != nil {
		writeError(w, r, err)
		return
	}
	in.ApplyTo(&p)
	if err := h.repo.Save(r.Context(), &p); err != nil {
		writeError(w, r, err)
		return
	}

	logger.L().Info("updated plant",
		zap.String("event", "db_transaction"),
		zap.String("table", "plants"),
		zap.String("id", p.ID),
		zap.Any("record", p),
	)
	metrics.RecordPlantOperation("update")
	writeJSON(w, http.StatusOK, p)
}

// Delete godoc
// @Summary      Delete a plant
// @Tags         plants
// @Param        id  path  string  true  "Plant ID"
// @Success      204  "deleted"
// @Failure      404  {object}  types.ErrorBody
// @Failure      500  {object}  types.ErrorBody
// @Router       /plants/{id} [delete]
func (h *PlantsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.repo.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	logger.L().Info("deleted plant",
		zap.String("event", "db_transaction"),
		zap.String("table", "plants"),
		zap.String("id", id),
	)
	metrics.RecordPlantOperation("delete")
	w.WriteHeader(http.StatusNoContent)
}
