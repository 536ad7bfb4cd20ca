package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/wayfarer-dev/wayfarer/internal/domain"
	"github.com/wayfarer-dev/wayfarer/internal/repository"
)

// planRequest is the JSON body of POST /api/trips/plan. Dates arrive as
// YYYY-MM-DD strings.
type planRequest struct {
	Destination string             `json:"destination"`
	StartDate   string             `json:"start_date"`
	EndDate     string             `json:"end_date"`
	Budget      float64            `json:"budget"`
	Travelers   int                `json:"travelers"`
	Preferences domain.Preferences `json:"preferences"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, format string, args ...interface{}) {
	writeJSON(w, status, errorResponse{Error: fmt.Sprintf(format, args...)})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handlePlanTrip(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body planRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: %v", err)
		return
	}

	start, err := time.Parse(domain.DateLayout, body.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid start_date: %v", err)
		return
	}
	end, err := time.Parse(domain.DateLayout, body.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid end_date: %v", err)
		return
	}

	req := domain.TripRequest{
		Destination: body.Destination,
		StartDate:   start,
		EndDate:     end,
		Budget:      body.Budget,
		Travelers:   body.Travelers,
		Preferences: body.Preferences,
	}

	plan, err := s.orchestrator.PlanTrip(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "%v", err)
		return
	}

	if s.trips != nil {
		// Storage trouble must not cost the caller their finished plan.
		if err := s.trips.Save(r.Context(), plan); err != nil {
			writeJSON(w, http.StatusOK, plan)
			return
		}
	}
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handleListTrips(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	trips, err := s.trips.List(r.Context(), r.URL.Query().Get("destination"), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "listing trips: %v", err)
		return
	}
	if trips == nil {
		trips = []repository.TripSummary{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"trips": trips})
}

func (s *Server) handleGetTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	plan, err := s.trips.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "trip not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "loading trip: %v", err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handleDeleteTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	err := s.trips.Delete(r.Context(), ps.ByName("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "trip not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "deleting trip: %v", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleTripPDF(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	plan, err := s.trips.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "trip not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "loading trip: %v", err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="trip-%s.pdf"`, plan.ID))
	if err := WriteTripPDF(w, plan); err != nil {
		writeError(w, http.StatusInternalServerError, "rendering pdf: %v", err)
	}
}

func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()

	days, err := strconv.Atoi(q.Get("days"))
	if err != nil || days < 1 {
		writeError(w, http.StatusBadRequest, "days must be a positive integer")
		return
	}
	travelers, err := strconv.Atoi(q.Get("travelers"))
	if err != nil || travelers < 1 {
		writeError(w, http.StatusBadRequest, "travelers must be a positive integer")
		return
	}
	style := domain.TravelStyle(q.Get("style"))
	if style == "" {
		style = domain.StyleMidRange
	}

	writeJSON(w, http.StatusOK, s.estimator.EstimateBudget(days, travelers, style))
}
