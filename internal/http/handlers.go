package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"ggmoney/internal/core"
	"ggmoney/internal/store"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// stateResponse mirrors the persisted state: the raw inputs the view
// renders forms from, as opposed to the derived overview.
type stateResponse struct {
	Expenses []core.Expense `json:"expenses"`
	Budget   string         `json:"budget"`
	Savings  string         `json:"savings"`
	Goal     string         `json:"goal"`
	Period   core.Period    `json:"period"`
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	snap := s.store.Snapshot()
	writeJSON(w, http.StatusOK, stateResponse{
		Expenses: snap.Expenses,
		Budget:   snap.Budget.String(),
		Savings:  snap.Savings.String(),
		Goal:     snap.Goal.String(),
		Period:   snap.Period,
	})
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	overview := s.store.Snapshot().OverviewAt(s.now())
	writeJSON(w, http.StatusOK, overview)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, core.Categories())
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req expenseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	draft := store.Draft{
		ID:       req.ID,
		Amount:   rawAmount(req.Amount),
		Category: core.Category(req.Category),
		Note:     req.Note,
	}
	if req.Date != "" {
		date, err := core.ParseDate(req.Date)
		if err != nil {
			slog.ErrorContext(r.Context(), "Invalid expense date",
				"date", req.Date, "error", err)
			writeError(w, http.StatusUnprocessableEntity, "invalid date")
			return
		}
		draft.Date = date
	}

	added := s.store.AddExpense(r.Context(), draft)
	writeJSON(w, http.StatusCreated, added)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req struct {
		ID int64 `json:"id"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	// Unknown ids are silently ignored; the UI only holds stale
	// references, never wrong ones.
	s.store.DeleteExpense(r.Context(), req.ID)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleEditExpense(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req editRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	patch := store.Patch{
		Amount: rawAmount(req.Amount),
		Note:   req.Note,
	}
	if req.Category != nil {
		cat := core.Category(*req.Category)
		patch.Category = &cat
	}
	if req.Date != nil {
		date, err := core.ParseDate(*req.Date)
		if err != nil {
			slog.ErrorContext(r.Context(), "Invalid expense date",
				"date", *req.Date, "error", err)
			writeError(w, http.StatusUnprocessableEntity, "invalid date")
			return
		}
		patch.Date = &date
	}

	s.store.EditExpense(r.Context(), req.ID, patch)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetBudget(w http.ResponseWriter, r *http.Request) {
	s.handleScalar(w, r, s.store.SetBudget)
}

func (s *Server) handleSetSavings(w http.ResponseWriter, r *http.Request) {
	s.handleScalar(w, r, s.store.SetSavings)
}

func (s *Server) handleAddToSavings(w http.ResponseWriter, r *http.Request) {
	s.handleScalar(w, r, s.store.AddToSavings)
}

func (s *Server) handleSetGoal(w http.ResponseWriter, r *http.Request) {
	s.handleScalar(w, r, s.store.SetGoal)
}

func (s *Server) handleResetSavings(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	s.store.ResetSavings(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetPeriod(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req struct {
		Value string `json:"value"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	s.store.SetPeriod(r.Context(), req.Value)
	w.WriteHeader(http.StatusNoContent)
}

// handleScalar is the shared shape of the budget/savings/goal setters: one
// raw amount in, canonicalized by the store, nothing out.
func (s *Server) handleScalar(w http.ResponseWriter, r *http.Request, set func(ctx context.Context, raw core.RawAmount)) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req struct {
		Value json.RawMessage `json:"value"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	set(r.Context(), rawAmount(req.Value))
	w.WriteHeader(http.StatusNoContent)
}

type expenseRequest struct {
	ID       int64           `json:"id,omitempty"`
	Amount   json.RawMessage `json:"amount"`
	Category string          `json:"category"`
	Date     string          `json:"date"`
	Note     string          `json:"note"`
}

type editRequest struct {
	ID       int64           `json:"id"`
	Amount   json.RawMessage `json:"amount"`
	Category *string         `json:"category"`
	Date     *string         `json:"date"`
	Note     *string         `json:"note"`
}
