// Package http is the view-layer boundary: a thin JSON surface over the
// expense store and its aggregates. It holds no state of its own; every
// read recomputes the aggregates from a fresh snapshot.
package http

import (
	"net/http"
	"time"

	"ggmoney/internal/store"
)

type Server struct {
	http.Server
	store *store.Store

	// now is the reference instant for period filtering, replaceable in
	// tests.
	now func() time.Time
}

func NewServer(addr string, st *store.Store) *Server {
	s := &Server{
		store: st,
		now:   time.Now,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/api/state", s.handleState)
	mux.HandleFunc("/api/overview", s.handleOverview)
	mux.HandleFunc("/api/categories", s.handleCategories)
	mux.HandleFunc("/api/expenses", s.handleCreateExpense)
	mux.HandleFunc("/api/expenses/delete", s.handleDeleteExpense)
	mux.HandleFunc("/api/expenses/edit", s.handleEditExpense)
	mux.HandleFunc("/api/budget", s.handleSetBudget)
	mux.HandleFunc("/api/savings", s.handleSetSavings)
	mux.HandleFunc("/api/savings/add", s.handleAddToSavings)
	mux.HandleFunc("/api/savings/reset", s.handleResetSavings)
	mux.HandleFunc("/api/goal", s.handleSetGoal)
	mux.HandleFunc("/api/period", s.handleSetPeriod)

	s.Addr = addr
	s.Handler = mux
	return s
}
