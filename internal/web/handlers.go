package web

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Veraticus/grocery-list/internal/common"
	"github.com/Veraticus/grocery-list/internal/grocery"
)

// Item is the wire form of a grocery item.
type Item struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Category string `json:"category"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	items := s.manager.Items()
	s.mu.Unlock()

	out := make([]Item, 0, len(items))
	for _, item := range items {
		out = append(out, Item{Name: item.Name, Quantity: item.Quantity, Category: item.Category})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) {
	var req Item
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, common.InvalidArgument("invalid request body: %v", err))
		return
	}

	name := strings.TrimSpace(req.Name)
	s.mu.Lock()
	err := s.manager.AddItem(r.Context(), name, req.Quantity, req.Category)
	resp := Item{
		Name:     name,
		Quantity: s.manager.ItemQuantity(name),
		Category: s.manager.ItemCategory(name),
	}
	s.mu.Unlock()

	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleRemove(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	s.mu.Lock()
	err := s.manager.RemoveItem(r.Context(), name)
	s.mu.Unlock()

	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCategories(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	groups := s.manager.GroceryListByCategory()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, groups)
}

func (s *Server) handleInfo(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, grocery.SystemInfo(s.config.Now()))
}
