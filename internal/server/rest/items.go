package rest

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"itemvault/internal/server/models"
)

func (s *Server) createItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params, user *models.User) {
	var req createItemRequest
	if !readJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "name is required"})
		return
	}

	item, err := s.items.Create(r.Context(), user.ID, req.Name, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toItemResponse(item))
}

func (s *Server) deleteItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params, user *models.User) {
	id, ok := pathID(w, ps)
	if !ok {
		return
	}

	if err := s.items.Delete(r.Context(), user.ID, id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) getItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := pathID(w, ps)
	if !ok {
		return
	}

	item, err := s.items.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(item))
}

func (s *Server) listItems(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	items, err := s.items.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemWithOwnerResponses(items))
}
