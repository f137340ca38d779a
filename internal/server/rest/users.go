package rest

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"itemvault/internal/common"
	"itemvault/internal/server/models"
)

func (s *Server) signUp(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req signUpRequest
	if !readJSON(w, r, &req) {
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "name, email and password are required"})
		return
	}

	user, err := s.users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(user))
}

func (s *Server) signIn(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req signInRequest
	if !readJSON(w, r, &req) {
		return
	}

	token, user, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	s.setSessionCookie(w, token)
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.clearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

func (s *Server) me(w http.ResponseWriter, r *http.Request, _ httprouter.Params, user *models.User) {
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func (s *Server) myItems(w http.ResponseWriter, r *http.Request, _ httprouter.Params, user *models.User) {
	items, err := s.items.ListOwned(r.Context(), user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponses(items))
}

func (s *Server) myItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params, user *models.User) {
	id, ok := pathID(w, ps)
	if !ok {
		return
	}

	item, err := s.items.GetOwned(r.Context(), user.ID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(item))
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := pathID(w, ps)
	if !ok {
		return
	}

	user, err := s.users.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserWithItemsResponse(user))
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	users, err := s.users.ListUsers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]userWithItemsResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserWithItemsResponse(u))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     common.AccessTokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.cookieTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     common.AccessTokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func pathID(w http.ResponseWriter, ps httprouter.Params) (int64, bool) {
	id, err := strconv.ParseInt(ps.ByName("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return 0, false
	}
	return id, true
}
