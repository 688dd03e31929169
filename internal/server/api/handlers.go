package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type greetRequest struct {
	Name string `json:"name"`
}

type credentialsRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password"`
}

type addUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type updateUserRequest struct {
	ID    int64  `json:"id" validate:"required,gt=0"`
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type idRequest struct {
	ID int64 `json:"id" validate:"required,gt=0"`
}

type addMessageRequest struct {
	AuthorEmail string `json:"master_email_address" validate:"required,email"`
	Department  string `json:"department" validate:"required"`
	Text        string `json:"text" validate:"required"`
	ContentType string `json:"content_type" validate:"required"`
}

// decode reads a JSON body into dst and validates it. On failure it writes
// a 400 reply and returns false.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return false
	}
	return true
}

func (s *Server) handleGreet(w http.ResponseWriter, r *http.Request) {
	var req greetRequest
	if !s.decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, s.dispatcher.Greet(req.Name))
}

func (s *Server) handleGetConfig(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.dispatcher.GetConfig())
}

func (s *Server) handleRegisterUser(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !s.decode(w, r, &req) {
		return
	}
	ok, err := s.dispatcher.RegisterUser(r.Context(), req.Email, req.Password)
	if err != nil {
		writeCommandError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ok)
}

func (s *Server) handleCheckLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !s.decode(w, r, &req) {
		return
	}
	ok, err := s.dispatcher.CheckLogin(r.Context(), req.Email, req.Password)
	if err != nil {
		writeCommandError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ok)
}

func (s *Server) handleGetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.dispatcher.GetUsers(r.Context())
	if err != nil {
		writeCommandError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (s *Server) handleAddUser(w http.ResponseWriter, r *http.Request) {
	var req addUserRequest
	if !s.decode(w, r, &req) {
		return
	}
	user, err := s.dispatcher.AddUser(r.Context(), req.Name, req.Email)
	if err != nil {
		writeCommandError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if !s.decode(w, r, &req) {
		return
	}
	user, err := s.dispatcher.UpdateUser(r.Context(), req.ID, req.Name, req.Email)
	if err != nil {
		writeCommandError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	var req idRequest
	if !s.decode(w, r, &req) {
		return
	}
	ok, err := s.dispatcher.DeleteUser(r.Context(), req.ID)
	if err != nil {
		writeCommandError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ok)
}

func (s *Server) handleGetMessages(w http.ResponseWriter, r *http.Request) {
	msgs, err := s.dispatcher.GetMessages(r.Context())
	if err != nil {
		writeCommandError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

func (s *Server) handleAddMessage(w http.ResponseWriter, r *http.Request) {
	var req addMessageRequest
	if !s.decode(w, r, &req) {
		return
	}
	msg, err := s.dispatcher.AddMessage(r.Context(), req.AuthorEmail, req.Department, req.Text, req.ContentType)
	if err != nil {
		writeCommandError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

func (s *Server) handleDeleteMessage(w http.ResponseWriter, r *http.Request) {
	var req idRequest
	if !s.decode(w, r, &req) {
		return
	}
	ok, err := s.dispatcher.DeleteMessage(r.Context(), req.ID)
	if err != nil {
		writeCommandError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ok)
}
