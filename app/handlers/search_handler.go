package handlers

import (
	"log"
	"net/http"

	"github.com/Rakhulsr/go-joias/app/helpers"
	"github.com/Rakhulsr/go-joias/app/services"
	"github.com/Rakhulsr/go-joias/app/utils/apperror"
	"github.com/Rakhulsr/go-joias/app/utils/sessions"
	"github.com/unrolled/render"
)

type SearchHandler struct {
	suggestions *services.SuggestionService
	history     sessions.HistoryStore
	render      *render.Render
}

func NewSearchHandler(suggestions *services.SuggestionService, history sessions.HistoryStore, r *render.Render) *SearchHandler {
	return &SearchHandler{suggestions, history, r}
}

type suggestionsResponse struct {
	Suggestions []services.Suggestion `json:"suggestions"`
}

type historyResponse struct {
	History []string `json:"history"`
}

type historyRequest struct {
	Term string `json:"term" validate:"required,max=100"`
}

var validate = helpers.NewValidator()

// Suggestions serves GET /api/search/suggestions. It always answers 200.
func (h *SearchHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	suggestions := h.suggestions.Suggest(r.Context(), r.URL.Query().Get("q"))
	h.render.JSON(w, http.StatusOK, suggestionsResponse{Suggestions: suggestions})
}

func (h *SearchHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	h.render.JSON(w, http.StatusOK, historyResponse{History: h.history.GetHistory(r)})
}

func (h *SearchHandler) AppendHistory(w http.ResponseWriter, r *http.Request) {
	var req historyRequest
	if err := helpers.DecodeJSON(w, r, &req); err != nil {
		helpers.WriteError(h.render, w, r, err)
		return
	}
	if err := helpers.ValidateStruct(validate, req); err != nil {
		helpers.WriteError(h.render, w, r, err)
		return
	}

	history, err := h.history.AppendHistory(w, r, req.Term)
	if err != nil {
		helpers.WriteError(h.render, w, r, apperror.Internal(err))
		return
	}
	h.render.JSON(w, http.StatusOK, historyResponse{History: history})
}

func (h *SearchHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.history.ClearHistory(w, r); err != nil {
		log.Printf("ClearHistory: failed to save session: %v", err)
		helpers.WriteError(h.render, w, r, apperror.Internal(err))
		return
	}
	h.render.JSON(w, http.StatusOK, historyResponse{History: []string{}})
}
