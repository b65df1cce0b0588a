package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"phi/internal/assistant"
	"phi/internal/domain"
)

type cvRequest struct {
	Action assistant.CVAction `json:"action"`
	Text   string             `json:"text"`
}

type textResult struct {
	Result string `json:"result"`
}

// ReviewCV runs the CV coach. One round trip to the assistant; a failure is
// a user-visible error, never an empty result.
func (a *App) ReviewCV(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.currentUser(w); !ok {
		return
	}
	var req cvRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.Text == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "text required")
		return
	}
	if !req.Action.Valid() {
		a.error(w, http.StatusBadRequest, "bad_request", "action must be Evaluate or Rewrite")
		return
	}
	result, err := a.Tools.ReviewCV(r.Context(), req.Action, req.Text, a.lang(r))
	if err != nil {
		a.assistantError(w, err)
		return
	}
	a.json(w, http.StatusOK, textResult{Result: result})
}

type sopRequest struct {
	Action assistant.CVAction `json:"action"`
	Text   string             `json:"text"`
	Style  string             `json:"style"`
}

// ReviewSOP runs the statement-of-purpose advisor.
func (a *App) ReviewSOP(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.currentUser(w); !ok {
		return
	}
	var req sopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.Text == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "text required")
		return
	}
	if !req.Action.Valid() {
		a.error(w, http.StatusBadRequest, "bad_request", "action must be Evaluate or Rewrite")
		return
	}
	if req.Style == "" {
		req.Style = "formal"
	}
	result, err := a.Tools.ReviewSOP(r.Context(), req.Action, req.Text, req.Style, a.lang(r))
	if err != nil {
		a.assistantError(w, err)
		return
	}
	a.json(w, http.StatusOK, textResult{Result: result})
}

// InterviewQuestion generates one behavioral question in the session locale.
func (a *App) InterviewQuestion(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.currentUser(w); !ok {
		return
	}
	question, err := a.Tools.InterviewQuestion(r.Context(), a.lang(r))
	if err != nil {
		a.assistantError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]string{"question": question})
}

type interviewFeedbackRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// InterviewFeedback critiques the user's answer.
func (a *App) InterviewFeedback(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.currentUser(w); !ok {
		return
	}
	var req interviewFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.Question == "" || req.Answer == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "question and answer required")
		return
	}
	feedback, err := a.Tools.InterviewFeedback(r.Context(), req.Question, req.Answer, a.lang(r))
	if err != nil {
		a.assistantError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]string{"feedback": feedback})
}

type certificateRequest struct {
	Name        string `json:"name"`
	Issuer      string `json:"issuer"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// DescribeCertificate generates the short and long certificate descriptions.
func (a *App) DescribeCertificate(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.currentUser(w); !ok {
		return
	}
	var req certificateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.Name == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "name required")
		return
	}
	desc, err := a.Tools.DescribeCertificate(r.Context(), req.Name, req.Issuer, req.Duration, req.Description, a.lang(r))
	if err != nil {
		a.assistantError(w, err)
		return
	}
	a.json(w, http.StatusOK, desc)
}

// assistantError maps proxy failures to the single opaque error surface the
// clients localize. Raw provider errors never leave the assistant package.
func (a *App) assistantError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrAssistantUnavailable) {
		a.error(w, http.StatusBadGateway, "assistant_unavailable", "assistant unavailable")
		return
	}
	a.error(w, http.StatusInternalServerError, "internal", "unexpected failure")
}
