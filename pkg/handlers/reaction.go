package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/momo66-22/telegram-feed-pages/internal/reaction"
	"github.com/sirupsen/logrus"
)

type ToggleRequest struct {
	PostID string `json:"post_id"`
	UserID string `json:"user_id"`
	Emoji  string `json:"emoji"`
}

type ReactionHandler struct {
	ReactionRepo reaction.ReactionRepo
	Logger       *logrus.Entry
}

func NewReactionHandler(rr reaction.ReactionRepo, log *logrus.Entry) *ReactionHandler {
	return &ReactionHandler{
		ReactionRepo: rr,
		Logger:       log,
	}
}

// Get is a pure read: a post with no prior state answers with all-zero
// counts and an empty mine list, never an error.
func (h *ReactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	postID := strings.TrimSpace(r.URL.Query().Get("post_id"))
	userID := strings.TrimSpace(r.URL.Query().Get("user_id"))

	if postID == "" || userID == "" {
		sendError(w, r, h.Logger, http.StatusBadRequest, "missing post_id or user_id")
		return
	}

	state, err := h.ReactionRepo.Read(postID, userID)
	if err != nil {
		h.Logger.WithFields(logrus.Fields{
			"method":      r.Method,
			"remote_addr": r.RemoteAddr,
			"url":         r.URL.Path,
			"status_code": http.StatusInternalServerError,
		}).Error("unable read reactions from repository: ", err)

		http.Error(w, "unable read reactions", http.StatusInternalServerError)
		return
	}

	sendJSON(w, r, h.Logger, http.StatusOK, state)
}

// Toggle flips one (user, emoji) membership bit and moves the matching
// counter by one, then answers with the full fresh state for the post.
func (h *ReactionHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	defer func(r *http.Request, logger *logrus.Entry) {
		err := r.Body.Close()
		if err != nil {
			logger.WithFields(logrus.Fields{
				"method":      r.Method,
				"remote_addr": r.RemoteAddr,
				"url":         r.URL.Path,
			}).Error("unable request`s body close at toggle: ", err)
		}
	}(r, h.Logger)

	req := &ToggleRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		sendError(w, r, h.Logger, http.StatusBadRequest, "invalid json")
		return
	}

	postID := strings.TrimSpace(req.PostID)
	userID := strings.TrimSpace(req.UserID)
	emoji := strings.TrimSpace(req.Emoji)

	if postID == "" || userID == "" || emoji == "" {
		sendError(w, r, h.Logger, http.StatusBadRequest, "missing post_id / user_id / emoji")
		return
	}

	state, err := h.ReactionRepo.Toggle(postID, userID, emoji)
	if err == reaction.ErrUnknownKind {
		sendError(w, r, h.Logger, http.StatusBadRequest, "emoji not allowed")
		return
	}
	if err != nil {
		h.Logger.WithFields(logrus.Fields{
			"method":      r.Method,
			"remote_addr": r.RemoteAddr,
			"url":         r.URL.Path,
			"status_code": http.StatusInternalServerError,
		}).Error("unable toggle reaction: ", err)

		http.Error(w, "unable toggle reaction", http.StatusInternalServerError)
		return
	}

	sendJSON(w, r, h.Logger, http.StatusOK, state)
}
