package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/momo66-22/telegram-feed-pages/internal/view"
	"github.com/sirupsen/logrus"
)

type SeenRequest struct {
	PostID string `json:"post_id"`
	UserID string `json:"user_id"`
}

type ViewsResponse struct {
	Views int `json:"views"`
}

type SeenResponse struct {
	Views   int  `json:"views"`
	Counted bool `json:"counted"`
}

type ViewHandler struct {
	ViewRepo view.ViewRepo
	Logger   *logrus.Entry
}

func NewViewHandler(vr view.ViewRepo, log *logrus.Entry) *ViewHandler {
	return &ViewHandler{
		ViewRepo: vr,
		Logger:   log,
	}
}

func (h *ViewHandler) Get(w http.ResponseWriter, r *http.Request) {
	postID := strings.TrimSpace(r.URL.Query().Get("post_id"))
	if postID == "" {
		sendError(w, r, h.Logger, http.StatusBadRequest, "missing post_id")
		return
	}

	views, err := h.ViewRepo.Get(postID)
	if err != nil {
		h.Logger.WithFields(logrus.Fields{
			"method":      r.Method,
			"remote_addr": r.RemoteAddr,
			"url":         r.URL.Path,
			"status_code": http.StatusInternalServerError,
		}).Error("unable read views from repository: ", err)

		http.Error(w, "unable read views", http.StatusInternalServerError)
		return
	}

	sendJSON(w, r, h.Logger, http.StatusOK, ViewsResponse{Views: views})
}

// Seen counts a view at most once per user per TTL window.
func (h *ViewHandler) Seen(w http.ResponseWriter, r *http.Request) {
	defer func(r *http.Request, logger *logrus.Entry) {
		err := r.Body.Close()
		if err != nil {
			logger.WithFields(logrus.Fields{
				"method":      r.Method,
				"remote_addr": r.RemoteAddr,
				"url":         r.URL.Path,
			}).Error("unable request`s body close at seen: ", err)
		}
	}(r, h.Logger)

	req := &SeenRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		sendError(w, r, h.Logger, http.StatusBadRequest, "invalid json")
		return
	}

	postID := strings.TrimSpace(req.PostID)
	userID := strings.TrimSpace(req.UserID)
	if postID == "" || userID == "" {
		sendError(w, r, h.Logger, http.StatusBadRequest, "missing post_id or user_id")
		return
	}

	views, counted, err := h.ViewRepo.Seen(postID, userID)
	if err != nil {
		h.Logger.WithFields(logrus.Fields{
			"method":      r.Method,
			"remote_addr": r.RemoteAddr,
			"url":         r.URL.Path,
			"status_code": http.StatusInternalServerError,
		}).Error("unable mark view as seen: ", err)

		http.Error(w, "unable mark view", http.StatusInternalServerError)
		return
	}

	sendJSON(w, r, h.Logger, http.StatusOK, SeenResponse{Views: views, Counted: counted})
}
