package handlers

import (
	"net/http"
	"strings"

	"github.com/momo66-22/telegram-feed-pages/internal/feed"
	"github.com/sirupsen/logrus"
)

type FeedHandler struct {
	FeedRepo feed.FeedRepo
	Logger   *logrus.Entry
}

func NewFeedHandler(fr feed.FeedRepo, log *logrus.Entry) *FeedHandler {
	return &FeedHandler{
		FeedRepo: fr,
		Logger:   log,
	}
}

// GetList serves the prebuilt post list, newest first, optionally
// filtered by the g= group slug. "all" and an absent slug both mean
// the full feed.
func (h *FeedHandler) GetList(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimSpace(r.URL.Query().Get("g"))

	var posts []*feed.Post
	var err error
	if slug == "" || strings.EqualFold(slug, "all") {
		posts, err = h.FeedRepo.GetAll()
	} else {
		posts, err = h.FeedRepo.GetByGroup(slug)
	}
	if err != nil {
		h.Logger.WithFields(logrus.Fields{
			"method":      r.Method,
			"remote_addr": r.RemoteAddr,
			"url":         r.URL.Path,
			"status_code": http.StatusInternalServerError,
		}).Error("unable get posts from repository: ", err)

		http.Error(w, "unable get posts", http.StatusInternalServerError)
		return
	}

	sendJSON(w, r, h.Logger, http.StatusOK, posts)
}
