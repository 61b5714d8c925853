package view

import (
	"errors"
)

var (
	ErrEmptyPostID = errors.New("post id is empty")
	ErrEmptyUserID = errors.New("user id is empty")
)

type ViewRepo interface {
	Get(postID string) (views int, err error)
	Seen(postID string, userID string) (views int, counted bool, err error)
}
