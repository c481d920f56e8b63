package app

import (
	"userboard/internal/model"
	"userboard/internal/pkg/objectid"
)

// UserView is the boundary-safe form of a stored user: identifiers are
// rendered as hex strings and the password digest is never included.
// Absence is always signalled by a not-found error, never by an empty view.
type UserView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	LinkedID string `json:"linked_id,omitempty"`
}

type PostView struct {
	ID      string `json:"id"`
	UserID  string `json:"user_id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

func NewUserView(user *model.User) UserView {
	return UserView{
		ID:       objectid.Render(user.ID),
		Username: user.Username,
		Email:    user.Email,
		LinkedID: user.LinkedID,
	}
}

func NewPostView(post *model.Post) PostView {
	return PostView{
		ID:      objectid.Render(post.ID),
		UserID:  objectid.Render(post.UserID),
		Title:   post.Title,
		Content: post.Content,
	}
}

// NewPostViews always returns a non-nil slice so an empty result serializes
// as [] rather than null.
func NewPostViews(posts []*model.Post) []PostView {
	views := make([]PostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, NewPostView(post))
	}
	return views
}
