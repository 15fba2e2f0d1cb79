package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"notely/internal/domain/entity"
	repo "notely/internal/domain/repository"
	"notely/internal/interface/middleware"
)

type PostHandler struct {
	Users  repo.UserRepository
	Posts  repo.PostRepository
	Logger *logrus.Logger
}

func NewPostHandler(users repo.UserRepository, posts repo.PostRepository, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Users: users, Posts: posts, Logger: logger}
}

func (h *PostHandler) logErr(c *gin.Context, msg string, err error) {
	if h.Logger == nil {
		return
	}
	h.Logger.WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"path":       c.Request.URL.Path,
	}).WithError(err).Error(msg)
}

// Profile GET /profile renders the user with posts resolved in reference
// order.
func (h *PostHandler) Profile(c *gin.Context) {
	id, _ := middleware.IdentityFrom(c)

	u, err := h.Users.GetByEmail(id.Email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.String(http.StatusNotFound, "User not found")
			return
		}
		h.logErr(c, "profile lookup failed", err)
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	posts, err := h.Posts.ListByIDs(u.PostIDs)
	if err != nil {
		h.logErr(c, "resolve posts failed", err)
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	c.HTML(http.StatusOK, "profile.html", gin.H{"User": u, "Posts": posts})
}

// Create POST /dash creates a post, then appends the reference to the owner.
// The two writes are sequential and non-transactional, in that order.
func (h *PostHandler) Create(c *gin.Context) {
	content := c.PostForm("content")
	if strings.TrimSpace(content) == "" {
		c.String(http.StatusBadRequest, "Post content cannot be empty")
		return
	}

	id, _ := middleware.IdentityFrom(c)
	u, err := h.Users.GetByID(id.UserID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.String(http.StatusNotFound, "User not found")
			return
		}
		h.logErr(c, "user lookup failed", err)
		c.String(http.StatusInternalServerError, "Failed to create post")
		return
	}

	p := &entity.Post{Content: content, UserID: u.ID}
	if err := h.Posts.Create(p); err != nil {
		h.logErr(c, "create post failed", err)
		c.String(http.StatusInternalServerError, "Failed to create post")
		return
	}
	if err := h.Users.AppendPost(u.ID, p.ID); err != nil {
		h.logErr(c, "append post reference failed", err)
		c.String(http.StatusInternalServerError, "Failed to create post")
		return
	}

	c.Redirect(http.StatusFound, "/profile")
}

// Edit POST /edit/:id overwrites the content of an owned post. The owner
// check compares ids as strings; content is not validated here.
func (h *PostHandler) Edit(c *gin.Context) {
	postID := c.Param("id")

	p, err := h.Posts.GetByID(postID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.String(http.StatusNotFound, "Post not found")
			return
		}
		h.logErr(c, "post lookup failed", err)
		c.String(http.StatusInternalServerError, "Failed to update post")
		return
	}

	id, _ := middleware.IdentityFrom(c)
	if p.UserID != id.UserID {
		c.String(http.StatusForbidden, "Unauthorized to edit this post")
		return
	}

	if err := h.Posts.UpdateContent(postID, c.PostForm("content")); err != nil {
		h.logErr(c, "update post failed", err)
		c.String(http.StatusInternalServerError, "Failed to update post")
		return
	}

	c.Redirect(http.StatusFound, "/profile")
}

// Delete POST /delete/:id removes the post, then the owner's reference. Any
// authenticated user may delete any post; only edit checks ownership.
func (h *PostHandler) Delete(c *gin.Context) {
	postID := c.Param("id")

	p, err := h.Posts.GetByID(postID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.String(http.StatusNotFound, "Post not found")
			return
		}
		h.logErr(c, "post lookup failed", err)
		c.String(http.StatusInternalServerError, "Failed to delete post")
		return
	}

	if err := h.Posts.Delete(postID); err != nil {
		h.logErr(c, "delete post failed", err)
		c.String(http.StatusInternalServerError, "Failed to delete post")
		return
	}
	if err := h.Users.RemovePost(p.UserID, postID); err != nil {
		h.logErr(c, "remove post reference failed", err)
		c.String(http.StatusInternalServerError, "Failed to delete post")
		return
	}

	c.Redirect(http.StatusFound, "/profile")
}
