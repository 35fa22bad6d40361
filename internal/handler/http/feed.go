package http

import (
	"encoding/json"
	"net/http"

	"github.com/shiftops/workforce-backend-go/internal/domain/feed"
	"github.com/shiftops/workforce-backend-go/internal/handler/http/response"
)

type FeedHandler interface {
	CreatePost(w http.ResponseWriter, r *http.Request)
	ListPosts(w http.ResponseWriter, r *http.Request)
	GetPost(w http.ResponseWriter, r *http.Request)
	CreateComment(w http.ResponseWriter, r *http.Request)
	ToggleLike(w http.ResponseWriter, r *http.Request)
}

type feedHandlerImpl struct {
	feedService feed.Service
}

func NewFeedHandler(feedService feed.Service) FeedHandler {
	return &feedHandlerImpl{
		feedService: feedService,
	}
}

// CreatePost handles POST /feed/posts
func (h *feedHandlerImpl) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req feed.CreatePostRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	callerID, err := currentUserID(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.feedService.CreatePost(r.Context(), req, callerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Post created", result)
}

// ListPosts handles GET /feed/posts
func (h *feedHandlerImpl) ListPosts(w http.ResponseWriter, r *http.Request) {
	callerID, err := currentUserID(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	results, err := h.feedService.ListPosts(r.Context(), callerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// GetPost handles GET /feed/posts/{id}
func (h *feedHandlerImpl) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid post id", nil)
		return
	}

	callerID, err := currentUserID(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.feedService.GetPost(r.Context(), id, callerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateComment handles POST /feed/posts/{id}/comments
func (h *feedHandlerImpl) CreateComment(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid post id", nil)
		return
	}

	var req feed.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.PostID = postID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	callerID, err := currentUserID(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.feedService.CreateComment(r.Context(), req, callerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Comment created", result)
}

// ToggleLike handles POST /feed/posts/{id}/like
func (h *feedHandlerImpl) ToggleLike(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid post id", nil)
		return
	}

	callerID, err := currentUserID(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.feedService.ToggleLike(r.Context(), postID, callerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
