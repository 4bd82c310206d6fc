package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"profile-votes/internal/domain"
	"profile-votes/internal/service"
)

// CommentHandler mantiene dependencias para comentarios, feed y likes.
type CommentHandler struct {
	logger   *zap.Logger
	comments *service.CommentService
}

// NewCommentHandler crea una instancia de CommentHandler con dependencias necesarias.
func NewCommentHandler(logger *zap.Logger, comments *service.CommentService) *CommentHandler {
	return &CommentHandler{
		logger:   logger,
		comments: comments,
	}
}

type createCommentRequest struct {
	UserID    string  `json:"userId" binding:"required"`
	Title     string  `json:"title" binding:"required"`
	Text      string  `json:"text" binding:"required"`
	MBTI      *string `json:"mbti" binding:"omitempty,mbti"`
	Enneagram *string `json:"enneagram" binding:"omitempty,enneagram"`
	Zodiac    *string `json:"zodiac" binding:"omitempty,zodiac"`
}

type likeRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// CreateComment maneja POST /profiles/:id/comments.
//
// @Summary Create a comment (with optional personality votes) for a profile
// @Tags Profile Comments
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param request body createCommentRequest true "Comment data"
// @Success 201 {object} domain.Comment
// @Failure 400 {object} errorResponse
// @Failure 429 {object} errorResponse
// @Router /profiles/{id}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create comment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	comment, err := h.comments.Create(c.Request.Context(), service.CreateCommentInput{
		ProfileID: c.Param("id"),
		UserID:    req.UserID,
		Title:     req.Title,
		Text:      req.Text,
		Votes: domain.Votes{
			MBTI:      req.MBTI,
			Enneagram: req.Enneagram,
			Zodiac:    req.Zodiac,
		},
	})
	if err != nil {
		respondError(c, h.logger, err, "could not create comment")
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// ListComments maneja GET /profiles/:id/comments.
//
// @Summary Get comments of a profile
// @Tags Profile Comments
// @Produce json
// @Param id path string true "Profile ID"
// @Param filter query string false "Personality system to filter by (mbti, enneagram, zodiac)"
// @Param sort query string false "Sort order (recent, best)"
// @Param limit query int false "Page size (1-100)"
// @Param offset query int false "Items to skip"
// @Success 200 {array} domain.Comment
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /profiles/{id}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	limit, hasLimit, err := queryInt(c, "limit")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
		return
	}
	// Limit 0 en el servicio significa "sin limite"; en la query no es valido.
	if hasLimit && limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("limit must be between 1 and %d", service.MaxPageSize)})
		return
	}
	offset, _, err := queryInt(c, "offset")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "offset must be an integer"})
		return
	}

	comments, err := h.comments.List(c.Request.Context(), c.Param("id"), service.ListOptions{
		Filter: c.Query("filter"),
		Sort:   c.Query("sort"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		respondError(c, h.logger, err, "could not list comments")
		return
	}
	c.JSON(http.StatusOK, comments)
}

// ToggleLike maneja POST /profiles/:id/comments/:commentId/like.
//
// @Summary Toggle like/unlike a comment
// @Tags Profile Comments
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param commentId path string true "Comment ID"
// @Param request body likeRequest true "Liking user"
// @Success 200 {object} domain.Comment
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /profiles/{id}/comments/{commentId}/like [post]
func (h *CommentHandler) ToggleLike(c *gin.Context) {
	var req likeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid like request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	comment, err := h.comments.ToggleLike(c.Request.Context(), c.Param("commentId"), req.UserID)
	if err != nil {
		respondError(c, h.logger, err, "could not toggle like")
		return
	}
	c.JSON(http.StatusOK, comment)
}

// queryInt lee un entero opcional de la query; el bool indica si vino.
func queryInt(c *gin.Context, key string) (int, bool, error) {
	raw, ok := c.GetQuery(key)
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.Atoi(raw)
	return n, true, err
}
