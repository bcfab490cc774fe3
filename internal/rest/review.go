package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gordonblake/moviereviews/domain"
	"github.com/gordonblake/moviereviews/internal/rest/middleware"
	"github.com/gordonblake/moviereviews/internal/rest/request"
	"github.com/gordonblake/moviereviews/internal/rest/response"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// ReviewHandler represent the http handler for reviews
type ReviewHandler struct {
	Service domain.ReviewUsecase
}

func NewReviewHandler(svc domain.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{
		Service: svc,
	}
}

// Fetch returns every review, like counts included
func (h *ReviewHandler) Fetch(c *gin.Context) {
	ctx := c.Request.Context()

	reviews, err := h.Service.Fetch(ctx)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Review, len(reviews))
	for i := range reviews {
		res[i] = response.NewReviewFromDomain(&reviews[i])
	}
	c.JSON(http.StatusOK, res)
}

// GetByID will get a review by given id
func (h *ReviewHandler) GetByID(c *gin.Context) {
	id, ok := reviewID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	review, err := h.Service.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			c.JSON(http.StatusNotFound, ResponseError{Message: "Review not found."})
			return
		}
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewReviewFromDomain(&review))
}

// Store will create a review from the given request body
func (h *ReviewHandler) Store(c *gin.Context) {
	var req request.Review
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review := req.ToDomain()
	ctx := c.Request.Context()
	if err := h.Service.Store(ctx, &review); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewReviewFromDomain(&review))
}

// Update replaces every field of an existing review; likes are untouched
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := reviewID(c)
	if !ok {
		return
	}

	var req request.Review
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review := req.ToDomain()
	review.ID = id

	ctx := c.Request.Context()
	if err := h.Service.Update(ctx, &review); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review updated successfully!"})
}

// Like flips the caller's like state for the review and returns the new count
func (h *ReviewHandler) Like(c *gin.Context) {
	id, ok := reviewID(c)
	if !ok {
		return
	}
	username, ok := actingUser(c)
	if !ok {
		return
	}

	res, err := h.Service.ToggleLike(c.Request.Context(), id, username)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	message := "Like removed."
	if res.Liked {
		message = "Review liked."
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "likes": res.Likes})
}

// UserLikes lists the IDs of the reviews the caller currently likes
func (h *ReviewHandler) UserLikes(c *gin.Context) {
	username, ok := actingUser(c)
	if !ok {
		return
	}

	ids, err := h.Service.FetchUserLikedReviews(c.Request.Context(), username)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.LikedReview, len(ids))
	for i, id := range ids {
		res[i] = response.LikedReview{ReviewID: id}
	}
	c.JSON(http.StatusOK, res)
}

func reviewID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: "Review not found."})
		return 0, false
	}
	return id, true
}

func actingUser(c *gin.Context) (string, bool) {
	username, exists := c.Get(middleware.UsernameKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return "", false
	}
	return username.(string), true
}

// getStatusCode will get the http status code for the given error
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch err {
	case domain.ErrInternalServerError:
		return http.StatusInternalServerError
	case domain.ErrNotFound:
		return http.StatusNotFound
	case domain.ErrConflict:
		return http.StatusConflict
	case domain.ErrBadParamInput:
		return http.StatusBadRequest
	case domain.ErrInvalidCredentials, domain.ErrNoToken:
		return http.StatusUnauthorized
	case domain.ErrInvalidToken:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
