// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/taskboard-api/internal/domain/task"
	"github.com/jsamuelsen11/taskboard-api/internal/domain/testimonial"
	"github.com/jsamuelsen11/taskboard-api/internal/ports"
)

// TaskResponse represents a single task in HTTP responses. Deadline is
// formatted YYYY-MM-DD.
type TaskResponse struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Priority int    `json:"priority"`
	Deadline string `json:"deadline"`
}

// ToTaskResponse converts a domain Task to an HTTP response DTO.
func ToTaskResponse(t *task.Task) TaskResponse {
	return TaskResponse{
		ID:       t.ID,
		Title:    t.Title,
		Priority: t.Priority,
		Deadline: t.DeadlineDate(),
	}
}

// ToTaskListResponse converts tasks to a JSON array. The result is never nil.
func ToTaskListResponse(tasks []task.Task) []TaskResponse {
	items := make([]TaskResponse, len(tasks))
	for i := range tasks {
		items[i] = ToTaskResponse(&tasks[i])
	}
	return items
}

// RecommendationResponse represents a deadline extension suggestion.
type RecommendationResponse struct {
	ID                int64  `json:"id"`
	Title             string `json:"title"`
	CurrentDeadline   string `json:"currentDeadline"`
	SuggestedDeadline string `json:"suggestedDeadline"`
}

// ToRecommendationListResponse converts recommendations to a JSON array.
// The result is never nil.
func ToRecommendationListResponse(recs []task.Recommendation) []RecommendationResponse {
	items := make([]RecommendationResponse, len(recs))
	for i, r := range recs {
		items[i] = RecommendationResponse{
			ID:                r.ID,
			Title:             r.Title,
			CurrentDeadline:   task.FormatDate(r.CurrentDeadline),
			SuggestedDeadline: task.FormatDate(r.SuggestedDeadline),
		}
	}
	return items
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

// ToTokenResponse converts an issued token to an HTTP response DTO.
func ToTokenResponse(t *ports.Token) TokenResponse {
	return TokenResponse{
		Token:     t.Value,
		ExpiresAt: t.ExpiresAt.UTC().Format(time.RFC3339),
	}
}

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// TestimonialResponse represents a single testimonial in HTTP responses.
type TestimonialResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Message   string `json:"message"`
	Approved  bool   `json:"approved"`
	CreatedAt string `json:"createdAt"`
}

// ToTestimonialResponse converts a domain Testimonial to an HTTP response DTO.
func ToTestimonialResponse(t *testimonial.Testimonial) TestimonialResponse {
	return TestimonialResponse{
		ID:        t.ID,
		Name:      t.Name,
		Message:   t.Message,
		Approved:  t.Approved,
		CreatedAt: t.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToTestimonialListResponse converts testimonials to a JSON array. The result
// is never nil.
func ToTestimonialListResponse(ts []testimonial.Testimonial) []TestimonialResponse {
	items := make([]TestimonialResponse, len(ts))
	for i := range ts {
		items[i] = ToTestimonialResponse(&ts[i])
	}
	return items
}
