package dto

import (
	"encoding/json"
	"math"

	"github.com/jsamuelsen11/taskboard-api/internal/domain/task"
	"github.com/jsamuelsen11/taskboard-api/internal/domain/testimonial"
	"github.com/jsamuelsen11/taskboard-api/internal/domain/user"
)

// CreateTaskRequest represents the JSON body for creating a task.
// Priority accepts a JSON number or a numeric string.
type CreateTaskRequest struct {
	Title    string      `json:"title"`
	Priority json.Number `json:"priority"`
	Deadline string      `json:"deadline"`
}

// ToDraft converts the request to a task.Draft. A missing or non-integer
// priority becomes 0, which the domain rejects as out of range, so every
// invalid field is reported together.
func (r *CreateTaskRequest) ToDraft() task.Draft {
	return task.Draft{
		Title:    r.Title,
		Priority: integerOrZero(r.Priority),
		Deadline: r.Deadline,
	}
}

// integerOrZero returns n as an int if it is integral (2 and 2.0 both
// qualify) and fits in an int, or 0 otherwise.
func integerOrZero(n json.Number) int {
	if i, err := n.Int64(); err == nil {
		if i < math.MinInt32 || i > math.MaxInt32 {
			return 0
		}
		return int(i)
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0
	}
	return int(f)
}

// CredentialsRequest represents the JSON body for signup and login.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ToCredentials converts the request to user.Credentials.
func (r *CredentialsRequest) ToCredentials() user.Credentials {
	return user.Credentials{Username: r.Username, Password: r.Password}
}

// CreateTestimonialRequest represents the JSON body for submitting a
// testimonial.
type CreateTestimonialRequest struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// ToTestimonial converts the request to an unapproved testimonial.
func (r *CreateTestimonialRequest) ToTestimonial() *testimonial.Testimonial {
	return &testimonial.Testimonial{Name: r.Name, Message: r.Message}
}
