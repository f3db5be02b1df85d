package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"irms.fjp.io/irms/ent"
)

// maxPerPage caps list sizes regardless of the requested limit.
const maxPerPage = 100

// defaultPagination normalizes page/limit values (0 = not specified).
func defaultPagination(page, perPage, defaultPerPage int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}

// parsePagination reads page/limit query params with a per-endpoint default.
func parsePagination(c *gin.Context, defaultPerPage int) (page, perPage, offset int) {
	page, _ = strconv.Atoi(c.Query("page"))
	perPage, _ = strconv.Atoi(c.Query("limit"))
	page, perPage = defaultPagination(page, perPage, defaultPerPage)
	return page, perPage, (page - 1) * perPage
}

// APIResource is the wire shape of a resource record.
type APIResource struct {
	ID           string    `json:"id"`
	EmployeeCode string    `json:"employeeCode"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Department   string    `json:"department"`
	JobTitle     string    `json:"jobTitle"`
	Skills       []string  `json:"skills"`
	Experience   string    `json:"experience"`
	Rate         float64   `json:"rate"`
	Status       string    `json:"status"`
	IdleFrom     time.Time `json:"idleFrom"`
	IdleDuration int       `json:"idleDuration"`
	IsUrgent     bool      `json:"isUrgent"`
	CvPath       string    `json:"cvPath,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedBy    string    `json:"createdBy,omitempty"`
	UpdatedBy    string    `json:"updatedBy,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func resourceToAPI(r *ent.Resource) APIResource {
	skills := r.Skills
	if skills == nil {
		skills = []string{}
	}
	return APIResource{
		ID:           r.ID,
		EmployeeCode: r.EmployeeCode,
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		Department:   string(r.Department),
		JobTitle:     r.JobTitle,
		Skills:       skills,
		Experience:   r.Experience,
		Rate:         r.Rate,
		Status:       string(r.Status),
		IdleFrom:     r.IdleFrom,
		IdleDuration: r.IdleDuration,
		IsUrgent:     r.IsUrgent,
		CvPath:       r.CvPath,
		Notes:        r.Notes,
		CreatedBy:    r.CreatedBy,
		UpdatedBy:    r.UpdatedBy,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// APIUser is the wire shape of a user account. The password hash never
// leaves the server.
type APIUser struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func userToAPI(u *ent.User) APIUser {
	return APIUser{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Role:        string(u.Role),
		Status:      string(u.Status),
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// APIHistoryEntry is the wire shape of a history log row. ActorName is
// resolved from the user store at read time and may be empty when the
// account no longer exists.
type APIHistoryEntry struct {
	ID           string                 `json:"id"`
	ActorID      string                 `json:"actorId"`
	ActorName    string                 `json:"actorName,omitempty"`
	Action       string                 `json:"action"`
	ResourceID   string                 `json:"resourceId,omitempty"`
	ResourceName string                 `json:"resourceName,omitempty"`
	Changes      string                 `json:"changes,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt    time.Time              `json:"createdAt"`
}

func historyToAPI(e *ent.HistoryEntry, actorName string) APIHistoryEntry {
	return APIHistoryEntry{
		ID:           e.ID,
		ActorID:      e.ActorID,
		ActorName:    actorName,
		Action:       string(e.Action),
		ResourceID:   e.ResourceID,
		ResourceName: e.ResourceName,
		Changes:      e.Changes,
		Metadata:     e.Metadata,
		CreatedAt:    e.CreatedAt,
	}
}
