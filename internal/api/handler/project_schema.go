package handler

// errorResponse is the envelope of blunt 4xx replies.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Form requests ---

type registerRequest struct {
	Username string `form:"username" validate:"required,max=64"`
	// max counts characters; the 72-byte bcrypt limit is enforced by the auth service
	Password string `form:"password" validate:"required,max=72"`
}

type loginRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type uploadRequest struct {
	Title       string `form:"title"       validate:"required,max=200"`
	Description string `form:"description" validate:"max=5000"`
}

type editRequest struct {
	Title       string `form:"title"       validate:"required,max=200"`
	Description string `form:"description" validate:"max=5000"`
}

// --- Page payloads ---

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type projectLinks struct {
	Self string `json:"self"`
	File string `json:"file"`
}

type projectResponse struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	File        string       `json:"file"`
	Status      string       `json:"status"`
	OwnerID     int64        `json:"owner_id"`
	OwnerName   string       `json:"owner_name,omitempty"`
	Links       projectLinks `json:"_links"`
}

// page is the common part of every rendered view.
type page struct {
	View    string        `json:"view"`
	Flashes []string      `json:"flashes,omitempty"`
	User    *userResponse `json:"user,omitempty"`
}

type listPage struct {
	page
	Projects []projectResponse `json:"projects"`
	Query    string            `json:"query,omitempty"`
}

type projectPage struct {
	page
	Project projectResponse `json:"project"`
}
