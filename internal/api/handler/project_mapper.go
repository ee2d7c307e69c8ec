package handler

import (
	"net/url"
	"strconv"

	"github.com/studentworks/showcase/internal/core/domain"
)

func toProjectResponse(p *domain.Project) projectResponse {
	id := strconv.FormatInt(p.ID, 10)
	return projectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		File:        p.File,
		Status:      string(p.Status),
		OwnerID:     p.OwnerID,
		OwnerName:   p.OwnerName,
		Links: projectLinks{
			Self: "/project/" + id,
			File: "/uploads/" + url.PathEscape(p.File),
		},
	}
}

func toProjectList(ps []*domain.Project) []projectResponse {
	out := make([]projectResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProjectResponse(p))
	}
	return out
}

func toUserResponse(a domain.Actor) *userResponse {
	if !a.Authenticated() {
		return nil
	}
	return &userResponse{ID: a.UserID, Username: a.Username, Role: string(a.Role)}
}
