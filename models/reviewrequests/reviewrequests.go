// Package reviewrequests models the reviewers requested on a pull request.
package reviewrequests

import (
	"github.com/gruntwork-io/hubcodec/codec"
	"github.com/gruntwork-io/hubcodec/models/teams"
	"github.com/gruntwork-io/hubcodec/models/users"
)

type ReviewRequest struct {
	Users []users.User
	Teams []teams.Team
}

func DecodeReviewRequest(v codec.Value) (ReviewRequest, error) {
	o := codec.AsObject(v)
	request := ReviewRequest{
		Users: codec.ListField(o, "users", users.DecodeUser),
		Teams: codec.ListField(o, "teams", teams.DecodeTeam),
	}
	return request, o.Err()
}

// ReviewRequestOptions names reviewers by login and teams by slug.
type ReviewRequestOptions struct {
	Reviewers     []string `json:"reviewers"`
	TeamReviewers []string `json:"team_reviewers"`
}
