// Package teams models organization teams and team membership.
package teams

import (
	"github.com/gruntwork-io/hubcodec/codec"
)

// Permission is the default access a team grants on its repositories.
type Permission string

const (
	Pull     Permission = "pull"
	Triage   Permission = "triage"
	Push     Permission = "push"
	Maintain Permission = "maintain"
	Admin    Permission = "admin"
)

var Permissions = codec.NewOpenEnum("teams.Permission", Pull, Triage, Push, Maintain, Admin)

func (p Permission) IsOther() bool {
	return !Permissions.Known(p)
}

type Privacy string

const (
	Secret Privacy = "secret"
	Closed Privacy = "closed"
)

var Privacies = codec.NewClosedEnum("teams.Privacy", Secret, Closed)

type MemberRole string

const (
	Member     MemberRole = "member"
	Maintainer MemberRole = "maintainer"
)

var MemberRoles = codec.NewClosedEnum("teams.MemberRole", Member, Maintainer)

type MemberState string

const (
	Active  MemberState = "active"
	Pending MemberState = "pending"
)

var MemberStates = codec.NewClosedEnum("teams.MemberState", Active, Pending)

type Team struct {
	Id              uint64
	NodeId          *string
	Url             string
	HtmlUrl         *string
	Name            string
	Slug            string
	Description     *string
	Privacy         Privacy
	Permission      Permission
	MembersUrl      string
	RepositoriesUrl string
}

// TeamMember is a user's membership in a team.
type TeamMember struct {
	Url   string
	Role  MemberRole
	State MemberState
}

func DecodeTeam(v codec.Value) (Team, error) {
	o := codec.AsObject(v)
	team := Team{
		Id:              o.Uint64("id"),
		NodeId:          o.OptString("node_id"),
		Url:             o.String("url"),
		HtmlUrl:         o.OptString("html_url"),
		Name:            o.String("name"),
		Slug:            o.String("slug"),
		Description:     o.OptString("description"),
		Privacy:         codec.EnumField(o, "privacy", Privacies),
		Permission:      codec.EnumField(o, "permission", Permissions),
		MembersUrl:      o.String("members_url"),
		RepositoriesUrl: o.String("repositories_url"),
	}
	return team, o.Err()
}

func DecodeTeamMember(v codec.Value) (TeamMember, error) {
	o := codec.AsObject(v)
	member := TeamMember{
		Url:   o.String("url"),
		Role:  codec.EnumField(o, "role", MemberRoles),
		State: codec.EnumField(o, "state", MemberStates),
	}
	return member, o.Err()
}

type TeamOptions struct {
	Name        string      `json:"name"`
	Description *string     `json:"description,omitempty"`
	Privacy     *Privacy    `json:"privacy,omitempty"`
	Permission  *Permission `json:"permission,omitempty"`
}

type TeamMemberOptions struct {
	Role MemberRole `json:"role"`
}
