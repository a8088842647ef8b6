// Package orgs models organizations and organization invitations.
package orgs

import (
	"time"

	"github.com/gruntwork-io/hubcodec/codec"
	"github.com/gruntwork-io/hubcodec/models/users"
)

type Org struct {
	Login            string
	Id               uint64
	NodeId           *string
	Url              string
	ReposUrl         string
	EventsUrl        string
	HooksUrl         string
	IssuesUrl        string
	MembersUrl       string
	PublicMembersUrl string
	AvatarUrl        string
	Description      *string
}

// InvitedRole is the role an invitation grants once accepted.
type InvitedRole string

const (
	DirectMember   InvitedRole = "direct_member"
	Admin          InvitedRole = "admin"
	BillingManager InvitedRole = "billing_manager"
	HiringManager  InvitedRole = "hiring_manager"
	Reinstate      InvitedRole = "reinstate"
)

var InvitedRoles = codec.NewOpenEnum("orgs.InvitedRole",
	DirectMember, Admin, BillingManager, HiringManager, Reinstate)

func (r InvitedRole) IsOther() bool {
	return !InvitedRoles.Known(r)
}

// Invitation is a pending invitation to join an organization. Exactly one of Login and Email is
// usually set, depending on how the invitee was addressed.
type Invitation struct {
	Id        uint64
	Login     *string
	Email     *string
	Role      InvitedRole
	CreatedAt time.Time
	Inviter   users.User
	TeamCount *uint64
}

func DecodeOrg(v codec.Value) (Org, error) {
	o := codec.AsObject(v)
	org := Org{
		Login:            o.String("login"),
		Id:               o.Uint64("id"),
		NodeId:           o.OptString("node_id"),
		Url:              o.String("url"),
		ReposUrl:         o.String("repos_url"),
		EventsUrl:        o.String("events_url"),
		HooksUrl:         o.String("hooks_url"),
		IssuesUrl:        o.String("issues_url"),
		MembersUrl:       o.String("members_url"),
		PublicMembersUrl: o.String("public_members_url"),
		AvatarUrl:        o.String("avatar_url"),
		Description:      o.OptString("description"),
	}
	return org, o.Err()
}

func DecodeInvitation(v codec.Value) (Invitation, error) {
	o := codec.AsObject(v)
	invitation := Invitation{
		Id:        o.Uint64("id"),
		Login:     o.OptString("login"),
		Email:     o.OptString("email"),
		Role:      codec.EnumField(o, "role", InvitedRoles),
		CreatedAt: o.Time("created_at"),
		Inviter:   codec.Field(o, "inviter", users.DecodeUser),
		TeamCount: o.OptUint64("team_count"),
	}
	return invitation, o.Err()
}
