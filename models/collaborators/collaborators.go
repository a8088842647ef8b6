// Package collaborators models repository collaborators.
package collaborators

import (
	"github.com/gruntwork-io/hubcodec/codec"
	"github.com/gruntwork-io/hubcodec/models/repositories"
	"github.com/gruntwork-io/hubcodec/models/users"
)

// Permission is the access level granted when adding a collaborator.
type Permission string

const (
	Pull     Permission = "pull"
	Triage   Permission = "triage"
	Push     Permission = "push"
	Maintain Permission = "maintain"
	Admin    Permission = "admin"
)

var Permissions = codec.NewOpenEnum("collaborators.Permission", Pull, Triage, Push, Maintain, Admin)

func (p Permission) IsOther() bool {
	return !Permissions.Known(p)
}

// Collaborator is a user record with the collaborator's effective permissions on the repository.
type Collaborator struct {
	users.User
	Permissions *repositories.Permissions
	RoleName    *string
}

func DecodeCollaborator(v codec.Value) (Collaborator, error) {
	user, err := users.DecodeUser(v)
	if err != nil {
		return Collaborator{}, err
	}
	o := codec.AsObject(v)
	collaborator := Collaborator{
		User:        user,
		Permissions: codec.OptField(o, "permissions", repositories.DecodePermissions),
		RoleName:    o.OptString("role_name"),
	}
	return collaborator, o.Err()
}

type CollaboratorOptions struct {
	Permission *Permission `json:"permission,omitempty"`
}
