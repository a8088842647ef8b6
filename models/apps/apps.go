// Package apps models GitHub App installations and installation access tokens.
package apps

import (
	"time"

	"github.com/gruntwork-io/hubcodec/codec"
	"github.com/gruntwork-io/hubcodec/models/users"
)

// TargetType is the kind of account an app is installed on.
type TargetType string

const (
	UserTarget         TargetType = "User"
	OrganizationTarget TargetType = "Organization"
)

var TargetTypes = codec.NewOpenEnum("apps.TargetType", UserTarget, OrganizationTarget)

func (t TargetType) IsOther() bool {
	return !TargetTypes.Known(t)
}

// RepositorySelection is whether an installation covers every repository of its account.
type RepositorySelection string

const (
	AllRepositories      RepositorySelection = "all"
	SelectedRepositories RepositorySelection = "selected"
)

var RepositorySelections = codec.NewClosedEnum("apps.RepositorySelection", AllRepositories, SelectedRepositories)

type AccessToken struct {
	Token               string
	ExpiresAt           time.Time
	Permissions         map[string]string
	RepositorySelection *RepositorySelection
}

type Installation struct {
	Id              uint64
	Account         *users.User
	AccessTokensUrl string
	RepositoriesUrl string
	HtmlUrl         string
	AppId           uint64
	AppSlug         *string
	TargetId        uint64
	TargetType      TargetType
	// Permissions maps a permission name such as "contents" to "read" or "write".
	Permissions         map[string]string
	Events              []string
	SingleFileName      *string
	RepositorySelection RepositorySelection
	CreatedAt           *time.Time
	UpdatedAt           *time.Time
}

func DecodeAccessToken(v codec.Value) (AccessToken, error) {
	o := codec.AsObject(v)
	token := AccessToken{
		Token:               o.String("token"),
		ExpiresAt:           o.Time("expires_at"),
		Permissions:         optStringMap(o, "permissions"),
		RepositorySelection: codec.OptEnumField(o, "repository_selection", RepositorySelections),
	}
	return token, o.Err()
}

func DecodeInstallation(v codec.Value) (Installation, error) {
	o := codec.AsObject(v)
	installation := Installation{
		Id:                  o.Uint64("id"),
		Account:             codec.OptField(o, "account", users.DecodeUser),
		AccessTokensUrl:     o.String("access_tokens_url"),
		RepositoriesUrl:     o.String("repositories_url"),
		HtmlUrl:             o.String("html_url"),
		AppId:               o.Uint64("app_id"),
		AppSlug:             o.OptString("app_slug"),
		TargetId:            o.Uint64("target_id"),
		TargetType:          codec.EnumField(o, "target_type", TargetTypes),
		Permissions:         optStringMap(o, "permissions"),
		Events:              o.Strings("events"),
		SingleFileName:      o.OptString("single_file_name"),
		RepositorySelection: codec.EnumField(o, "repository_selection", RepositorySelections),
		CreatedAt:           o.OptTime("created_at"),
		UpdatedAt:           o.OptTime("updated_at"),
	}
	return installation, o.Err()
}

func optStringMap(o *codec.Object, name string) map[string]string {
	if !o.Has(name) {
		return nil
	}
	return codec.MapField(o, name, codec.Value.String)
}
