// Package users models GitHub user accounts.
package users

import (
	"time"

	"github.com/gruntwork-io/hubcodec/codec"
)

// User is the public view of an account, as embedded in most other resources.
type User struct {
	Login             string
	Id                uint64
	NodeId            *string
	AvatarUrl         string
	GravatarId        *string
	Url               string
	HtmlUrl           string
	FollowersUrl      string
	FollowingUrl      string
	GistsUrl          string
	StarredUrl        string
	SubscriptionsUrl  string
	OrganizationsUrl  string
	ReposUrl          string
	EventsUrl         string
	ReceivedEventsUrl string
	Type              string
	SiteAdmin         bool
}

// AuthenticatedUser is the account the request's token belongs to.
type AuthenticatedUser struct {
	User
	Name        *string
	Company     *string
	Blog        *string
	Location    *string
	Email       *string
	Hireable    *bool
	Bio         *string
	PublicRepos uint64
	PublicGists uint64
	Followers   uint64
	Following   uint64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func DecodeUser(v codec.Value) (User, error) {
	o := codec.AsObject(v)
	user := readUser(o)
	return user, o.Err()
}

func DecodeAuthenticatedUser(v codec.Value) (AuthenticatedUser, error) {
	o := codec.AsObject(v)
	user := AuthenticatedUser{
		User:        readUser(o),
		Name:        o.OptString("name"),
		Company:     o.OptString("company"),
		Blog:        o.OptString("blog"),
		Location:    o.OptString("location"),
		Email:       o.OptString("email"),
		Hireable:    o.OptBool("hireable"),
		Bio:         o.OptString("bio"),
		PublicRepos: o.Uint64("public_repos"),
		PublicGists: o.Uint64("public_gists"),
		Followers:   o.Uint64("followers"),
		Following:   o.Uint64("following"),
		CreatedAt:   o.Time("created_at"),
		UpdatedAt:   o.Time("updated_at"),
	}
	return user, o.Err()
}

func readUser(o *codec.Object) User {
	return User{
		Login:             o.String("login"),
		Id:                o.Uint64("id"),
		NodeId:            o.OptString("node_id"),
		AvatarUrl:         o.String("avatar_url"),
		GravatarId:        o.OptString("gravatar_id"),
		Url:               o.String("url"),
		HtmlUrl:           o.String("html_url"),
		FollowersUrl:      o.String("followers_url"),
		FollowingUrl:      o.String("following_url"),
		GistsUrl:          o.String("gists_url"),
		StarredUrl:        o.String("starred_url"),
		SubscriptionsUrl:  o.String("subscriptions_url"),
		OrganizationsUrl:  o.String("organizations_url"),
		ReposUrl:          o.String("repos_url"),
		EventsUrl:         o.String("events_url"),
		ReceivedEventsUrl: o.String("received_events_url"),
		Type:              o.String("type"),
		SiteAdmin:         o.Bool("site_admin"),
	}
}
