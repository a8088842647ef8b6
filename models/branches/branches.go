// Package branches models branches and branch protection.
package branches

import (
	"github.com/gruntwork-io/hubcodec/codec"
)

type Branch struct {
	Name          string
	Commit        *CommitRef
	Protected     *bool
	ProtectionUrl *string
}

// CommitRef is the head commit of a branch.
type CommitRef struct {
	Sha string
	Url string
}

// ProtectionState is the protection currently applied to a branch, as returned by the API.
type ProtectionState struct {
	Url                        *string
	RequiredStatusChecks       *StatusChecks
	EnforceAdmins              *EnforceAdmins
	RequiredPullRequestReviews *RequiredPullRequestReviews
}

type EnforceAdmins struct {
	Url     string `json:"url"`
	Enabled bool   `json:"enabled"`
}

type StatusChecks struct {
	Strict   bool     `json:"strict"`
	Contexts []string `json:"contexts"`
}

// RequiredPullRequestReviews configures review requirements. When read back from the API,
// DismissalRestrictions is left nil because the response lists full user and team records there.
type RequiredPullRequestReviews struct {
	DismissalRestrictions        *Restrictions `json:"dismissal_restrictions,omitempty"`
	DismissStaleReviews          bool          `json:"dismiss_stale_reviews"`
	RequireCodeOwnerReviews      bool          `json:"require_code_owner_reviews"`
	RequiredApprovingReviewCount uint8         `json:"required_approving_review_count"`
}

// Restrictions names users by login and teams by slug.
type Restrictions struct {
	Users []string `json:"users"`
	Teams []string `json:"teams"`
}

// Protection is the body of an update branch protection request.
type Protection struct {
	RequiredStatusChecks       *StatusChecks               `json:"required_status_checks"`
	EnforceAdmins              bool                        `json:"enforce_admins"`
	RequiredPullRequestReviews *RequiredPullRequestReviews `json:"required_pull_request_reviews"`
	Restrictions               *Restrictions               `json:"restrictions"`
}

// Rename is the body of a rename branch request.
type Rename struct {
	NewName string `json:"new_name"`
}

func DecodeBranch(v codec.Value) (Branch, error) {
	o := codec.AsObject(v)
	branch := Branch{
		Name:          o.String("name"),
		Commit:        codec.OptField(o, "commit", decodeCommitRef),
		Protected:     o.OptBool("protected"),
		ProtectionUrl: o.OptString("protection_url"),
	}
	return branch, o.Err()
}

func DecodeProtectionState(v codec.Value) (ProtectionState, error) {
	o := codec.AsObject(v)
	state := ProtectionState{
		Url:                        o.OptString("url"),
		RequiredStatusChecks:       codec.OptField(o, "required_status_checks", DecodeStatusChecks),
		EnforceAdmins:              codec.OptField(o, "enforce_admins", DecodeEnforceAdmins),
		RequiredPullRequestReviews: codec.OptField(o, "required_pull_request_reviews", decodeReviews),
	}
	return state, o.Err()
}

func DecodeStatusChecks(v codec.Value) (StatusChecks, error) {
	o := codec.AsObject(v)
	checks := StatusChecks{
		Strict:   o.Bool("strict"),
		Contexts: o.Strings("contexts"),
	}
	return checks, o.Err()
}

func DecodeEnforceAdmins(v codec.Value) (EnforceAdmins, error) {
	o := codec.AsObject(v)
	enforce := EnforceAdmins{
		Url:     o.String("url"),
		Enabled: o.Bool("enabled"),
	}
	return enforce, o.Err()
}

func decodeReviews(v codec.Value) (RequiredPullRequestReviews, error) {
	o := codec.AsObject(v)
	reviews := RequiredPullRequestReviews{
		DismissStaleReviews:     o.Bool("dismiss_stale_reviews"),
		RequireCodeOwnerReviews: o.Bool("require_code_owner_reviews"),
	}
	if count := o.OptUint64("required_approving_review_count"); count != nil {
		reviews.RequiredApprovingReviewCount = uint8(*count)
	}
	return reviews, o.Err()
}

func decodeCommitRef(v codec.Value) (CommitRef, error) {
	o := codec.AsObject(v)
	ref := CommitRef{
		Sha: o.String("sha"),
		Url: o.String("url"),
	}
	return ref, o.Err()
}
