// Package statuses models commit statuses.
package statuses

import (
	"time"

	"github.com/gruntwork-io/hubcodec/codec"
	"github.com/gruntwork-io/hubcodec/models/users"
)

// State is the state of a commit status. The set has been stable since statuses were introduced
// and gates merge checks, so an unknown state is an error.
type State string

const (
	Pending State = "pending"
	Success State = "success"
	Error   State = "error"
	Failure State = "failure"
)

var States = codec.NewClosedEnum("statuses.State", Pending, Success, Error, Failure)

type Status struct {
	Id          uint64
	NodeId      *string
	Url         string
	State       State
	TargetUrl   *string
	Description *string
	Context     string
	Creator     *users.User
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CombinedStatus is the rollup of the latest status for every context on a ref. Its entries
// carry no creator.
type CombinedStatus struct {
	State      State
	Sha        string
	TotalCount uint64
	Statuses   []Status
	CommitUrl  string
	Url        string
}

func DecodeStatus(v codec.Value) (Status, error) {
	o := codec.AsObject(v)
	status := Status{
		Id:          o.Uint64("id"),
		NodeId:      o.OptString("node_id"),
		Url:         o.String("url"),
		State:       codec.EnumField(o, "state", States),
		TargetUrl:   o.OptString("target_url"),
		Description: o.OptString("description"),
		Context:     o.String("context"),
		Creator:     codec.OptField(o, "creator", users.DecodeUser),
		CreatedAt:   o.Time("created_at"),
		UpdatedAt:   o.Time("updated_at"),
	}
	return status, o.Err()
}

func DecodeCombinedStatus(v codec.Value) (CombinedStatus, error) {
	o := codec.AsObject(v)
	combined := CombinedStatus{
		State:      codec.EnumField(o, "state", States),
		Sha:        o.String("sha"),
		TotalCount: o.Uint64("total_count"),
		Statuses:   codec.ListField(o, "statuses", DecodeStatus),
		CommitUrl:  o.String("commit_url"),
		Url:        o.String("url"),
	}
	return combined, o.Err()
}

type StatusOptions struct {
	State       State   `json:"state"`
	TargetUrl   *string `json:"target_url,omitempty"`
	Description *string `json:"description,omitempty"`
	Context     *string `json:"context,omitempty"`
}
