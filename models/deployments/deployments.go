// Package deployments models deployments and their status history.
package deployments

import (
	"encoding/json"
	"time"

	"github.com/gruntwork-io/hubcodec/codec"
	"github.com/gruntwork-io/hubcodec/models/users"
)

// State is the state of one deployment status. GitHub has added states over time (queued,
// in_progress), so unknown states are kept.
type State string

const (
	Error      State = "error"
	Failure    State = "failure"
	Inactive   State = "inactive"
	Pending    State = "pending"
	Success    State = "success"
	Queued     State = "queued"
	InProgress State = "in_progress"
)

var States = codec.NewOpenEnum("deployments.State", Error, Failure, Inactive, Pending, Success, Queued, InProgress)

func (s State) IsOther() bool {
	return !States.Known(s)
}

type Deployment struct {
	Url    string
	Id     uint64
	NodeId *string
	Sha    string
	Ref    string
	Task   string
	// Payload is whatever the deployment was created with, kept verbatim.
	Payload               json.RawMessage
	Environment           string
	OriginalEnvironment   *string
	Description           *string
	Creator               *users.User
	CreatedAt             time.Time
	UpdatedAt             time.Time
	StatusesUrl           string
	RepositoryUrl         string
	TransientEnvironment  *bool
	ProductionEnvironment *bool
}

type DeploymentStatus struct {
	Url            string
	Id             uint64
	State          State
	Creator        *users.User
	Description    *string
	Environment    *string
	TargetUrl      *string
	LogUrl         *string
	EnvironmentUrl *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeploymentUrl  string
	RepositoryUrl  string
}

func DecodeDeployment(v codec.Value) (Deployment, error) {
	o := codec.AsObject(v)
	deployment := Deployment{
		Url:                   o.String("url"),
		Id:                    o.Uint64("id"),
		NodeId:                o.OptString("node_id"),
		Sha:                   o.String("sha"),
		Ref:                   o.String("ref"),
		Task:                  o.String("task"),
		Payload:               o.Raw("payload"),
		Environment:           o.String("environment"),
		OriginalEnvironment:   o.OptString("original_environment"),
		Description:           o.OptString("description"),
		Creator:               codec.OptField(o, "creator", users.DecodeUser),
		CreatedAt:             o.Time("created_at"),
		UpdatedAt:             o.Time("updated_at"),
		StatusesUrl:           o.String("statuses_url"),
		RepositoryUrl:         o.String("repository_url"),
		TransientEnvironment:  o.OptBool("transient_environment"),
		ProductionEnvironment: o.OptBool("production_environment"),
	}
	return deployment, o.Err()
}

func DecodeDeploymentStatus(v codec.Value) (DeploymentStatus, error) {
	o := codec.AsObject(v)
	status := DeploymentStatus{
		Url:            o.String("url"),
		Id:             o.Uint64("id"),
		State:          codec.EnumField(o, "state", States),
		Creator:        codec.OptField(o, "creator", users.DecodeUser),
		Description:    o.OptString("description"),
		Environment:    o.OptString("environment"),
		TargetUrl:      o.OptString("target_url"),
		LogUrl:         o.OptString("log_url"),
		EnvironmentUrl: o.OptString("environment_url"),
		CreatedAt:      o.Time("created_at"),
		UpdatedAt:      o.Time("updated_at"),
		DeploymentUrl:  o.String("deployment_url"),
		RepositoryUrl:  o.String("repository_url"),
	}
	return status, o.Err()
}

// DeploymentOptions is the body of a create deployment request.
type DeploymentOptions struct {
	Ref                   string          `json:"ref"`
	Task                  *string         `json:"task,omitempty"`
	AutoMerge             *bool           `json:"auto_merge,omitempty"`
	RequiredContexts      []string        `json:"required_contexts,omitempty"`
	Payload               json.RawMessage `json:"payload,omitempty"`
	Environment           *string         `json:"environment,omitempty"`
	Description           *string         `json:"description,omitempty"`
	TransientEnvironment  *bool           `json:"transient_environment,omitempty"`
	ProductionEnvironment *bool           `json:"production_environment,omitempty"`
}

// DeploymentStatusOptions is the body of a create deployment status request.
type DeploymentStatusOptions struct {
	State       State   `json:"state"`
	TargetUrl   *string `json:"target_url,omitempty"`
	LogUrl      *string `json:"log_url,omitempty"`
	Description *string `json:"description,omitempty"`
	Environment *string `json:"environment,omitempty"`
}
