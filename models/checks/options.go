package checks

import "time"

// CheckRunOptions is the body of a create check run request.
type CheckRunOptions struct {
	Name        string      `json:"name"`
	HeadSha     string      `json:"head_sha"`
	DetailsUrl  *string     `json:"details_url,omitempty"`
	ExternalId  *string     `json:"external_id,omitempty"`
	Status      *Status     `json:"status,omitempty"`
	StartedAt   *time.Time  `json:"started_at,omitempty"`
	Conclusion  *Conclusion `json:"conclusion,omitempty"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`
	Output      *Output     `json:"output,omitempty"`
	Actions     []Action    `json:"actions,omitempty"`
}

// CheckRunUpdateOptions is the body of an update check run request. Every member is optional.
type CheckRunUpdateOptions struct {
	Name        *string     `json:"name,omitempty"`
	DetailsUrl  *string     `json:"details_url,omitempty"`
	ExternalId  *string     `json:"external_id,omitempty"`
	Status      *Status     `json:"status,omitempty"`
	StartedAt   *time.Time  `json:"started_at,omitempty"`
	Conclusion  *Conclusion `json:"conclusion,omitempty"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`
	Output      *Output     `json:"output,omitempty"`
	Actions     []Action    `json:"actions,omitempty"`
}
