package checks

import "github.com/gruntwork-io/hubcodec/codec"

// Status is where a check run is in its lifecycle.
type Status string

const (
	Queued     Status = "queued"
	InProgress Status = "in_progress"
	Completed  Status = "completed"
	Waiting    Status = "waiting"
	Requested  Status = "requested"
	Pending    Status = "pending"
)

var Statuses = codec.NewOpenEnum("checks.Status", Queued, InProgress, Completed, Waiting, Requested, Pending)

func (s Status) IsOther() bool {
	return !Statuses.Known(s)
}

// Conclusion is the outcome of a completed check run.
type Conclusion string

const (
	Skipped        Conclusion = "skipped"
	Success        Conclusion = "success"
	Failure        Conclusion = "failure"
	Neutral        Conclusion = "neutral"
	Cancelled      Conclusion = "cancelled"
	TimedOut       Conclusion = "timed_out"
	ActionRequired Conclusion = "action_required"
	Stale          Conclusion = "stale"
)

var Conclusions = codec.NewOpenEnum("checks.Conclusion",
	Skipped, Success, Failure, Neutral, Cancelled, TimedOut, ActionRequired, Stale)

func (c Conclusion) IsOther() bool {
	return !Conclusions.Known(c)
}

type AnnotationLevel string

const (
	AnnotationNotice  AnnotationLevel = "notice"
	AnnotationWarning AnnotationLevel = "warning"
	AnnotationFailure AnnotationLevel = "failure"
)

var AnnotationLevels = codec.NewOpenEnum("checks.AnnotationLevel", AnnotationNotice, AnnotationWarning, AnnotationFailure)

func (l AnnotationLevel) IsOther() bool {
	return !AnnotationLevels.Known(l)
}
