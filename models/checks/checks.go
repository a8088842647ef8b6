// Package checks models check runs, check suites and the annotations they report.
package checks

import (
	"time"

	"github.com/gruntwork-io/hubcodec/codec"
)

type CheckRun struct {
	Id          uint64
	NodeId      *string
	Name        string
	HeadSha     string
	Url         string
	HtmlUrl     *string
	CheckSuite  CheckSuite
	DetailsUrl  *string
	ExternalId  *string
	Status      *Status
	StartedAt   *time.Time
	Conclusion  *Conclusion
	CompletedAt *time.Time
	Output      *RunOutput
	Actions     []Action
}

type CheckSuite struct {
	Id         uint64
	HeadBranch *string
	HeadSha    *string
	Status     *Status
	Conclusion *Conclusion
}

// RunOutput is the output summary sent back on a check run. The API fills every text member with
// null when the run reported no output, and never inlines the annotations.
type RunOutput struct {
	Title            *string
	Summary          *string
	Text             *string
	AnnotationsCount uint64
	AnnotationsUrl   string
}

// Output is the output a check run reports when it is created or updated.
type Output struct {
	Title       string       `json:"title"`
	Summary     string       `json:"summary"`
	Text        *string      `json:"text,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
	Images      []Image      `json:"images,omitempty"`
}

// Action is a button the check run offers on the pull request page.
type Action struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	Identifier  string `json:"identifier"`
}

type Annotation struct {
	Path            string          `json:"path"`
	StartLine       uint32          `json:"start_line"`
	EndLine         uint32          `json:"end_line"`
	StartColumn     *uint32         `json:"start_column,omitempty"`
	EndColumn       *uint32         `json:"end_column,omitempty"`
	AnnotationLevel AnnotationLevel `json:"annotation_level"`
	Message         string          `json:"message"`
	Title           *string         `json:"title,omitempty"`
	RawDetails      *string         `json:"raw_details,omitempty"`
}

type Image struct {
	Alt      string  `json:"alt"`
	ImageUrl string  `json:"image_url"`
	Caption  *string `json:"caption,omitempty"`
}

func DecodeCheckRun(v codec.Value) (CheckRun, error) {
	o := codec.AsObject(v)
	run := CheckRun{
		Id:          o.Uint64("id"),
		NodeId:      o.OptString("node_id"),
		Name:        o.String("name"),
		HeadSha:     o.String("head_sha"),
		Url:         o.String("url"),
		HtmlUrl:     o.OptString("html_url"),
		CheckSuite:  codec.Field(o, "check_suite", DecodeCheckSuite),
		DetailsUrl:  o.OptString("details_url"),
		ExternalId:  o.OptString("external_id"),
		Status:      codec.OptEnumField(o, "status", Statuses),
		StartedAt:   o.OptTime("started_at"),
		Conclusion:  codec.OptEnumField(o, "conclusion", Conclusions),
		CompletedAt: o.OptTime("completed_at"),
		Output:      codec.OptField(o, "output", decodeRunOutput),
		Actions:     codec.OptListField(o, "actions", DecodeAction),
	}
	return run, o.Err()
}

func DecodeCheckSuite(v codec.Value) (CheckSuite, error) {
	o := codec.AsObject(v)
	suite := CheckSuite{
		Id:         o.Uint64("id"),
		HeadBranch: o.OptString("head_branch"),
		HeadSha:    o.OptString("head_sha"),
		Status:     codec.OptEnumField(o, "status", Statuses),
		Conclusion: codec.OptEnumField(o, "conclusion", Conclusions),
	}
	return suite, o.Err()
}

func decodeRunOutput(v codec.Value) (RunOutput, error) {
	o := codec.AsObject(v)
	output := RunOutput{
		Title:            o.OptString("title"),
		Summary:          o.OptString("summary"),
		Text:             o.OptString("text"),
		AnnotationsCount: o.Uint64("annotations_count"),
		AnnotationsUrl:   o.String("annotations_url"),
	}
	return output, o.Err()
}

func DecodeOutput(v codec.Value) (Output, error) {
	o := codec.AsObject(v)
	output := Output{
		Title:       o.String("title"),
		Summary:     o.String("summary"),
		Text:        o.OptString("text"),
		Annotations: codec.OptListField(o, "annotations", DecodeAnnotation),
		Images:      codec.OptListField(o, "images", DecodeImage),
	}
	return output, o.Err()
}

func DecodeAction(v codec.Value) (Action, error) {
	o := codec.AsObject(v)
	action := Action{
		Label:       o.String("label"),
		Description: o.String("description"),
		Identifier:  o.String("identifier"),
	}
	return action, o.Err()
}

func DecodeAnnotation(v codec.Value) (Annotation, error) {
	o := codec.AsObject(v)
	annotation := Annotation{
		Path:            o.String("path"),
		StartLine:       o.Uint32("start_line"),
		EndLine:         o.Uint32("end_line"),
		StartColumn:     o.OptUint32("start_column"),
		EndColumn:       o.OptUint32("end_column"),
		AnnotationLevel: codec.EnumField(o, "annotation_level", AnnotationLevels),
		Message:         o.String("message"),
		Title:           o.OptString("title"),
		RawDetails:      o.OptString("raw_details"),
	}
	return annotation, o.Err()
}

func DecodeImage(v codec.Value) (Image, error) {
	o := codec.AsObject(v)
	image := Image{
		Alt:      o.String("alt"),
		ImageUrl: o.String("image_url"),
		Caption:  o.OptString("caption"),
	}
	return image, o.Err()
}
