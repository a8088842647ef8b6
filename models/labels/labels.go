// Package labels models issue and pull request labels.
package labels

import "github.com/gruntwork-io/hubcodec/codec"

type Label struct {
	Id          *uint64
	NodeId      *string
	Url         string
	Name        string
	Color       string // six hex digits, no leading #
	Description *string
	Default     *bool
}

func DecodeLabel(v codec.Value) (Label, error) {
	o := codec.AsObject(v)
	label := Label{
		Id:          o.OptUint64("id"),
		NodeId:      o.OptString("node_id"),
		Url:         o.String("url"),
		Name:        o.String("name"),
		Color:       o.String("color"),
		Description: o.OptString("description"),
		Default:     o.OptBool("default"),
	}
	return label, o.Err()
}

// LabelOptions is the body of a create or update label request.
type LabelOptions struct {
	Name        string  `json:"name"`
	Color       string  `json:"color"`
	Description *string `json:"description,omitempty"`
}
