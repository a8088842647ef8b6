package git

import (
	"github.com/gruntwork-io/hubcodec/codec"
)

type Reference struct {
	Ref    string
	Url    string
	Object Object
}

type Object struct {
	Type ObjectType
	Sha  string
	Url  string
}

// ReferenceResponse is the answer to a single-reference lookup. When no reference matches
// exactly, the API answers with every reference that starts with the requested name instead.
// Exactly one of Exact and StartWith is set.
type ReferenceResponse struct {
	Exact     *Reference
	StartWith []Reference
}

func (r ReferenceResponse) IsExact() bool {
	return r.Exact != nil
}

// References flattens the response into a list.
func (r ReferenceResponse) References() []Reference {
	if r.Exact != nil {
		return []Reference{*r.Exact}
	}
	return r.StartWith
}

func DecodeReferenceResponse(v codec.Value) (ReferenceResponse, error) {
	if v.IsArray() {
		refs, err := codec.List(v, DecodeReference)
		if err != nil {
			return ReferenceResponse{}, err
		}
		return ReferenceResponse{StartWith: refs}, nil
	}
	ref, err := DecodeReference(v)
	if err != nil {
		return ReferenceResponse{}, err
	}
	return ReferenceResponse{Exact: &ref}, nil
}

func DecodeReference(v codec.Value) (Reference, error) {
	o := codec.AsObject(v)
	ref := Reference{
		Ref:    o.String("ref"),
		Url:    o.String("url"),
		Object: codec.Field(o, "object", DecodeObject),
	}
	return ref, o.Err()
}

func DecodeObject(v codec.Value) (Object, error) {
	o := codec.AsObject(v)
	object := Object{
		Type: codec.EnumField(o, "type", ObjectTypes),
		Sha:  o.String("sha"),
		Url:  o.String("url"),
	}
	return object, o.Err()
}
