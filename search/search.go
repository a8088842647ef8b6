// Package search decodes the result envelope shared by the search endpoints.
//
// Repository, issue and pull request searches answer with the same three-member envelope and
// differ only in the shape of their items, so Result is generic over the item type and the item
// decoder is supplied by the caller.
package search

import (
	"github.com/gruntwork-io/hubcodec/codec"
)

// Result is one page of search results. TotalCount is the size of the full result set and is
// usually larger than len(Items).
type Result[T any] struct {
	TotalCount        uint64
	IncompleteResults bool
	Items             []T
}

// DecodeResult decodes a search envelope, decoding each entry of items with item.
func DecodeResult[T any](v codec.Value, item codec.DecodeFunc[T]) (Result[T], error) {
	o := codec.AsObject(v)
	result := Result[T]{
		TotalCount:        o.Uint64("total_count"),
		IncompleteResults: o.Bool("incomplete_results"),
		Items:             codec.ListField(o, "items", item),
	}
	if err := o.Err(); err != nil {
		return Result[T]{}, err
	}
	return result, nil
}

// Of adapts DecodeResult to a DecodeFunc for use with codec.Decode and the response package.
func Of[T any](item codec.DecodeFunc[T]) codec.DecodeFunc[Result[T]] {
	return func(v codec.Value) (Result[T], error) {
		return DecodeResult(v, item)
	}
}

func DecodeRepos(v codec.Value) (Result[ReposItem], error) {
	return DecodeResult(v, DecodeReposItem)
}

func DecodeIssues(v codec.Value) (Result[IssuesItem], error) {
	return DecodeResult(v, DecodeIssuesItem)
}

func DecodePulls(v codec.Value) (Result[PullsItem], error) {
	return DecodeResult(v, DecodePullsItem)
}
