// Package traffic models repository traffic statistics.
package traffic

import (
	"time"

	"github.com/gruntwork-io/hubcodec/codec"
)

type Referrer struct {
	Referrer string
	Count    uint64
	Uniques  uint64
}

type Path struct {
	Path    string
	Title   string
	Count   uint64
	Uniques uint64
}

type Views struct {
	Count   uint64
	Uniques uint64
	Views   []DataPoint
}

type Clones struct {
	Count   uint64
	Uniques uint64
	Clones  []DataPoint
}

// DataPoint is one bucket of a views or clones series.
type DataPoint struct {
	Timestamp time.Time
	Count     uint64
	Uniques   uint64
}

func DecodeReferrer(v codec.Value) (Referrer, error) {
	o := codec.AsObject(v)
	referrer := Referrer{
		Referrer: o.String("referrer"),
		Count:    o.Uint64("count"),
		Uniques:  o.Uint64("uniques"),
	}
	return referrer, o.Err()
}

func DecodePath(v codec.Value) (Path, error) {
	o := codec.AsObject(v)
	path := Path{
		Path:    o.String("path"),
		Title:   o.String("title"),
		Count:   o.Uint64("count"),
		Uniques: o.Uint64("uniques"),
	}
	return path, o.Err()
}

func DecodeViews(v codec.Value) (Views, error) {
	o := codec.AsObject(v)
	views := Views{
		Count:   o.Uint64("count"),
		Uniques: o.Uint64("uniques"),
		Views:   codec.ListField(o, "views", DecodeDataPoint),
	}
	return views, o.Err()
}

func DecodeClones(v codec.Value) (Clones, error) {
	o := codec.AsObject(v)
	clones := Clones{
		Count:   o.Uint64("count"),
		Uniques: o.Uint64("uniques"),
		Clones:  codec.ListField(o, "clones", DecodeDataPoint),
	}
	return clones, o.Err()
}

func DecodeDataPoint(v codec.Value) (DataPoint, error) {
	o := codec.AsObject(v)
	point := DataPoint{
		Timestamp: o.Time("timestamp"),
		Count:     o.Uint64("count"),
		Uniques:   o.Uint64("uniques"),
	}
	return point, o.Err()
}
