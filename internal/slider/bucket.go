package slider

import "strconv"

// Bucket is a discrete period selected by a range of slider positions.
type Bucket struct {
	Index int     `json:"index" yaml:"index"`
	ID    string  `json:"id" yaml:"id"`
	Label string  `json:"label" yaml:"label"`
	Edge  float64 `json:"edge" yaml:"edge"`
}

// buildBuckets creates one bucket per tick value, with bucket i
// starting at its tick. When the first tick lies above the domain
// minimum, a leading bucket starting at the minimum covers the gap, so
// no position is labelled with a later period than its own.
func buildBuckets(ticks []float64, domainMin float64, format Formatter) []Bucket {
	edges := ticks
	if len(ticks) == 0 || ticks[0] > domainMin {
		edges = append([]float64{domainMin}, ticks...)
	}
	buckets := make([]Bucket, len(edges))
	for i, v := range edges {
		buckets[i] = Bucket{
			Index: i,
			ID:    formatValue(v),
			Label: format(v),
			Edge:  v,
		}
	}
	return buckets
}

// bucketFor returns the last bucket whose edge is at or below v.
//
// With ticks 1, 2, 3, 4 this yields
//
//	v < 2      -> "1"
//	2 <= v < 3 -> "2"
//	3 <= v < 4 -> "3"
//	v == 4     -> "4"
//
// so a boundary belongs to the upper bucket and the domain maximum,
// when it is a tick, is a bucket of its own.
func bucketFor(buckets []Bucket, v float64) Bucket {
	idx := 0
	for i := 1; i < len(buckets); i++ {
		if v < buckets[i].Edge {
			break
		}
		idx = i
	}
	return buckets[idx]
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
