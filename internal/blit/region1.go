package blit

// Region1 is a half-open one-dimensional mapping from a source interval to a
// destination interval, sharing one extent. A negative Extent is a legal
// input form meaning the origins mark the far edge of the rectangle; after
// Normalize, Extent is always non-negative.
type Region1 struct {
	// Origin is the destination start.
	Origin int
	// Extent is the shared length of the destination and source intervals.
	Extent int
	// OriginSource is the source start.
	OriginSource int
}

// Normalize ensures Extent is non-negative. When Extent arrives negative the
// origins mark the far edge of the rectangle rather than its near edge;
// normalizing flips the sign and walks both origins back by the flipped
// extent so that Origin/OriginSource once again mark the near edge.
func (r *Region1) Normalize() {
	if r.Extent < 0 {
		r.Extent = -r.Extent
		r.Origin -= r.Extent
		r.OriginSource -= r.Extent
	}
}

// Slip advances both origins forward by the minimum non-negative amount that
// makes them non-negative, reducing Extent by the same amount. It reports
// false when the region lies entirely off either negative axis, in which
// case r is left unmodified in any way that matters to the caller (the blit
// is abandoned).
func (r *Region1) Slip() bool {
	offset := 0
	if r.Origin < 0 {
		offset = -r.Origin
	}
	if -r.OriginSource > offset {
		offset = -r.OriginSource
	}
	if offset >= r.Extent {
		return false
	}
	r.Origin += offset
	r.OriginSource += offset
	r.Extent -= offset
	return true
}

// Clip shrinks Extent to fit within bound, failing when bound is
// non-positive. bound is computed by the caller, typically as
// destWidth-Origin, sourceWidth-OriginSource, or the y-axis equivalents.
func (r *Region1) Clip(bound int) bool {
	if bound <= 0 {
		return false
	}
	if bound < r.Extent {
		r.Extent = bound
	}
	return true
}
