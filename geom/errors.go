package geom

import "errors"

// ErrNoIntersection indicates two circles (or a ray and a circle) have
// no common point: the centers are too far apart, one circle lies
// strictly inside the other, or the centers coincide.
var ErrNoIntersection = errors.New("geom: circles do not intersect")
