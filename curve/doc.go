// Package curve traces functions of one variable into device-space polylines.
//
// A trace samples the function once per device pixel along one axis of a
// Viewport. Undefined samples break the curve, and excursions outside the
// visible range are clipped at the viewport's edge, so a plot of 1/x over an
// interval containing 0 is two polylines, each running off the edge it
// diverges toward.
//
// Drawing the polylines is left to the caller.
package curve
