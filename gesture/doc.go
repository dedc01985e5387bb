// Package gesture normalises mouse and touch input into a single pointer
// stream and classifies finished gestures.
//
// Sources (MouseSource, TouchSource) turn raw events into Pointer phases.
// Tracker records the origin and the running delta of the active gesture.
// Classifier decides whether a finished gesture was a tap (image
// navigation), a swipe (like or dislike), a short drag that snaps back, or a
// release over a control that must be discarded.
//
// Coordinates are viewport pixels. Terminal cells are converted by FromTcell
// using the configured cell size so thresholds keep their pixel meaning.
package gesture
