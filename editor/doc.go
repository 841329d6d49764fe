// Package editor builds free-form polylines for text to follow.
//
// An [Editor] is a state machine over a list of points. Taps add, insert or
// delete points depending on the current [Mode]; drags move them. Optional
// Chaikin smoothing previews the curve the text will run along, and
// [Editor.Render] draws the current state into an image.
//
// Every mutation notifies subscribed listeners synchronously so that the
// caller can redraw before handling the next gesture. Operations that find
// no point within their tolerance do nothing.
//
// An Editor is owned by one goroutine at a time.
package editor
