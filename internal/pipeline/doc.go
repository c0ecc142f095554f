// Package pipeline runs a documentation build as an explicit, ordered list
// of stages sharing one BuildContext.
//
// The standard order is discover, draft, render. Stages that read the draft
// marker must run after the draft stage; the Runner executes stages
// sequentially, so metadata written by one stage is visible to every later
// stage without locking.
package pipeline
