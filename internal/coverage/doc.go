// Package coverage turns classification records into a persona×stage coverage
// matrix and derives gaps, strengths and summary roll-ups from it.
//
// A Matrix moves through three states: Uninitialized (zero value), Initialized
// (after Initialize or Reset) and Scored (after a successful Aggregate). Every
// derived view is recomputed from the cells on each call and never cached.
package coverage
