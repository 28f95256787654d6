// Package wizard implements the sign-up flow: the step state machine, the
// account validation form, the bank picker and the chat transcript.
//
// Everything in this package is driven from a single event loop. Nothing
// here starts goroutines; service calls are issued by the caller using the
// Request handles this package hands out, and their results are fed back in.
// Pacing delays go through a Scheduler so the caller decides on which loop
// callbacks run.
package wizard
