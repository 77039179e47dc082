// Package estimator turns a price request into the feature vector the trained
// model expects and returns the model's rounded estimate.
//
// An Estimator is built from loaded artifacts and never mutated, so a single
// value is shared by all request goroutines without locking. Service adds the
// unloaded -> loaded gate in front of it for the HTTP layer and the CLI.
package estimator
