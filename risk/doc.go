// Package risk turns an account balance, a risk percentage and a stop
// distance into a lot size, and projects R-multiple take-profit levels.
//
// All functions are pure. Degenerate inputs such as a zero stop distance
// produce a zero lot size rather than an error.
package risk
