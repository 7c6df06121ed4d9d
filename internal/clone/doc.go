// Package clone talks to the remote cloning service. It validates user input
// into a URL, issues a single POST /clone per submission and normalizes every
// outcome into either the returned HTML or an *Error of a fixed kind.
package clone
