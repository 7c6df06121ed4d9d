// Package export implements the two ways an artifact leaves the app: saving it
// as cloned-website.html and copying it to the clipboard. Every temporary
// resource an action creates is released before the action returns.
package export
