// Package model defines the data shared by the controller and the UI: the
// request phase enum and the RequestState snapshot. Structures are plain
// values so the UI can render a snapshot without holding any lock.
package model
