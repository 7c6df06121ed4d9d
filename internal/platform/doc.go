// Package platform contains OS integration: locating the user's Downloads
// directory, and revealing or opening exported files with the desktop's own
// tools.
package platform
