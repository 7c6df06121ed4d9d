package controller

import "errors"

var errNoClient = errors.New("no cloning service configured")
