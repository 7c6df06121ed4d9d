package main

import (
	"github.com/ytget/site-cloner/internal/desktop"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	desktop.Run(version)
}
