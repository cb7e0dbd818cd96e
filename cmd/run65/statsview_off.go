//go:build !statsview
// +build !statsview

package main

import "io"

// statsviewLaunch does nothing without the statsview build tag.
func statsviewLaunch(output io.Writer) {
}

// statsviewAvailable returns true when the server is compiled in.
func statsviewAvailable() bool {
	return false
}
