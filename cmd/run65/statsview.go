//go:build statsview
// +build statsview

package main

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

const statsAddress = "localhost:12650"

// statsviewLaunch starts the statistics server in a new goroutine.
func statsviewLaunch(output io.Writer) {
	go func() {
		viewer.SetConfiguration(viewer.WithAddr(statsAddress))
		mgr := statsview.New()
		mgr.Start()
	}()

	fmt.Fprintf(output, "stats server available at %s/debug/statsview\n", statsAddress)
}

// statsviewAvailable returns true when the server is compiled in.
func statsviewAvailable() bool {
	return true
}
