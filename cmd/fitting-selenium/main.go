// Binary fitting-selenium checks WebDriver connectivity and fetches driver
// binaries for local runs.
package main

import (
	"context"
	"os"

	"github.com/golang/glog"
)

func main() {
	defer glog.Flush()
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		glog.Errorf("%v", err)
		glog.Flush()
		os.Exit(1)
	}
}
