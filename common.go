package selenium

import (
	"fmt"

	"github.com/golang/glog"
	webdriver "github.com/tebeka/selenium"
)

var debugFlag = false

// SetDebug toggles verbose logging of connector activity, including the raw
// WebDriver traffic of the underlying client.
func SetDebug(debug bool) {
	debugFlag = debug
	webdriver.SetDebug(debug)
}

// debugLog logs at verbosity 1, or unconditionally when debugging is on.
func debugLog(format string, args ...interface{}) {
	if debugFlag {
		glog.InfoDepth(1, fmt.Sprintf(format, args...))
		return
	}
	if glog.V(1) {
		glog.InfoDepth(1, fmt.Sprintf(format, args...))
	}
}
