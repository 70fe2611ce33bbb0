package selenium

import (
	"fmt"
	"strings"

	"github.com/fitting/fitting-selenium/fitting"
)

// WebDriver error codes as they appear in server replies.
const (
	noSuchElement = "no such element"
	noSuchWindow  = "no such window"
	noSuchFrame   = "no such frame"
)

// isRemoteError reports whether err is a WebDriver failure of the given kind.
// Both the legacy JSON wire protocol and W3C servers put the error code in
// the message, so a substring match covers both.
func isRemoteError(err error, code string) bool {
	return err != nil && strings.Contains(err.Error(), code)
}

// translate maps WebDriver failures onto the fitting sentinel errors. Other
// errors are wrapped unchanged.
func translate(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case isRemoteError(err, noSuchElement):
		return fmt.Errorf("%s: %w (%v)", what, fitting.ErrNoSuchElement, err)
	case isRemoteError(err, noSuchWindow):
		return fmt.Errorf("%s: %w (%v)", what, fitting.ErrNoSuchWindow, err)
	case isRemoteError(err, noSuchFrame):
		return fmt.Errorf("%s: %w (%v)", what, fitting.ErrNoSuchFrame, err)
	}
	return fmt.Errorf("%s: %w", what, err)
}
