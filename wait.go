package selenium

import (
	"fmt"
	"strings"
	"time"

	webdriver "github.com/tebeka/selenium"

	"github.com/fitting/fitting-selenium/fitting"
)

// WaitInterval is the polling interval used while waiting for elements.
var WaitInterval = 250 * time.Millisecond

// elementPresent returns a condition that holds once selector matches an
// element whose text satisfies accept. A nil accept matches any element.
func elementPresent(by, value string, accept func(text string) bool) webdriver.Condition {
	return func(wd webdriver.WebDriver) (bool, error) {
		we, err := wd.FindElement(by, value)
		if err != nil {
			if isRemoteError(err, noSuchElement) {
				return false, nil
			}
			return false, err
		}
		if accept == nil {
			return true, nil
		}
		text, err := we.Text()
		if err != nil {
			// The element may have been replaced between lookup and read.
			if isRemoteError(err, "stale element") {
				return false, nil
			}
			return false, err
		}
		return accept(text), nil
	}
}

// waitForElement waits up to timeout seconds for selector to match an
// element in the current browsing context of wd.
func waitForElement(wd webdriver.WebDriver, selector fitting.Selector, timeout int) error {
	return waitFor(wd, selector, timeout, "", nil)
}

// waitForElementWithContent is like waitForElement but additionally requires
// the element text to contain content.
func waitForElementWithContent(wd webdriver.WebDriver, selector fitting.Selector, content string, timeout int) error {
	return waitFor(wd, selector, timeout, content, func(text string) bool {
		return strings.Contains(text, content)
	})
}

func waitFor(wd webdriver.WebDriver, selector fitting.Selector, timeout int, content string, accept func(string) bool) error {
	by, value, err := findMethod(selector)
	if err != nil {
		return err
	}
	if timeout < 0 {
		timeout = 0
	}
	d := time.Duration(timeout) * time.Second
	if err := wd.WaitWithTimeoutAndInterval(elementPresent(by, value, accept), d, WaitInterval); err != nil {
		if isTimeout(err) {
			msg := fmt.Sprintf("waiting %ds for %v", timeout, selector)
			if accept != nil {
				msg = fmt.Sprintf("waiting %ds for %v with content %q", timeout, selector, content)
			}
			return fitting.NewError(msg, fitting.ErrNoSuchElement)
		}
		return translate(err, "waiting for "+selector.String())
	}
	return nil
}

// isTimeout reports whether err is the WebDriver client giving up on a
// condition, as opposed to the condition itself failing.
func isTimeout(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "timeout after")
}
