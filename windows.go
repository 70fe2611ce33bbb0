package selenium

import (
	"fmt"

	webdriver "github.com/tebeka/selenium"

	"github.com/fitting/fitting-selenium/fitting"
)

const openScript = "window.open(arguments[0]);"

// CreateWindow opens location in a new browser window by script and returns
// that window. The window that was current beforehand becomes its parent.
// The WebDriver context is not switched to the new window; call Activate for
// that.
func CreateWindow(wd webdriver.WebDriver, location string) (*Window, error) {
	before, err := wd.WindowHandles()
	if err != nil {
		return nil, fmt.Errorf("listing windows: %w", err)
	}
	current, err := wd.CurrentWindowHandle()
	if err != nil {
		return nil, fmt.Errorf("reading current window: %w", err)
	}

	if _, err := wd.ExecuteScript(openScript, []interface{}{location}); err != nil {
		return nil, fitting.NewError(fmt.Sprintf("opening window for %q", location), err)
	}

	after, err := wd.WindowHandles()
	if err != nil {
		return nil, fmt.Errorf("listing windows: %w", err)
	}
	created := newHandles(before, after)
	if len(created) != 1 {
		return nil, fitting.NewError(fmt.Sprintf("There were %d windows created, while 1 was expected.", len(created)), nil)
	}
	debugLog("opened window %s for %q from %s", created[0], location, current)
	return NewWindow(created[0], current, wd), nil
}

// SwitchToWindow makes the window with the given handle current. The window
// that was current beforehand becomes the parent of the returned window.
func SwitchToWindow(wd webdriver.WebDriver, handle string) (*Window, error) {
	current, err := wd.CurrentWindowHandle()
	if err != nil {
		return nil, fmt.Errorf("reading current window: %w", err)
	}
	if err := wd.SwitchWindow(handle); err != nil {
		if isRemoteError(err, noSuchWindow) {
			return nil, fitting.NewError(fmt.Sprintf("There is no window with the current id[%s] present.", handle), fitting.ErrNoSuchWindow)
		}
		return nil, fmt.Errorf("switching to window %s: %w", handle, err)
	}
	id, err := wd.CurrentWindowHandle()
	if err != nil {
		return nil, fmt.Errorf("reading current window: %w", err)
	}
	debugLog("switched from window %s to %s", current, id)
	return NewWindow(id, current, wd), nil
}

// newHandles returns the handles in after that are not in before, in order.
func newHandles(before, after []string) []string {
	seen := make(map[string]bool, len(before))
	for _, h := range before {
		seen[h] = true
	}
	var created []string
	for _, h := range after {
		if !seen[h] {
			created = append(created, h)
		}
	}
	return created
}
