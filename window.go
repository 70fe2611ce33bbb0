package selenium

import (
	"errors"
	"fmt"
	"strings"

	webdriver "github.com/tebeka/selenium"

	"github.com/fitting/fitting-selenium/fitting"
)

// unknownElementID is an element id no page is expected to use. WaitSeconds
// waits for it in order to block without sleeping outside the driver.
const unknownElementID = "unknown_element_id_x3asdf4hd462345"

// topFrame is recorded as the selected frame after switching back to the
// main document.
var topFrame = fitting.ByName("_top")

const sizeScript = "return [window.outerWidth, window.outerHeight];"

// Window is a browser window driven over WebDriver. It implements
// fitting.ElementContainer.
type Window struct {
	id       string
	parentID string
	wd       webdriver.WebDriver

	frame fitting.Selector
}

var _ fitting.ElementContainer = (*Window)(nil)

// NewWindow returns the window with handle id. parentID is the handle of the
// window that opened it and may be empty.
func NewWindow(id, parentID string, wd webdriver.WebDriver) *Window {
	return &Window{id: id, parentID: parentID, wd: wd}
}

func (w *Window) ID() string {
	return w.id
}

func (w *Window) ParentID() string {
	return w.parentID
}

func (w *Window) HasParent() bool {
	return w.parentID != ""
}

// IsRootContainer is always true: frames are selected inside a window rather
// than modelled as containers of their own.
func (w *Window) IsRootContainer() bool {
	return true
}

// Implementation returns the WebDriver the window is driven by.
func (w *Window) Implementation() webdriver.WebDriver {
	return w.wd
}

func (w *Window) Refresh() error {
	return w.wd.Refresh()
}

// Size returns the outer size of the current window.
func (w *Window) Size() (fitting.Dimension, error) {
	v, err := w.wd.ExecuteScript(sizeScript, nil)
	if err != nil {
		return fitting.Dimension{}, fmt.Errorf("reading window size: %w", err)
	}
	return dimensionFromScript(v)
}

// SetSize resizes the current window.
func (w *Window) SetSize(size fitting.Dimension) error {
	if size.Width < 0 || size.Height < 0 {
		return fmt.Errorf("window size %dx%d: %w", size.Width, size.Height, fitting.ErrInvalidArgument)
	}
	return w.wd.ResizeWindow("", size.Width, size.Height)
}

func (w *Window) IsActive() (bool, error) {
	h, err := w.wd.CurrentWindowHandle()
	if err != nil {
		return false, err
	}
	return h == w.id, nil
}

// Activate makes w the current window. It also works when the current
// window has been closed.
func (w *Window) Activate() error {
	active, err := w.IsActive()
	if err != nil && !isRemoteError(err, noSuchWindow) {
		return err
	}
	if active {
		return nil
	}
	debugLog("activating window %s", w.id)
	return translate(w.wd.SwitchWindow(w.id), "activating window "+w.id)
}

// Close closes the current window.
func (w *Window) Close() error {
	return w.wd.Close()
}

func (w *Window) NavigateTo(uri string) error {
	return w.wd.Get(uri)
}

func (w *Window) CurrentLocation() (string, error) {
	return w.wd.CurrentURL()
}

func (w *Window) Title() (string, error) {
	return w.wd.Title()
}

// WaitSeconds blocks for the given number of seconds by waiting on an
// element that does not exist.
func (w *Window) WaitSeconds(seconds int) error {
	err := w.WaitForElement(fitting.ByID(unknownElementID), seconds)
	if errors.Is(err, fitting.ErrNoSuchElement) {
		return nil
	}
	return err
}

// IsTextPresent reports whether the text of the document body contains text.
func (w *Window) IsTextPresent(text string) (bool, error) {
	if text == "" {
		return true, nil
	}
	body, err := w.wd.FindElement(webdriver.ByTagName, "body")
	if err != nil {
		if isRemoteError(err, noSuchElement) {
			return false, nil
		}
		return false, err
	}
	content, err := body.Text()
	if err != nil {
		return false, err
	}
	return strings.Contains(content, text), nil
}

func (w *Window) FindElementsBy(selector fitting.Selector) ([]fitting.Element, error) {
	by, value, err := findMethod(selector)
	if err != nil {
		return nil, err
	}
	wes, err := w.wd.FindElements(by, value)
	if err != nil {
		return nil, translate(err, "finding "+selector.String())
	}
	return convertElements(wes), nil
}

func (w *Window) FindElementBy(selector fitting.Selector) (fitting.Element, error) {
	by, value, err := findMethod(selector)
	if err != nil {
		return nil, err
	}
	we, err := w.wd.FindElement(by, value)
	if err != nil {
		return nil, translate(err, "finding "+selector.String())
	}
	return &Element{we}, nil
}

func (w *Window) WaitForElement(selector fitting.Selector, timeout int) error {
	return waitForElement(w.wd, selector, timeout)
}

func (w *Window) WaitForElementWithContent(selector fitting.Selector, content string, timeout int) error {
	return waitForElementWithContent(w.wd, selector, content, timeout)
}

// SelectFrameWithID switches to the frame whose element has the given id.
func (w *Window) SelectFrameWithID(id string) error {
	return w.selectFrame(fitting.ByID(id))
}

// SelectFrameWithName switches to the frame whose element has the given
// name.
func (w *Window) SelectFrameWithName(name string) error {
	return w.selectFrame(fitting.ByName(name))
}

func (w *Window) selectFrame(selector fitting.Selector) error {
	by, value, err := findMethod(selector)
	if err != nil {
		return err
	}
	we, err := w.wd.FindElement(by, value)
	if err != nil {
		if isRemoteError(err, noSuchElement) {
			return fmt.Errorf("frame %v: %w", selector, fitting.ErrNoSuchFrame)
		}
		return fmt.Errorf("frame %v: %w", selector, err)
	}
	if err := w.wd.SwitchFrame(we); err != nil {
		return translate(err, "switching to frame "+selector.String())
	}
	w.frame = selector
	return nil
}

// SelectMainFrame switches back to the top-level document.
func (w *Window) SelectMainFrame() error {
	if err := w.wd.SwitchFrame(nil); err != nil {
		return translate(err, "switching to main frame")
	}
	w.frame = topFrame
	return nil
}

// SelectedFrame returns the selector the current frame was selected with.
// The second result is false if no frame has been selected yet.
func (w *Window) SelectedFrame() (fitting.Selector, bool) {
	return w.frame, w.frame != (fitting.Selector{})
}
