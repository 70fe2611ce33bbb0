package selenium

import (
	"errors"
	"fmt"
	"time"

	webdriver "github.com/tebeka/selenium"
)

func init() {
	WaitInterval = 5 * time.Millisecond
}

var errNoSuchElement = errors.New("no such element: Unable to locate element")

// fakeWD is an in-memory WebDriver. Methods the tests do not need are left to
// the embedded nil interface and panic when called.
type fakeWD struct {
	webdriver.WebDriver

	sessionID string
	handles   []string
	current   string
	url       string
	title     string
	size      [2]int

	// elements are keyed by findKey(by, value).
	elements map[string][]*fakeElement
	// appearAfter hides an element until it has been looked up that many
	// times.
	appearAfter map[string]int
	lookups     map[string]int

	// onScript handles ExecuteScript; it defaults to returning size.
	onScript func(script string, args []interface{}) (interface{}, error)
	scripts  []string

	errs map[string]error

	frames       []interface{}
	switches     []string
	resizes      []string
	gets         []string
	refreshes    int
	closes       int
	quits        int
	implicitWait time.Duration
	pageLoad     time.Duration
}

func newFakeWD(handles ...string) *fakeWD {
	wd := &fakeWD{
		sessionID:   "session-1",
		handles:     handles,
		size:        [2]int{1024, 768},
		elements:    make(map[string][]*fakeElement),
		appearAfter: make(map[string]int),
		lookups:     make(map[string]int),
		errs:        make(map[string]error),
	}
	if len(handles) > 0 {
		wd.current = handles[0]
	}
	return wd
}

func findKey(by, value string) string {
	return by + "=" + value
}

func (wd *fakeWD) add(by, value string, elems ...*fakeElement) {
	wd.elements[findKey(by, value)] = append(wd.elements[findKey(by, value)], elems...)
}

func (wd *fakeWD) SessionID() string {
	return wd.sessionID
}

func (wd *fakeWD) Quit() error {
	wd.quits++
	return wd.errs["Quit"]
}

func (wd *fakeWD) SetImplicitWaitTimeout(d time.Duration) error {
	wd.implicitWait = d
	return wd.errs["SetImplicitWaitTimeout"]
}

func (wd *fakeWD) SetPageLoadTimeout(d time.Duration) error {
	wd.pageLoad = d
	return wd.errs["SetPageLoadTimeout"]
}

func (wd *fakeWD) CurrentWindowHandle() (string, error) {
	if err := wd.errs["CurrentWindowHandle"]; err != nil {
		return "", err
	}
	return wd.current, nil
}

func (wd *fakeWD) WindowHandles() ([]string, error) {
	if err := wd.errs["WindowHandles"]; err != nil {
		return nil, err
	}
	return append([]string(nil), wd.handles...), nil
}

func (wd *fakeWD) CurrentURL() (string, error) {
	return wd.url, nil
}

func (wd *fakeWD) Title() (string, error) {
	return wd.title, nil
}

func (wd *fakeWD) Get(url string) error {
	wd.gets = append(wd.gets, url)
	wd.url = url
	return nil
}

func (wd *fakeWD) Refresh() error {
	wd.refreshes++
	return nil
}

func (wd *fakeWD) Close() error {
	wd.closes++
	return nil
}

func (wd *fakeWD) SwitchWindow(name string) error {
	for _, h := range wd.handles {
		if h == name {
			wd.switches = append(wd.switches, name)
			wd.current = name
			return nil
		}
	}
	return fmt.Errorf("no such window: %s", name)
}

func (wd *fakeWD) SwitchFrame(frame interface{}) error {
	if err := wd.errs["SwitchFrame"]; err != nil {
		return err
	}
	wd.frames = append(wd.frames, frame)
	return nil
}

func (wd *fakeWD) ResizeWindow(name string, width, height int) error {
	wd.resizes = append(wd.resizes, fmt.Sprintf("%s:%dx%d", name, width, height))
	wd.size = [2]int{width, height}
	return nil
}

func (wd *fakeWD) ExecuteScript(script string, args []interface{}) (interface{}, error) {
	wd.scripts = append(wd.scripts, script)
	if wd.onScript != nil {
		return wd.onScript(script, args)
	}
	return []interface{}{float64(wd.size[0]), float64(wd.size[1])}, nil
}

func (wd *fakeWD) lookup(by, value string) ([]*fakeElement, error) {
	if err := wd.errs["FindElement"]; err != nil {
		return nil, err
	}
	key := findKey(by, value)
	wd.lookups[key]++
	if wd.lookups[key] <= wd.appearAfter[key] {
		return nil, nil
	}
	return wd.elements[key], nil
}

func (wd *fakeWD) FindElement(by, value string) (webdriver.WebElement, error) {
	elems, err := wd.lookup(by, value)
	if err != nil {
		return nil, err
	}
	if len(elems) == 0 {
		return nil, errNoSuchElement
	}
	return elems[0], nil
}

func (wd *fakeWD) FindElements(by, value string) ([]webdriver.WebElement, error) {
	elems, err := wd.lookup(by, value)
	if err != nil {
		return nil, err
	}
	wes := make([]webdriver.WebElement, len(elems))
	for i, e := range elems {
		wes[i] = e
	}
	return wes, nil
}

// WaitWithTimeoutAndInterval polls the same way the remote client does.
func (wd *fakeWD) WaitWithTimeoutAndInterval(condition webdriver.Condition, timeout, interval time.Duration) error {
	start := time.Now()
	for {
		done, err := condition(wd)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		if elapsed := time.Since(start); elapsed > timeout {
			return fmt.Errorf("timeout after %v", elapsed)
		}
		time.Sleep(interval)
	}
}

// fakeElement is an in-memory WebElement.
type fakeElement struct {
	webdriver.WebElement

	id    string
	tag   string
	attrs map[string]string
	// texts are returned by successive Text calls; the last one sticks.
	texts    []string
	children map[string][]*fakeElement
	size     webdriver.Size
	location webdriver.Point

	displayed, enabled, selected bool

	clicks  int
	keys    []string
	cleared int
	submits int
}

func newFakeElement(id string, texts ...string) *fakeElement {
	return &fakeElement{
		id:        id,
		tag:       "div",
		attrs:     map[string]string{"id": id},
		texts:     texts,
		children:  make(map[string][]*fakeElement),
		displayed: true,
		enabled:   true,
	}
}

func (e *fakeElement) Text() (string, error) {
	switch len(e.texts) {
	case 0:
		return "", nil
	case 1:
		return e.texts[0], nil
	}
	t := e.texts[0]
	e.texts = e.texts[1:]
	return t, nil
}

func (e *fakeElement) GetAttribute(name string) (string, error) {
	v, ok := e.attrs[name]
	if !ok {
		return "", fmt.Errorf("nil return value")
	}
	return v, nil
}

func (e *fakeElement) TagName() (string, error)            { return e.tag, nil }
func (e *fakeElement) IsDisplayed() (bool, error)          { return e.displayed, nil }
func (e *fakeElement) IsEnabled() (bool, error)            { return e.enabled, nil }
func (e *fakeElement) IsSelected() (bool, error)           { return e.selected, nil }
func (e *fakeElement) Size() (*webdriver.Size, error)      { return &e.size, nil }
func (e *fakeElement) Location() (*webdriver.Point, error) { return &e.location, nil }

func (e *fakeElement) Click() error {
	e.clicks++
	return nil
}

func (e *fakeElement) SendKeys(keys string) error {
	e.keys = append(e.keys, keys)
	return nil
}

func (e *fakeElement) Clear() error {
	e.cleared++
	return nil
}

func (e *fakeElement) Submit() error {
	e.submits++
	return nil
}

func (e *fakeElement) FindElement(by, value string) (webdriver.WebElement, error) {
	elems := e.children[findKey(by, value)]
	if len(elems) == 0 {
		return nil, errNoSuchElement
	}
	return elems[0], nil
}

func (e *fakeElement) FindElements(by, value string) ([]webdriver.WebElement, error) {
	elems := e.children[findKey(by, value)]
	wes := make([]webdriver.WebElement, len(elems))
	for i, c := range elems {
		wes[i] = c
	}
	return wes, nil
}
