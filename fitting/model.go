package fitting

// Dimension is the width and height of a window or element.
type Dimension struct {
	Width, Height int
}

// Point is a 2D position in page coordinates.
type Point struct {
	X, Y int
}

// Element is a single element found in an ElementContainer.
type Element interface {
	// Text returns the visible text of the element.
	Text() (string, error)
	// Attribute returns the named attribute of the element.
	Attribute(name string) (string, error)
	// TagName returns the element's tag name.
	TagName() (string, error)

	Click() error
	SendKeys(keys string) error
	Clear() error
	Submit() error

	IsDisplayed() (bool, error)
	IsEnabled() (bool, error)
	IsSelected() (bool, error)

	// Size returns the rendered size of the element.
	Size() (Dimension, error)
	// Location returns the element's position on the page.
	Location() (Point, error)

	// FindElementBy finds exactly one child element.
	FindElementBy(selector Selector) (Element, error)
	// FindElementsBy finds all matching child elements.
	FindElementsBy(selector Selector) ([]Element, error)
}

// ElementContainer is anything elements can be looked up in: a browser
// window, a popup or a frame inside one of them.
type ElementContainer interface {
	// ID returns the identifier of the container.
	ID() string
	// ParentID returns the identifier of the container that opened this one,
	// or the empty string.
	ParentID() string
	// HasParent reports whether ParentID is set.
	HasParent() bool
	// IsRootContainer reports whether the container is a top-level one.
	IsRootContainer() bool

	// Refresh reloads the current document.
	Refresh() error
	// Size returns the outer size of the container.
	Size() (Dimension, error)
	// SetSize resizes the container.
	SetSize(size Dimension) error
	// IsActive reports whether the container currently has focus.
	IsActive() (bool, error)
	// Activate gives the container focus if it does not have it already.
	Activate() error
	// Close closes the container.
	Close() error

	// NavigateTo loads uri in the container.
	NavigateTo(uri string) error
	// CurrentLocation returns the URI of the loaded document.
	CurrentLocation() (string, error)
	// Title returns the title of the loaded document.
	Title() (string, error)

	// WaitSeconds blocks for the given number of seconds.
	WaitSeconds(seconds int) error
	// IsTextPresent reports whether text occurs in the document body.
	IsTextPresent(text string) (bool, error)

	// FindElementsBy returns all elements matching selector.
	FindElementsBy(selector Selector) ([]Element, error)
	// FindElementBy returns the first element matching selector. It returns
	// an error wrapping ErrNoSuchElement if there is none.
	FindElementBy(selector Selector) (Element, error)
	// WaitForElement waits up to timeout seconds for an element matching
	// selector to appear.
	WaitForElement(selector Selector, timeout int) error
	// WaitForElementWithContent waits up to timeout seconds for an element
	// matching selector whose text contains content.
	WaitForElementWithContent(selector Selector, content string, timeout int) error
}
