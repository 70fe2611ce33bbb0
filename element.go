package selenium

import (
	webdriver "github.com/tebeka/selenium"

	"github.com/fitting/fitting-selenium/fitting"
)

// Element is a fitting.Element backed by a WebDriver element.
type Element struct {
	we webdriver.WebElement
}

var _ fitting.Element = (*Element)(nil)

// NewElement wraps a WebDriver element.
func NewElement(we webdriver.WebElement) *Element {
	return &Element{we}
}

// WebElement returns the underlying WebDriver element.
func (e *Element) WebElement() webdriver.WebElement {
	return e.we
}

func (e *Element) Text() (string, error) {
	return e.we.Text()
}

func (e *Element) Attribute(name string) (string, error) {
	return e.we.GetAttribute(name)
}

func (e *Element) TagName() (string, error) {
	return e.we.TagName()
}

func (e *Element) Click() error {
	return e.we.Click()
}

func (e *Element) SendKeys(keys string) error {
	return e.we.SendKeys(keys)
}

func (e *Element) Clear() error {
	return e.we.Clear()
}

func (e *Element) Submit() error {
	return e.we.Submit()
}

func (e *Element) IsDisplayed() (bool, error) {
	return e.we.IsDisplayed()
}

func (e *Element) IsEnabled() (bool, error) {
	return e.we.IsEnabled()
}

func (e *Element) IsSelected() (bool, error) {
	return e.we.IsSelected()
}

func (e *Element) Size() (fitting.Dimension, error) {
	s, err := e.we.Size()
	if err != nil {
		return fitting.Dimension{}, err
	}
	return convertSize(s), nil
}

func (e *Element) Location() (fitting.Point, error) {
	p, err := e.we.Location()
	if err != nil {
		return fitting.Point{}, err
	}
	return convertPoint(p), nil
}

func (e *Element) FindElementBy(selector fitting.Selector) (fitting.Element, error) {
	by, value, err := findMethod(selector)
	if err != nil {
		return nil, err
	}
	we, err := e.we.FindElement(by, value)
	if err != nil {
		return nil, translate(err, "finding child "+selector.String())
	}
	return &Element{we}, nil
}

func (e *Element) FindElementsBy(selector fitting.Selector) ([]fitting.Element, error) {
	by, value, err := findMethod(selector)
	if err != nil {
		return nil, err
	}
	wes, err := e.we.FindElements(by, value)
	if err != nil {
		return nil, translate(err, "finding children "+selector.String())
	}
	return convertElements(wes), nil
}
