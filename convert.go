package selenium

import (
	"fmt"

	webdriver "github.com/tebeka/selenium"

	"github.com/fitting/fitting-selenium/fitting"
)

var findMethods = map[fitting.SelectorKind]string{
	fitting.ID:              webdriver.ByID,
	fitting.Name:            webdriver.ByName,
	fitting.XPath:           webdriver.ByXPATH,
	fitting.CSS:             webdriver.ByCSSSelector,
	fitting.ClassName:       webdriver.ByClassName,
	fitting.TagName:         webdriver.ByTagName,
	fitting.LinkText:        webdriver.ByLinkText,
	fitting.PartialLinkText: webdriver.ByPartialLinkText,
}

// findMethod converts a selector to the WebDriver "using" strategy and value.
func findMethod(s fitting.Selector) (by, value string, err error) {
	by, ok := findMethods[s.Kind]
	if !ok {
		return "", "", fmt.Errorf("%v: %w", s, fitting.ErrUnsupportedSelector)
	}
	return by, s.Value, nil
}

func convertSize(s *webdriver.Size) fitting.Dimension {
	if s == nil {
		return fitting.Dimension{}
	}
	return fitting.Dimension{Width: s.Width, Height: s.Height}
}

func convertPoint(p *webdriver.Point) fitting.Point {
	if p == nil {
		return fitting.Point{}
	}
	return fitting.Point{X: p.X, Y: p.Y}
}

func convertElements(wes []webdriver.WebElement) []fitting.Element {
	elems := make([]fitting.Element, len(wes))
	for i, we := range wes {
		elems[i] = &Element{we}
	}
	return elems
}

// dimensionFromScript decodes the [width, height] array returned by a size
// script. JSON numbers arrive as float64.
func dimensionFromScript(v interface{}) (fitting.Dimension, error) {
	arr, ok := v.([]interface{})
	if !ok || len(arr) != 2 {
		return fitting.Dimension{}, fmt.Errorf("unexpected window size %v", v)
	}
	var wh [2]int
	for i, n := range arr {
		f, ok := n.(float64)
		if !ok {
			return fitting.Dimension{}, fmt.Errorf("unexpected window size %v", v)
		}
		wh[i] = int(f)
	}
	return fitting.Dimension{Width: wh[0], Height: wh[1]}, nil
}
