package fitting

import "fmt"

// SelectorKind is the strategy used to locate elements.
type SelectorKind int

// The supported selector strategies.
const (
	ID SelectorKind = iota + 1
	Name
	XPath
	CSS
	ClassName
	TagName
	LinkText
	PartialLinkText
)

var selectorKindNames = map[SelectorKind]string{
	ID:              "id",
	Name:            "name",
	XPath:           "xpath",
	CSS:             "css",
	ClassName:       "class",
	TagName:         "tag",
	LinkText:        "link",
	PartialLinkText: "partial-link",
}

func (k SelectorKind) String() string {
	if s, ok := selectorKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("SelectorKind(%d)", int(k))
}

// Selector identifies elements in a container.
type Selector struct {
	Kind  SelectorKind
	Value string
}

func (s Selector) String() string {
	return s.Kind.String() + "=" + s.Value
}

// ByID selects elements by their id attribute.
func ByID(id string) Selector { return Selector{ID, id} }

// ByName selects elements by their name attribute.
func ByName(name string) Selector { return Selector{Name, name} }

// ByXPath selects elements with an XPath expression.
func ByXPath(expr string) Selector { return Selector{XPath, expr} }

// ByCSS selects elements with a CSS selector.
func ByCSS(expr string) Selector { return Selector{CSS, expr} }

// ByClassName selects elements carrying the given class.
func ByClassName(class string) Selector { return Selector{ClassName, class} }

// ByTagName selects elements by tag.
func ByTagName(tag string) Selector { return Selector{TagName, tag} }

// ByLinkText selects anchors whose text equals text.
func ByLinkText(text string) Selector { return Selector{LinkText, text} }

// ByPartialLinkText selects anchors whose text contains text.
func ByPartialLinkText(text string) Selector { return Selector{PartialLinkText, text} }
