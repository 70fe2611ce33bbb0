// Package browser maps browser names and their common aliases onto the
// default WebDriver capabilities for that browser, and resolves platform
// names the way Selenium servers expect them.
package browser

import (
	"fmt"
	"strings"

	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
	"github.com/tebeka/selenium/firefox"

	"github.com/fitting/fitting-selenium/fitting"
)

// Capability keys shared by all browsers.
const (
	NameKey              = "browserName"
	VersionKey           = "version"
	PlatformKey          = "platform"
	JavascriptEnabledKey = "javascriptEnabled"
	AcceptSSLCertsKey    = "acceptSslCerts"
)

// Browser describes a browser a Selenium server can start.
type Browser struct {
	// Name is the canonical name of the browser.
	Name string
	// Aliases are the other names the browser can be referred to by.
	Aliases []string
	// DriverName is the value of the browserName capability.
	DriverName string
	// Platform is the default platform for the browser.
	Platform Platform
}

// The known browsers.
var (
	Firefox          = Browser{"firefox", []string{"ff", "mozilla"}, "firefox", Any}
	Chrome           = Browser{"chrome", []string{"googlechrome", "google chrome"}, "chrome", Any}
	InternetExplorer = Browser{"internet explorer", []string{"ie", "iexplore", "internetexplorer"}, "internet explorer", Windows}
	Edge             = Browser{"edge", []string{"microsoftedge"}, "MicrosoftEdge", Windows}
	Safari           = Browser{"safari", nil, "safari", Mac}
	Opera            = Browser{"opera", nil, "opera", Any}
	HTMLUnit         = Browser{"htmlunit", nil, "htmlunit", Any}
	Android          = Browser{"android", nil, "android", AndroidPlatform}
	IPhone           = Browser{"iphone", nil, "iPhone", Mac}
	IPad             = Browser{"ipad", nil, "iPad", Mac}
	PhantomJS        = Browser{"phantomjs", []string{"phantom"}, "phantomjs", Any}
)

// All lists every known browser.
var All = []Browser{
	Firefox, Chrome, InternetExplorer, Edge, Safari, Opera, HTMLUnit, Android, IPhone, IPad, PhantomJS,
}

var byAlias = make(map[string]Browser)

func init() {
	for _, b := range All {
		byAlias[b.Name] = b
		for _, a := range b.Aliases {
			byAlias[a] = b
		}
	}
}

// ForAlias returns the browser known under alias. The lookup ignores case and
// surrounding whitespace.
func ForAlias(alias string) (Browser, error) {
	b, ok := byAlias[strings.ToLower(strings.TrimSpace(alias))]
	if !ok {
		return Browser{}, fmt.Errorf("unknown browser %q: %w", alias, fitting.ErrInvalidArgument)
	}
	return b, nil
}

// Capabilities returns a new set of default capabilities for the browser.
func (b Browser) Capabilities() selenium.Capabilities {
	caps := selenium.Capabilities{
		NameKey:     b.DriverName,
		VersionKey:  "",
		PlatformKey: string(b.Platform),
	}
	switch b.Name {
	case Chrome.Name:
		caps.AddChrome(chrome.Capabilities{})
	case Firefox.Name:
		caps.AddFirefox(firefox.Capabilities{})
	}
	return caps
}

func (b Browser) String() string {
	return b.Name
}
