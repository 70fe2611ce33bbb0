package selenium

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/golang/glog"
	webdriver "github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
	"github.com/tebeka/selenium/firefox"
	"github.com/tebeka/selenium/log"
	"github.com/tebeka/selenium/sauce"

	"github.com/fitting/fitting-selenium/browser"
	"github.com/fitting/fitting-selenium/fitting"
)

// connectionURL is the address of a Selenium hub.
const connectionURL = "http://%s/wd/hub"

// newRemote is replaced in tests.
var newRemote = webdriver.NewRemote

// BrowserConnector is a session with a remote browser.
type BrowserConnector struct {
	wd                webdriver.WebDriver
	service           stopper
	javascriptEnabled bool
	// resetDebug is set when Build switched debugging on.
	resetDebug bool
}

// WebDriver returns the underlying WebDriver session. It is nil after
// Destroy.
func (c *BrowserConnector) WebDriver() webdriver.WebDriver {
	return c.wd
}

// JavascriptEnabled reports whether the session was requested with
// javascript support.
func (c *BrowserConnector) JavascriptEnabled() bool {
	return c.javascriptEnabled
}

// Window returns the window that is current in the session.
func (c *BrowserConnector) Window() (*Window, error) {
	if c.wd == nil {
		return nil, fitting.NewError("browser connector has been destroyed", nil)
	}
	h, err := c.wd.CurrentWindowHandle()
	if err != nil {
		return nil, fmt.Errorf("reading current window: %w", err)
	}
	return NewWindow(h, "", c.wd), nil
}

// CreateWindow opens location in a new window. It requires javascript.
func (c *BrowserConnector) CreateWindow(location string) (*Window, error) {
	if c.wd == nil {
		return nil, fitting.NewError("browser connector has been destroyed", nil)
	}
	if !c.javascriptEnabled {
		return nil, fitting.NewError("The provided Selenium web driver does not support javascript execution, a new window can not be created.", nil)
	}
	return CreateWindow(c.wd, location)
}

// SwitchToWindow makes the window with the given handle current.
func (c *BrowserConnector) SwitchToWindow(handle string) (*Window, error) {
	if c.wd == nil {
		return nil, fitting.NewError("browser connector has been destroyed", nil)
	}
	return SwitchToWindow(c.wd, handle)
}

// Destroy ends the session and stops the local WebDriver server, if one was
// started. Calling Destroy again is a no-op.
func (c *BrowserConnector) Destroy() error {
	var firstErr error
	if c.wd != nil {
		if err := c.wd.Quit(); err != nil {
			firstErr = fmt.Errorf("ending session: %w", err)
		}
		c.wd = nil
	}
	if c.service != nil {
		if err := c.service.Stop(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("stopping service: %w", err)
		}
		c.service = nil
	}
	c.javascriptEnabled = false
	if c.resetDebug {
		SetDebug(false)
		c.resetDebug = false
	}
	return firstErr
}

// abort releases what a failed Build had set up.
func (c *BrowserConnector) abort() {
	if err := c.Destroy(); err != nil {
		glog.Warningf("cleaning up after failed connect: %v", err)
	}
}

// NewBuilder returns a builder for a BrowserConnector with javascript
// enabled.
func NewBuilder() *Builder {
	return &Builder{
		javascript:   true,
		capabilities: make(map[string]interface{}),
	}
}

// Builder collects the settings of a BrowserConnector. Its methods return the
// builder itself so calls can be chained; problems are reported by Build.
type Builder struct {
	platform string
	browser  string
	version  string
	host     string
	port     int

	javascript   bool
	capabilities map[string]interface{}

	proxy    *webdriver.Proxy
	logging  log.Capabilities
	chrome   *chrome.Capabilities
	firefox  *firefox.Capabilities
	sauce    *sauce.Capabilities
	sauceURL string
	service  *ServiceConfig

	implicitWait    time.Duration
	pageLoadTimeout time.Duration
	debug           bool
}

// WithPlatform sets the platform the browser should run on. Operating system
// names such as "Windows 7" are accepted as well as platform values.
func (b *Builder) WithPlatform(platform string) *Builder {
	b.platform = platform
	return b
}

// OnPlatform is an alias of WithPlatform.
func (b *Builder) OnPlatform(platform string) *Builder {
	return b.WithPlatform(platform)
}

// WithBrowser sets the browser by name or alias, and its version. An empty
// version leaves the choice to the server.
func (b *Builder) WithBrowser(browser, version string) *Builder {
	b.browser = browser
	b.version = version
	return b
}

// OnHost sets the address of the Selenium server.
func (b *Builder) OnHost(host string, port int) *Builder {
	b.host = host
	b.port = port
	return b
}

// WithJavascriptEnabled sets whether the browser should run javascript.
func (b *Builder) WithJavascriptEnabled(enabled bool) *Builder {
	b.javascript = enabled
	return b
}

// WithCapability adds a custom capability. Custom capabilities override every
// other setting. Empty names are ignored.
func (b *Builder) WithCapability(name string, value interface{}) *Builder {
	if name != "" {
		b.capabilities[name] = value
	}
	return b
}

// WithProxy configures the browser's proxy.
func (b *Builder) WithProxy(p webdriver.Proxy) *Builder {
	b.proxy = &p
	return b
}

// WithLogLevel sets the level at which a component logs.
func (b *Builder) WithLogLevel(typ log.Type, level log.Level) *Builder {
	if b.logging == nil {
		b.logging = make(log.Capabilities)
	}
	b.logging[typ] = level
	return b
}

// WithChrome sets Chrome-specific options.
func (b *Builder) WithChrome(c chrome.Capabilities) *Builder {
	b.chrome = &c
	return b
}

// WithFirefox sets Firefox-specific options.
func (b *Builder) WithFirefox(f firefox.Capabilities) *Builder {
	b.firefox = &f
	return b
}

// OnSauceLabs runs the browser on Sauce Labs instead of the configured host.
func (b *Builder) OnSauceLabs(user, accessKey string, c sauce.Capabilities) *Builder {
	b.sauceURL = sauce.Addr(user, accessKey)
	b.sauce = &c
	return b
}

// WithService starts a local WebDriver server when the connector is built and
// connects to it instead of the configured host.
func (b *Builder) WithService(c ServiceConfig) *Builder {
	b.service = &c
	return b
}

// WithImplicitWait sets how long element lookups wait for elements to appear.
func (b *Builder) WithImplicitWait(d time.Duration) *Builder {
	b.implicitWait = d
	return b
}

// WithPageLoadTimeout sets how long navigation waits for a page to load.
func (b *Builder) WithPageLoadTimeout(d time.Duration) *Builder {
	b.pageLoadTimeout = d
	return b
}

// WithDebug logs the WebDriver traffic of the connector. Debugging is
// process-wide; it is switched off again by Destroy.
func (b *Builder) WithDebug(debug bool) *Builder {
	b.debug = debug
	return b
}

// Capabilities returns the capabilities the connector will request.
func (b *Builder) Capabilities() (webdriver.Capabilities, error) {
	br, err := browser.ForAlias(b.browser)
	if err != nil {
		return nil, err
	}
	caps := br.Capabilities()
	if b.version != "" {
		caps[browser.VersionKey] = b.version
	}
	if b.platform != "" {
		caps[browser.PlatformKey] = string(browser.ExtractPlatform(b.platform))
	}
	caps[browser.JavascriptEnabledKey] = b.javascript
	caps[browser.AcceptSSLCertsKey] = true

	if b.chrome != nil {
		caps.AddChrome(*b.chrome)
	}
	if b.firefox != nil {
		caps.AddFirefox(*b.firefox)
	}
	if b.proxy != nil {
		caps.AddProxy(*b.proxy)
	}
	if b.logging != nil {
		caps.AddLogging(b.logging)
	}
	if b.sauce != nil {
		m, err := b.sauce.ToMap()
		if err != nil {
			return nil, fmt.Errorf("sauce capabilities: %w", err)
		}
		for k, v := range m {
			caps[k] = v
		}
	}

	for k, v := range b.capabilities {
		caps[k] = v
	}
	return caps, nil
}

// URL returns the address of the server the connector will connect to.
func (b *Builder) URL() (string, error) {
	switch {
	case b.service != nil:
		return b.service.URL(), nil
	case b.sauceURL != "":
		return b.sauceURL, nil
	}
	if b.host == "" {
		return "", fmt.Errorf("selenium host not set: %w", fitting.ErrInvalidArgument)
	}
	if b.port <= 0 || b.port > 65535 {
		return "", fmt.Errorf("selenium port %d out of range: %w", b.port, fitting.ErrInvalidArgument)
	}
	u := fmt.Sprintf(connectionURL, net.JoinHostPort(b.host, strconv.Itoa(b.port)))
	if _, err := url.Parse(u); err != nil {
		return "", fmt.Errorf("unable to construct selenium url %s: %w", u, fitting.ErrInvalidArgument)
	}
	return u, nil
}

// Build starts a session with the configured settings.
func (b *Builder) Build() (*BrowserConnector, error) {
	caps, err := b.Capabilities()
	if err != nil {
		return nil, err
	}
	addr, err := b.URL()
	if err != nil {
		return nil, err
	}
	c := &BrowserConnector{javascriptEnabled: javascriptEnabled(caps)}
	if b.debug && !debugFlag {
		SetDebug(true)
		c.resetDebug = true
	}
	if b.service != nil {
		if err := b.service.validate(); err != nil {
			c.abort()
			return nil, fmt.Errorf("%v: %w", err, fitting.ErrInvalidArgument)
		}
		s, err := startService(*b.service)
		if err != nil {
			c.abort()
			return nil, fmt.Errorf("starting %v: %w", b.service.Kind, err)
		}
		debugLog("started %v on port %d", b.service.Kind, b.service.Port)
		c.service = s
	}

	debugLog("connecting to %s with capabilities %v", redact(addr), caps)
	wd, err := newRemote(caps, addr)
	if err != nil {
		c.abort()
		return nil, fmt.Errorf("connecting to %s: %w", redact(addr), err)
	}
	c.wd = wd

	if b.implicitWait > 0 {
		if err := wd.SetImplicitWaitTimeout(b.implicitWait); err != nil {
			c.abort()
			return nil, fmt.Errorf("setting implicit wait: %w", err)
		}
	}
	if b.pageLoadTimeout > 0 {
		if err := wd.SetPageLoadTimeout(b.pageLoadTimeout); err != nil {
			c.abort()
			return nil, fmt.Errorf("setting page load timeout: %w", err)
		}
	}
	glog.V(1).Infof("session %s started on %s", wd.SessionID(), redact(addr))
	return c, nil
}

// javascriptEnabled reads the javascriptEnabled capability the way Selenium
// servers do: absent means enabled, strings are parsed.
func javascriptEnabled(caps webdriver.Capabilities) bool {
	switch v := caps[browser.JavascriptEnabledKey].(type) {
	case nil:
		return true
	case bool:
		return v
	case string:
		enabled, _ := strconv.ParseBool(v)
		return enabled
	}
	return false
}

// redact hides credentials embedded in a server address.
func redact(addr string) string {
	u, err := url.Parse(addr)
	if err != nil || u.User == nil {
		return addr
	}
	u.User = url.User(u.User.Username())
	return u.String()
}
