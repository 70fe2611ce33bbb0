package selenium

import (
	"fmt"
	"io"
	"strings"

	webdriver "github.com/tebeka/selenium"

	"github.com/fitting/fitting-selenium/fitting"
)

// ServiceKind selects which WebDriver server a ServiceConfig starts.
type ServiceKind int

// The WebDriver servers that can be started locally.
const (
	ChromeDriver ServiceKind = iota + 1
	GeckoDriver
	SeleniumServer
)

func (k ServiceKind) String() string {
	switch k {
	case ChromeDriver:
		return "chromedriver"
	case GeckoDriver:
		return "geckodriver"
	case SeleniumServer:
		return "selenium-server"
	}
	return fmt.Sprintf("ServiceKind(%d)", int(k))
}

// ParseServiceKind returns the kind whose String form is name.
func ParseServiceKind(name string) (ServiceKind, error) {
	for _, k := range []ServiceKind{ChromeDriver, GeckoDriver, SeleniumServer} {
		if strings.EqualFold(k.String(), strings.TrimSpace(name)) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown service %q: %w", name, fitting.ErrInvalidArgument)
}

// ServiceConfig describes a WebDriver server to start on the local machine
// before connecting to it.
type ServiceConfig struct {
	Kind ServiceKind
	// Path is the driver binary, or the server JAR for SeleniumServer.
	Path string
	// Port the server listens on.
	Port int
	// FrameBuffer starts an X virtual frame buffer for the browser.
	FrameBuffer bool
	// Output receives the server's logs. Nil discards them.
	Output io.Writer
	// Options are passed to the server unchanged, after the ones derived
	// from the fields above.
	Options []webdriver.ServiceOption
}

// stopper is the part of *webdriver.Service the connector needs.
type stopper interface {
	Stop() error
}

// startService is replaced in tests.
var startService = func(c ServiceConfig) (stopper, error) {
	opts := c.options()
	var (
		s   *webdriver.Service
		err error
	)
	switch c.Kind {
	case ChromeDriver:
		s, err = webdriver.NewChromeDriverService(c.Path, c.Port, opts...)
	case GeckoDriver:
		s, err = webdriver.NewGeckoDriverService(c.Path, c.Port, opts...)
	case SeleniumServer:
		s, err = webdriver.NewSeleniumService(c.Path, c.Port, opts...)
	default:
		return nil, fmt.Errorf("unknown service kind %v", c.Kind)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (c ServiceConfig) options() []webdriver.ServiceOption {
	var opts []webdriver.ServiceOption
	if c.FrameBuffer {
		opts = append(opts, webdriver.StartFrameBuffer())
	}
	if c.Output != nil {
		opts = append(opts, webdriver.Output(c.Output))
	}
	return append(opts, c.Options...)
}

// URL returns the address the started server accepts sessions on.
func (c ServiceConfig) URL() string {
	if c.Kind == GeckoDriver {
		return fmt.Sprintf("http://localhost:%d", c.Port)
	}
	return fmt.Sprintf("http://localhost:%d/wd/hub", c.Port)
}

func (c ServiceConfig) validate() error {
	switch {
	case c.Kind < ChromeDriver || c.Kind > SeleniumServer:
		return fmt.Errorf("unknown service kind %v", c.Kind)
	case c.Path == "":
		return fmt.Errorf("%v: empty path", c.Kind)
	case c.Port <= 0 || c.Port > 65535:
		return fmt.Errorf("%v: port %d out of range", c.Kind, c.Port)
	}
	return nil
}
