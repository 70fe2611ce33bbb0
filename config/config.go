// Package config reads connection settings from the environment.
package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/tebeka/selenium/sauce"

	selenium "github.com/fitting/fitting-selenium"
)

// Prefix is prepended to every variable name, as in SELENIUM_HOST.
const Prefix = "selenium"

// Config holds the settings a Builder needs to reach a WebDriver endpoint.
type Config struct {
	Host           string `envconfig:"HOST" default:"localhost"`
	Port           int    `envconfig:"PORT" default:"4444"`
	Browser        string `envconfig:"BROWSER" default:"firefox"`
	BrowserVersion string `envconfig:"BROWSER_VERSION"`
	Platform       string `envconfig:"PLATFORM"`
	Javascript     bool   `envconfig:"JAVASCRIPT" default:"true"`

	// Capabilities are extra capabilities, as in "name:value,name2:value2".
	// Values "true" and "false" are sent as booleans and numeric values as
	// numbers.
	Capabilities map[string]string `envconfig:"CAPABILITIES"`

	SauceUser string `envconfig:"SAUCE_USER"`
	SauceKey  string `envconfig:"SAUCE_KEY"`

	// Service, when set, starts a local chromedriver, geckodriver or
	// selenium-server from ServicePath on Port.
	Service     string `envconfig:"SERVICE"`
	ServicePath string `envconfig:"SERVICE_PATH"`

	ImplicitWait    time.Duration `envconfig:"IMPLICIT_WAIT"`
	PageLoadTimeout time.Duration `envconfig:"PAGE_LOAD_TIMEOUT"`
	Debug           bool          `envconfig:"DEBUG"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var c Config
	if err := envconfig.Process(Prefix, &c); err != nil {
		return Config{}, fmt.Errorf("reading SELENIUM_* environment: %w", err)
	}
	return c, nil
}

// Builder returns a Builder configured from c.
func (c Config) Builder() (*selenium.Builder, error) {
	b := selenium.NewBuilder().
		WithBrowser(c.Browser, c.BrowserVersion).
		OnHost(c.Host, c.Port).
		WithJavascriptEnabled(c.Javascript).
		WithImplicitWait(c.ImplicitWait).
		WithPageLoadTimeout(c.PageLoadTimeout).
		WithDebug(c.Debug)
	if c.Platform != "" {
		b.WithPlatform(c.Platform)
	}
	for k, v := range c.Capabilities {
		b.WithCapability(k, capabilityValue(v))
	}
	if c.SauceUser != "" || c.SauceKey != "" {
		if c.SauceUser == "" || c.SauceKey == "" {
			return nil, fmt.Errorf("both SELENIUM_SAUCE_USER and SELENIUM_SAUCE_KEY must be set")
		}
		b.OnSauceLabs(c.SauceUser, c.SauceKey, sauce.Capabilities{
			Browser:  c.Browser,
			Version:  c.BrowserVersion,
			Platform: c.Platform,
		})
	}
	if c.Service != "" {
		kind, err := selenium.ParseServiceKind(c.Service)
		if err != nil {
			return nil, err
		}
		b.WithService(selenium.ServiceConfig{Kind: kind, Path: c.ServicePath, Port: c.Port})
	}
	return b, nil
}

// capabilityValue converts an environment value to the JSON type a server
// expects.
func capabilityValue(v string) interface{} {
	switch v {
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return v
}
