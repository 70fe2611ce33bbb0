package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/fitting/fitting-selenium/fitting"
)

// container is a fitting.ElementContainer backed by fixed values.
type container struct {
	fitting.ElementContainer

	title, location string
	size            fitting.Dimension
	waitErr         error

	navigated []string
	waited    []fitting.Selector
}

func (c *container) ID() string                       { return "w1" }
func (c *container) Title() (string, error)           { return c.title, nil }
func (c *container) CurrentLocation() (string, error) { return c.location, nil }
func (c *container) Size() (fitting.Dimension, error) { return c.size, nil }

func (c *container) NavigateTo(url string) error {
	c.navigated = append(c.navigated, url)
	c.location = url
	return nil
}

func (c *container) WaitForElement(sel fitting.Selector, timeout int) error {
	c.waited = append(c.waited, sel)
	return c.waitErr
}

func TestProbe(t *testing.T) {
	c := &container{title: "Example Domain", size: fitting.Dimension{Width: 1280, Height: 800}}
	sel := fitting.ByCSS("h1")
	var out bytes.Buffer

	if err := probe(&out, c, "https://example.com/", &sel, 5); err != nil {
		t.Fatalf("probe() returned error: %v", err)
	}
	want := "window:   w1\n" +
		"title:    Example Domain\n" +
		"location: https://example.com/\n" +
		"size:     1280x800\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("probe() output returned diff (-want/+got):\n%s", diff)
	}
	if diff := cmp.Diff([]fitting.Selector{sel}, c.waited); diff != "" {
		t.Errorf("waited for selectors diff (-want/+got):\n%s", diff)
	}
}

func TestProbeWithoutURL(t *testing.T) {
	c := &container{location: "about:blank"}
	var out bytes.Buffer
	if err := probe(&out, c, "", nil, 0); err != nil {
		t.Fatalf("probe() returned error: %v", err)
	}
	if len(c.navigated) != 0 || len(c.waited) != 0 {
		t.Errorf("probe() navigated %v and waited for %v, want neither", c.navigated, c.waited)
	}
}

func TestProbeWaitFails(t *testing.T) {
	c := &container{waitErr: fitting.NewError("waiting 1s for css=h1", fitting.ErrNoSuchElement)}
	sel := fitting.ByCSS("h1")
	if err := probe(&bytes.Buffer{}, c, "https://example.com/", &sel, 1); !errors.Is(err, fitting.ErrNoSuchElement) {
		t.Errorf("probe() returned error %v, want ErrNoSuchElement", err)
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "selenium.env")
	if err := os.WriteFile(name, []byte("SELENIUM_TEST_BROWSER=chrome\n"), 0644); err != nil {
		t.Fatalf("os.WriteFile() returned error: %v", err)
	}
	t.Setenv("SELENIUM_TEST_BROWSER", "")
	os.Unsetenv("SELENIUM_TEST_BROWSER")

	if err := loadEnv(name, true); err != nil {
		t.Fatalf("loadEnv(%q) returned error: %v", name, err)
	}
	if got := os.Getenv("SELENIUM_TEST_BROWSER"); got != "chrome" {
		t.Errorf("SELENIUM_TEST_BROWSER = %q, want chrome", got)
	}

	missing := filepath.Join(dir, "missing.env")
	if err := loadEnv(missing, false); err != nil {
		t.Errorf("loadEnv(%q, false) returned error: %v", missing, err)
	}
	if err := loadEnv(missing, true); err == nil {
		t.Errorf("loadEnv(%q, true) returned nil error", missing)
	}
}

func TestCommands(t *testing.T) {
	root := newRootCommand()
	for _, name := range []string{"probe", "fetch"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("root.Find(%q) = %v, %v", name, cmd, err)
		}
	}
	if root.PersistentFlags().Lookup("v") == nil {
		t.Errorf("glog's -v flag is not bridged into the root command")
	}
}
