/*
Package selenium drives fitting element containers with a Selenium WebDriver
session.

A BrowserConnector is built from a browser name or alias and the address of a
Selenium server (or a locally started driver, or Sauce Labs). Its windows
implement fitting.ElementContainer, so tests written against the fitting model
run unchanged on any WebDriver browser.

Example usage:

	c, err := selenium.NewBuilder().
		WithBrowser("ff", "").
		OnPlatform("Windows 10").
		OnHost("localhost", 4444).
		Build()
	if err != nil {
		return err
	}
	defer c.Destroy()

	w, err := c.Window()
	if err != nil {
		return err
	}
	if err := w.NavigateTo("http://example.com/login"); err != nil {
		return err
	}
	if err := w.WaitForElementWithContent(fitting.ByID("status"), "Ready", 10); err != nil {
		return err
	}

Window handles are diffed to find windows opened by script, see CreateWindow.
The underlying WebDriver is available from BrowserConnector.WebDriver for
anything the fitting model does not cover.
*/
package selenium
