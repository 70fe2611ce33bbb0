/*
Package fitting defines the browser-neutral model used by fitting fixtures:
element containers (windows and frames), elements, selectors and the errors
they report.

Drivers such as the Selenium adapter in the parent package implement these
interfaces; fixtures only ever talk to the model.
*/
package fitting
