package browser

import "strings"

// Platform is the value of the platform capability.
type Platform string

// Platforms understood by Selenium servers.
const (
	Windows         Platform = "WINDOWS"
	XP              Platform = "XP"
	Vista           Platform = "VISTA"
	Win8            Platform = "WIN8"
	Win81           Platform = "WIN8_1"
	Mac             Platform = "MAC"
	SnowLeopard     Platform = "SNOW_LEOPARD"
	MountainLion    Platform = "MOUNTAIN_LION"
	Linux           Platform = "LINUX"
	Unix            Platform = "UNIX"
	AndroidPlatform Platform = "ANDROID"
	Any             Platform = "ANY"
)

// platformMatchers are fragments of operating system names, in the order
// Selenium checks them. Windows and Any are never matched by name.
var platformMatchers = []struct {
	platform Platform
	parts    []string
}{
	{XP, []string{"windows server 2003", "xp", "windows", "winnt"}},
	{Vista, []string{"windows vista", "windows server 2008", "windows 7", "win7"}},
	{Win8, []string{"windows server 2012", "windows 8", "win8"}},
	{Win81, []string{"windows 8.1", "win8.1"}},
	{Mac, []string{"mac", "darwin", "os x"}},
	{SnowLeopard, []string{"snow leopard", "os x 10.6"}},
	{MountainLion, []string{"mountain lion", "os x 10.8"}},
	{Linux, []string{"linux"}},
	{Unix, []string{"solaris", "bsd"}},
	{AndroidPlatform, []string{"android", "dalvik"}},
}

// ExtractPlatform resolves an operating system name such as "Windows 7" or
// "Mac OS X" to a Platform. A name equal to one of the known fragments wins
// outright; otherwise the platform with the longest fragment contained in the
// name is returned. Names that match nothing resolve to Unix.
//
// Platform values themselves are accepted first, ignoring case, so "windows"
// resolves to Windows rather than to XP, and "any" to Any.
func ExtractPlatform(name string) Platform {
	name = strings.ToLower(strings.TrimSpace(name))
	if p, ok := canonicalPlatform(name); ok {
		return p
	}

	best, previous := Unix, ""
	for _, m := range platformMatchers {
		for _, part := range m.parts {
			if name == part {
				return m.platform
			}
			if strings.Contains(name, part) && len(part) > len(previous) {
				best, previous = m.platform, part
			}
		}
	}
	return best
}

// canonicalPlatform accepts platform values given verbatim, e.g. "LINUX" or
// "win8_1".
func canonicalPlatform(name string) (Platform, bool) {
	switch p := Platform(strings.ToUpper(name)); p {
	case Windows, XP, Vista, Win8, Win81, Mac, SnowLeopard, MountainLion, Linux, Unix, AndroidPlatform, Any:
		return p, true
	}
	return "", false
}
