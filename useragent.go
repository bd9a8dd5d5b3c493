package saucedemo

import (
	"fmt"
	"runtime"

	"github.com/go-rod/rod/lib/proto"
)

//go:generate mockgen -destination=useragent_mocks_test.go -package=saucedemo -source useragent.go

const (
	defWebkitVer = "537.36"
	defChromeVer = "129.0.0.0"
)

// UserAgent returns a chrome user agent string for the given versions and
// OS.  Empty versions are replaced with the defaults.
func UserAgent(webkitVer, chromeVer, os string) string {
	if webkitVer == "" {
		webkitVer = defWebkitVer
	}
	if chromeVer == "" {
		chromeVer = defChromeVer
	}
	return fmt.Sprintf("Mozilla/5.0 (%s) AppleWebKit/%s (KHTML, like Gecko) Chrome/%s Safari/%s", os, webkitVer, chromeVer, webkitVer)
}

// DefaultUserAgent returns the default user agent string for the current OS.
func DefaultUserAgent() string {
	return UserAgent("", "", userAgentOS(runtime.GOOS))
}

func userAgentOS(goos string) string {
	switch goos {
	case "darwin":
		return "Macintosh; Intel Mac OS X 10_15_7"
	case "windows":
		return "Windows NT 10.0; Win64; x64"
	default:
		return "X11; Linux x86_64"
	}
}

type userAgentSetter interface {
	SetUserAgent(*proto.NetworkSetUserAgentOverride) error
}

// setUserAgent sets the user agent for the page.
func (o options) setUserAgent(page userAgentSetter) error {
	if o.userAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: o.userAgent}); err != nil {
			return err
		}
	}

	return nil
}
