package http

import (
	"net/url"
	"strings"
)

// Production logging endpoint.
const (
	EndpointHostname = "firebaselogging-pa.googleapis.com"
	EndpointPath     = "v1/firelog/legacy/log"
	EndpointPort     = 443
)

// EndpointStyle selects how the endpoint URL is assembled.
type EndpointStyle string

const (
	// StyleBrowser posts to https://host/path?key=KEY.
	StyleBrowser EndpointStyle = "browser"
	// StyleServer posts to https://host:443/path/?key=KEY.
	StyleServer EndpointStyle = "server"
)

// BrowserEndpoint returns the browser-style endpoint for apiKey.
func BrowserEndpoint(apiKey string) string {
	return "https://" + EndpointHostname + "/" + EndpointPath + "?key=" + url.QueryEscape(apiKey)
}

// ServerEndpoint returns the server-style endpoint built from a hostname,
// a path and apiKey, on port 443.
func ServerEndpoint(hostname, path, apiKey string) string {
	u := url.URL{
		Scheme:   "https",
		Host:     hostname + ":443",
		Path:     "/" + strings.Trim(path, "/") + "/",
		RawQuery: "key=" + url.QueryEscape(apiKey),
	}
	return u.String()
}

// Endpoint builds the endpoint URL for the given style.
// An empty hostname or path falls back to the production values.
func Endpoint(style EndpointStyle, hostname, path, apiKey string) string {
	if hostname == "" {
		hostname = EndpointHostname
	}
	if path == "" {
		path = EndpointPath
	}
	if style == StyleServer {
		return ServerEndpoint(hostname, path, apiKey)
	}
	if hostname == EndpointHostname && path == EndpointPath {
		return BrowserEndpoint(apiKey)
	}
	return "https://" + hostname + "/" + strings.Trim(path, "/") + "?key=" + url.QueryEscape(apiKey)
}
