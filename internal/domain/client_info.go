package domain

import "fmt"

// ClientType is the kind of client emitting events.
type ClientType string

const (
	ClientTypeJS      ClientType = "JS"
	ClientTypeDesktop ClientType = "DESKTOP"
)

// DeviceType is the form factor of a JS client.
type DeviceType string

const (
	DeviceTypeUnknown    DeviceType = "UNKNOWN"
	DeviceTypeMobile     DeviceType = "MOBILE"
	DeviceTypeDesktop    DeviceType = "DESKTOP"
	DeviceTypeTablet     DeviceType = "TABLET"
	DeviceTypeGoogleHome DeviceType = "GOOGLE_HOME"
)

// OsType is the operating system of a desktop client.
type OsType string

const (
	OsTypeMac     OsType = "mac"
	OsTypeWindows OsType = "windows"
	OsTypeLinux   OsType = "linux"
)

// ClientInfo describes the device the logger runs on.
type ClientInfo struct {
	ClientType ClientType

	// JSClientInfo is set for ClientTypeJS clients that know their device type.
	JSClientInfo *JSClientInfo

	// DesktopClientInfo is set for ClientTypeDesktop clients.
	DesktopClientInfo *DesktopClientInfo
}

// JSClientInfo carries JS client details.
type JSClientInfo struct {
	DeviceType DeviceType
}

// DesktopClientInfo carries desktop client details.
type DesktopClientInfo struct {
	OS OsType
}

// DefaultClientInfo returns the client info used when none is configured.
func DefaultClientInfo() ClientInfo {
	return ClientInfo{ClientType: ClientTypeJS}
}

// ParseClientType validates a client type name.
func ParseClientType(s string) (ClientType, error) {
	switch ClientType(s) {
	case ClientTypeJS, ClientTypeDesktop:
		return ClientType(s), nil
	}
	return "", fmt.Errorf("%w: unknown client type %q", ErrInvalidConfig, s)
}

// ParseDeviceType validates a device type name.
func ParseDeviceType(s string) (DeviceType, error) {
	switch DeviceType(s) {
	case DeviceTypeUnknown, DeviceTypeMobile, DeviceTypeDesktop, DeviceTypeTablet, DeviceTypeGoogleHome:
		return DeviceType(s), nil
	}
	return "", fmt.Errorf("%w: unknown device type %q", ErrInvalidConfig, s)
}

// ParseOsType validates an OS type name. It also accepts Go's GOOS names.
func ParseOsType(s string) (OsType, error) {
	switch s {
	case "mac", "darwin":
		return OsTypeMac, nil
	case "windows":
		return OsTypeWindows, nil
	case "linux":
		return OsTypeLinux, nil
	}
	return "", fmt.Errorf("%w: unknown os type %q", ErrInvalidConfig, s)
}
