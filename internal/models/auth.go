package models

// ClientType is the closed enumeration of calling applications declared via
// the X-Client-Type header.
type ClientType string

const (
	ClientAndroidStudent ClientType = "ANDROID_STUDENT"
	ClientDesktopAdmin   ClientType = "DESKTOP_ADMIN"
	ClientWebAdmin       ClientType = "WEB_ADMIN"
	ClientUnknown        ClientType = "UNKNOWN"
)

// ParseClientType maps a raw header value onto the enumeration, collapsing
// anything unrecognized to ClientUnknown.
func ParseClientType(raw string) ClientType {
	switch ClientType(raw) {
	case ClientAndroidStudent, ClientDesktopAdmin, ClientWebAdmin:
		return ClientType(raw)
	default:
		return ClientUnknown
	}
}

// Role is the access role derived from the client type.
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleAdmin   Role = "ADMIN"
	RoleNone    Role = ""
)

// Principal is a verified identity plus the role assigned for the declared
// client type.
type Principal struct {
	UID         string     `json:"uid"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Role        Role       `json:"role"`
	ClientType  ClientType `json:"clientType"`
	Permissions []string   `json:"permissions"`
}

// ClientTypeInfo describes one entry of the static client-type table.
type ClientTypeInfo struct {
	Role        Role     `json:"role"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}

// ClientInfoResponse is the static description served by /auth/client-info.
type ClientInfoResponse struct {
	ClientTypes     map[string]ClientTypeInfo `json:"client_types"`
	HeadersRequired map[string]string         `json:"headers_required"`
	Flow            []string                  `json:"flow"`
}
