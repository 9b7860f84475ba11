package detect

import "fmt"

// Category identifies a class of sensitive content.
type Category int

// Categories in processing order. The order is significant: the redaction
// pipeline runs one pass per category in this sequence.
const (
	Email Category = iota
	IPv4
	UUIDv4
	JWT
	Token
)

// Ordered returns every category in processing order.
func Ordered() []Category {
	return []Category{Email, IPv4, UUIDv4, JWT, Token}
}

// String returns the lower-case name used in config, logs and JSON.
func (c Category) String() string {
	switch c {
	case Email:
		return "email"
	case IPv4:
		return "ip"
	case UUIDv4:
		return "uuid"
	case JWT:
		return "jwt"
	case Token:
		return "token"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Label returns the upper-case tag used inside placeholders, e.g. EMAIL.
func (c Category) Label() string {
	switch c {
	case Email:
		return "EMAIL"
	case IPv4:
		return "IP"
	case UUIDv4:
		return "UUID"
	case JWT:
		return "JWT"
	case Token:
		return "TOKEN"
	default:
		return "UNKNOWN"
	}
}

// Plural returns the human-readable plural used in summaries.
func (c Category) Plural() string {
	switch c {
	case Email:
		return "Emails"
	case IPv4:
		return "IPs"
	case UUIDv4:
		return "UUIDs"
	case JWT:
		return "JWTs"
	case Token:
		return "Tokens"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is one of the five known categories.
func (c Category) Valid() bool {
	return c >= Email && c <= Token
}

// ParseCategory maps a name as returned by String back to a Category.
func ParseCategory(name string) (Category, error) {
	for _, c := range Ordered() {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category: %s", name)
}
