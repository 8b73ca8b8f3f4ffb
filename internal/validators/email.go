package validators

import (
	"net"
	"strings"
)

// EmailDomain extracts the part after the last "@", "" when the
// address has no usable domain.
func EmailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 1 || at == len(email)-1 {
		return ""
	}
	return email[at+1:]
}

// IsEmailDomainValid checks that the address domain resolves to an MX
// or at least an A/AAAA record.
func IsEmailDomainValid(email string) bool {
	domain := EmailDomain(email)
	if domain == "" {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
