package net

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/progbits/xv6-net/internal/errors"
)

// IPv4 is an IPv4 address
type IPv4 [4]byte

// ParseIPv4 parses s as a dotted-decimal IPv4 address such as "10.0.0.1".
func ParseIPv4(s string) (IPv4, error) {
	var ip IPv4
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return IPv4{}, errors.Errorf("parse ipv4 address %q: unexpected number of octets: %v", s, len(parts))
	}
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 8)
		if err != nil {
			return IPv4{}, errors.Annotatef(err, "parse ipv4 address %q", s)
		}
		ip[i] = byte(n)
	}
	return ip, nil
}

func (ip IPv4) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", ip[0], ip[1], ip[2], ip[3])
}
