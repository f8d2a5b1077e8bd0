package operators

import (
	"net/netip"
	"strings"
)

// ipMatch matches when value parses as an IP address contained in any of
// arg's comma-separated IPv4/IPv6 addresses or CIDR ranges.
func ipMatch(value []byte, arg string) (Result, error) {
	prefixes, err := parsePrefixList(strings.Split(arg, ","))
	if err != nil {
		return Result{}, err
	}
	return matchIP(value, prefixes)
}

// ipMatchFromFile is @ipMatch with its address list loaded from one or
// more files, one address/CIDR per line.
func ipMatchFromFile(value []byte, arg string) (Result, error) {
	var lines []string
	for _, path := range strings.Fields(arg) {
		loaded, err := loadPhraseFile(path)
		if err != nil {
			return Result{}, err
		}
		lines = append(lines, loaded...)
	}
	prefixes, err := parsePrefixList(lines)
	if err != nil {
		return Result{}, err
	}
	return matchIP(value, prefixes)
}

func matchIP(value []byte, prefixes []netip.Prefix) (Result, error) {
	addr, err := netip.ParseAddr(strings.TrimSpace(string(value)))
	if err != nil {
		return Result{}, nil
	}
	for _, p := range prefixes {
		if p.Contains(addr) {
			return Result{Matched: true}, nil
		}
	}
	return Result{}, nil
}

func parsePrefixList(entries []string) ([]netip.Prefix, error) {
	var prefixes []netip.Prefix
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if strings.Contains(e, "/") {
			p, err := netip.ParsePrefix(e)
			if err != nil {
				return nil, err
			}
			prefixes = append(prefixes, p)
			continue
		}
		a, err := netip.ParseAddr(e)
		if err != nil {
			return nil, err
		}
		prefixes = append(prefixes, netip.PrefixFrom(a, a.BitLen()))
	}
	return prefixes, nil
}
