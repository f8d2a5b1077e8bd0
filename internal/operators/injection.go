package operators

import "github.com/corazawaf/libinjection-go"

// detectSQLi matches when libinjection's SQL-injection detector fires.
// The fingerprint it returns is surfaced as a capture, matching
// @detectSQLi's documented support for the "capture" action.
func detectSQLi(value []byte, _ string) (Result, error) {
	matched, fingerprint := libinjection.IsSQLi(string(value))
	if !matched {
		return Result{}, nil
	}
	return Result{Matched: true, Captures: []string{fingerprint}}, nil
}

// detectXSS matches when libinjection's XSS detector fires.
func detectXSS(value []byte, _ string) (Result, error) {
	matched := libinjection.IsXSS(string(value))
	return Result{Matched: matched}, nil
}
