package operators

import (
	"bytes"
	"regexp"
	"strconv"
	"unicode/utf8"
)

func contains(value []byte, arg string) (Result, error) {
	return Result{Matched: bytes.Contains(value, []byte(arg))}, nil
}

func beginsWith(value []byte, arg string) (Result, error) {
	return Result{Matched: bytes.HasPrefix(value, []byte(arg))}, nil
}

func endsWith(value []byte, arg string) (Result, error) {
	return Result{Matched: bytes.HasSuffix(value, []byte(arg))}, nil
}

func streq(value []byte, arg string) (Result, error) {
	return Result{Matched: string(value) == arg}, nil
}

// within matches when value (the needle) occurs anywhere inside arg (the
// haystack) — the operands are reversed relative to @contains.
func within(value []byte, arg string) (Result, error) {
	return Result{Matched: bytes.Contains([]byte(arg), value)}, nil
}

func regex(value []byte, arg string) (Result, error) {
	re, err := regexp.Compile(arg)
	if err != nil {
		return Result{}, err
	}
	matches := re.FindSubmatch(value)
	if matches == nil {
		return Result{}, nil
	}
	captures := make([]string, len(matches))
	for i, m := range matches {
		captures[i] = string(m)
	}
	return Result{Matched: true, Captures: captures}, nil
}

// toInt mirrors ModSecurity's numeric-comparison leniency: a value that
// does not parse as an integer is treated as 0 rather than an error.
func toInt(b []byte) int64 {
	n, err := strconv.ParseInt(string(bytes.TrimSpace(b)), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func eq(value []byte, arg string) (Result, error) {
	target, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return Result{}, err
	}
	return Result{Matched: toInt(value) == target}, nil
}

func ge(value []byte, arg string) (Result, error) {
	target, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return Result{}, err
	}
	return Result{Matched: toInt(value) >= target}, nil
}

func gt(value []byte, arg string) (Result, error) {
	target, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return Result{}, err
	}
	return Result{Matched: toInt(value) > target}, nil
}

func lt(value []byte, arg string) (Result, error) {
	target, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return Result{}, err
	}
	return Result{Matched: toInt(value) < target}, nil
}

func validateUTF8Encoding(value []byte, _ string) (Result, error) {
	return Result{Matched: !utf8.Valid(value)}, nil
}
