// Copyright (C) 2026 Fathom Labs (engineering@fathomlabs.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package frontend

import (
	"strconv"
	"strings"
)

// parseNumber converts a numeric literal's source text to its value.
// Handles hex, octal (modern and legacy), binary and decimal forms.
// Malformed literals yield 0; the grammar guarantees well-formed input in
// practice.
func parseNumber(text string) float64 {
	t := strings.ReplaceAll(text, "_", "")
	if len(t) > 1 && t[0] == '0' {
		switch {
		case t[1] == 'x' || t[1] == 'X':
			if v, err := strconv.ParseUint(t[2:], 16, 64); err == nil {
				return float64(v)
			}
		case t[1] == 'o' || t[1] == 'O':
			if v, err := strconv.ParseUint(t[2:], 8, 64); err == nil {
				return float64(v)
			}
		case t[1] == 'b' || t[1] == 'B':
			if v, err := strconv.ParseUint(t[2:], 2, 64); err == nil {
				return float64(v)
			}
		case isOctalDigits(t[1:]):
			// Legacy octal: 010 == 8.
			if v, err := strconv.ParseUint(t[1:], 8, 64); err == nil {
				return float64(v)
			}
		}
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0
	}
	return v
}

func isOctalDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '7' {
			return false
		}
	}
	return true
}

// cookString converts a quoted string literal's source text to its value:
// delimiters stripped, escapes processed.
func cookString(raw string) string {
	if len(raw) < 2 {
		return raw
	}
	body := raw[1 : len(raw)-1]
	if !strings.ContainsRune(body, '\\') {
		return body
	}
	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 >= len(body) {
			b.WriteByte(c)
			continue
		}
		i++
		switch body[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case '0':
			b.WriteByte(0)
		case 'x':
			if i+2 < len(body) {
				if v, err := strconv.ParseUint(body[i+1:i+3], 16, 8); err == nil {
					b.WriteByte(byte(v))
					i += 2
					continue
				}
			}
			b.WriteByte('x')
		case 'u':
			if i+4 < len(body) {
				if v, err := strconv.ParseUint(body[i+1:i+5], 16, 32); err == nil {
					b.WriteRune(rune(v))
					i += 4
					continue
				}
			}
			b.WriteByte('u')
		case '\n':
			// Line continuation contributes nothing.
		default:
			b.WriteByte(body[i])
		}
	}
	return b.String()
}
