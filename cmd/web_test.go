// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package cmd

import "testing"

func TestLisBaseURL(t *testing.T) {
	cases := []struct {
		name       string
		configured string
		port       string
		want       string
	}{
		{"explicit URL wins", "https://lis.example.com", "8080", "https://lis.example.com"},
		{"trailing slash trimmed", "https://lis.example.com/", "8080", "https://lis.example.com"},
		{"unset falls back to own origin", "", "8080", "http://localhost:8080"},
		{"fallback follows listen port", "", "9000", "http://localhost:9000"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := lisBaseURL(tc.configured, tc.port); got != tc.want {
				t.Fatalf("lisBaseURL(%q, %q) = %q, want %q", tc.configured, tc.port, got, tc.want)
			}
		})
	}
}
