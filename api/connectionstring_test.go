/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package api

import "testing"

func TestParseConnectionString(t *testing.T) {
	tt := []struct {
		test    string
		connStr string
		addr    string
		local   bool
	}{
		{
			"Test empty conn string",
			"",
			"local",
			true,
		},
		{
			"Test local",
			"local",
			"local",
			true,
		},
		{
			"Test timerange scheme",
			"timerange://localhost:8001",
			"http://localhost:8001",
			false,
		},
		{
			"Test http end slash",
			"http://localhost:8001/",
			"http://localhost:8001",
			false,
		},
		{
			"Test https with prefix",
			"https://example.com/timerange/",
			"https://example.com/timerange",
			false,
		},
	}

	for _, tc := range tt {
		t.Run(tc.test, func(t *testing.T) {
			cs, err := ParseConnectionString(tc.connStr)
			if err != nil {
				t.Fatal(err)
			}
			if cs.Address != tc.addr {
				t.Errorf("expected address %s, got %s", tc.addr, cs.Address)
			}
			if cs.Local != tc.local {
				t.Errorf("expected local %t, got %t", tc.local, cs.Local)
			}
		})
	}
}

func TestParseConnectionStringErrors(t *testing.T) {
	for _, connStr := range []string{"tcp://localhost:8001", "http://", "ftp://host/x"} {
		if _, err := ParseConnectionString(connStr); err == nil {
			t.Errorf("expected an error for %s", connStr)
		}
	}
}
