/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package api

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

var Protocol = "timerange"

type ConnectionString struct {
	Local bool
	// Address is the base URL of a remote server, "local" otherwise
	Address string
}

// ParseConnectionString takes a connection string and parses it into the parts
// the application needs to reach the codec. It only returns an error for
// schemes it does not know.
//
// Formats:
//
//	local
//	timerange://<host:port>[/<prefix>]
//	http[s]://<host:port>[/<prefix>]
func ParseConnectionString(connStr string) (ConnectionString, error) {
	ret := ConnectionString{
		Local:   true,
		Address: "local",
	}

	if connStr == "" || connStr == "local" {
		return ret, nil
	}

	u, err := url.Parse(connStr)
	if err != nil {
		return ConnectionString{}, errors.Wrap(err, "invalid connection string")
	}

	switch u.Scheme {
	case Protocol:
		u.Scheme = "http"
	case "http", "https":
	default:
		return ConnectionString{}, errors.Errorf("unrecognized scheme: %s", u.Scheme)
	}

	if u.Host == "" {
		return ConnectionString{}, errors.Errorf("missing host in %s", connStr)
	}

	ret.Local = false
	ret.Address = u.Scheme + "://" + u.Host + strings.TrimSuffix(u.Path, "/")
	return ret, nil
}
