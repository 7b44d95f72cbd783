// Copyright (c) 2012-2014 Jeremy Latt
// Copyright (c) 2014-2015 Edmund Huber
// Copyright (c) 2016-2017 Daniel Oaks <daniel@danieloaks.net>
// Copyright (c) 2026 ircclient authors
// released under the MIT license

package transcript

import (
	"errors"
	"strings"

	"golang.org/x/text/secure/precis"
)

var (
	errCouldNotStabilize = errors.New("Could not stabilize string while casefolding")

	// under rfc1459 casemapping these are the lowercase forms of []\~
	rfc1459Folder = strings.NewReplacer("[", "{", "]", "}", "\\", "|", "~", "^")
)

// Each pass of PRECIS casefolding is a composition of idempotent operations,
// but not idempotent itself. Therefore, the PRECIS draft says "do it four times and hope
// it converges" (lolwtf). Golang's PRECIS implementation has a "repeat" option,
// which provides this functionality, but unfortunately it's not exposed publicly.
func iterateFolding(profile *precis.Profile, oldStr string) (str string, err error) {
	str = oldStr
	// follow the stabilizing rules laid out here:
	// https://tools.ietf.org/html/draft-ietf-precis-7564bis-10.html#section-7
	for i := 0; i < 4; i++ {
		str, err = profile.CompareKey(str)
		if err != nil {
			return "", err
		}
		if oldStr == str {
			break
		}
		oldStr = str
	}
	if oldStr != str {
		return "", errCouldNotStabilize
	}
	return str, nil
}

// foldTarget normalizes a nick or channel name for use in keys, so that
// names the server considers equal share one transcript. Names PRECIS
// rejects (e.g. some symbols) are only lowercased.
func foldTarget(target string) string {
	folded, err := iterateFolding(precis.UsernameCaseMapped, target)
	if err != nil {
		folded = strings.ToLower(target)
	}
	return rfc1459Folder.Replace(folded)
}
