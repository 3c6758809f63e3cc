// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import "fmt"

// populated at build time through -ldflags -X
var SemanticVersion string
var CommitVersion string

type Version struct {
	Semantic string
	Commit   string
}

func GetVersion() Version {
	v := Version{
		Semantic: SemanticVersion,
		Commit:   CommitVersion,
	}
	if v.Semantic == "" {
		v.Semantic = "development"
	}
	if v.Commit == "" {
		v.Commit = "unknown"
	}
	return v
}

func (v Version) String() string {
	return fmt.Sprintf("ticketchain %s\ncommit %s", v.Semantic, v.Commit)
}
