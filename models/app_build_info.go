// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// DevelopmentVersion is reported by meal-log binaries built without a
// linked version.
const DevelopmentVersion = "dev"

// AppBuildInfo is the version, date and commit linked into a meal-log
// binary with -ldflags "-X main.buildVersion=...". The fields stay empty for
// plain go build output.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: strings.TrimSpace(buildVersion),
		buildDate:    strings.TrimSpace(buildDate),
		buildCommit:  strings.TrimSpace(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// OrDevelopment returns a with DevelopmentVersion filled in when no version
// was linked.
func (a AppBuildInfo) OrDevelopment() AppBuildInfo {
	if a.buildVersion == "" {
		a.buildVersion = DevelopmentVersion
	}
	return a
}

// String formats the build as "1.2.0 (commit abc123, built 2026-10-17)",
// leaving out the parts that are unknown.
func (a AppBuildInfo) String() string {
	var extra []string
	if a.buildCommit != "" {
		extra = append(extra, "commit "+a.buildCommit)
	}
	if a.buildDate != "" {
		extra = append(extra, "built "+a.buildDate)
	}

	if len(extra) == 0 {
		return a.buildVersion
	}
	return a.buildVersion + " (" + strings.Join(extra, ", ") + ")"
}
