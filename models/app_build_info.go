// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// notAvailable replaces build metadata that was not injected at link time.
const notAvailable = "N/A"

// AppBuildInfo carries the linker-injected build metadata printed by the
// server on startup and by `algosyncctl version`.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// BuildVersion returns the release version or "N/A".
func (a AppBuildInfo) BuildVersion() string {
	return orNotAvailable(a.buildVersion)
}

func (a AppBuildInfo) BuildDate() string {
	return orNotAvailable(a.buildDate)
}

func (a AppBuildInfo) BuildCommit() string {
	return orNotAvailable(a.buildCommit)
}

// HasVersion reports whether a version was injected.
func (a AppBuildInfo) HasVersion() bool {
	return a.buildVersion != ""
}

// String renders the three lines shown to operators.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		a.BuildVersion(), a.BuildDate(), a.BuildCommit())
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
