// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const (
	// DeviceIDPrefix starts every device identity.
	DeviceIDPrefix = "user-"
	// DeviceIDSuffixLen is the length of the random base36 suffix.
	DeviceIDSuffixLen = 9

	base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// DeviceIDGenerator produces device identities of the form
// "user-<unix-ms>-<9 base36 chars>".
type DeviceIDGenerator struct {
	now  func() time.Time
	rand func(n int) int
}

// NewDeviceIDGenerator returns a generator backed by the wall clock and the
// process-wide random source.
func NewDeviceIDGenerator() *DeviceIDGenerator {
	return &DeviceIDGenerator{now: time.Now, rand: rand.IntN}
}

// Generate returns a fresh device identity.
func (g *DeviceIDGenerator) Generate() string {
	var b strings.Builder
	b.Grow(len(DeviceIDPrefix) + 14 + 1 + DeviceIDSuffixLen)

	b.WriteString(DeviceIDPrefix)
	b.WriteString(strconv.FormatInt(g.now().UnixMilli(), 10))
	b.WriteByte('-')
	for range DeviceIDSuffixLen {
		b.WriteByte(base36Alphabet[g.rand(len(base36Alphabet))])
	}

	return b.String()
}

// IsDeviceID reports whether id has the shape produced by Generate.
func IsDeviceID(id string) bool {
	rest, ok := strings.CutPrefix(id, DeviceIDPrefix)
	if !ok {
		return false
	}

	ms, suffix, ok := strings.Cut(rest, "-")
	if !ok || len(suffix) != DeviceIDSuffixLen {
		return false
	}
	if _, err := strconv.ParseInt(ms, 10, 64); err != nil {
		return false
	}

	for _, r := range suffix {
		if !strings.ContainsRune(base36Alphabet, r) {
			return false
		}
	}
	return true
}
