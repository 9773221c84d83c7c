// Copyright (c) 2026, The mcdata Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package registry

import (
	"fmt"
	"strings"

	mcerrors "github.com/Melv1no/mcdata/pkg/errors"
)

// Platform identifies a game edition.
type Platform string

// Platform constants for supported editions.
const (
	PlatformPC      Platform = "pc"
	PlatformBedrock Platform = "bedrock"
)

// ParsePlatform parses a string into a Platform. Matching is case-insensitive.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pc", "java":
		return PlatformPC, nil
	case "bedrock":
		return PlatformBedrock, nil
	default:
		return "", mcerrors.NewWithContext(mcerrors.ErrCodeUnknownPlatform,
			fmt.Sprintf("unknown platform: %s", s),
			map[string]any{"platform": s, "supported": SupportedPlatforms()})
	}
}

// SupportedPlatforms returns all supported platforms sorted alphabetically.
func SupportedPlatforms() []string {
	return []string{string(PlatformBedrock), string(PlatformPC)}
}

// IsValid reports whether p is a supported platform.
func (p Platform) IsValid() bool {
	return p == PlatformPC || p == PlatformBedrock
}

// String implements fmt.Stringer.
func (p Platform) String() string {
	return string(p)
}
