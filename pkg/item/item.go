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

package item

import (
	"encoding/json"
	"fmt"

	mcerrors "github.com/Melv1no/mcdata/pkg/errors"
)

// Item is one entry of items.json.
type Item struct {
	ID          int     `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	DisplayName string  `json:"displayName" yaml:"displayName"`
	StackSize   int     `json:"stackSize" yaml:"stackSize"`
	Texture     *string `json:"texture,omitempty" yaml:"texture,omitempty"`
}

// String returns the item's name.
func (i *Item) String() string {
	if i == nil {
		return ""
	}
	return i.Name
}

// Decode parses the contents of items.json, a JSON array of items.
func Decode(raw []byte) ([]Item, error) {
	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, mcerrors.Wrap(mcerrors.ErrCodeMalformedData,
			fmt.Sprintf("invalid items.json (%d bytes)", len(raw)), err)
	}
	return items, nil
}
