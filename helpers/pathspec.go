// Copyright 2016-present The Hugo Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package helpers

import (
	"github.com/sunwei/hugo-taxonomy/config"
)

// PathSpec holds methods that decides how paths in URLs and files should look like.
type PathSpec struct {
	// The config provider to use
	Cfg config.Provider

	RemovePathAccents  bool
	DisablePathToLower bool

	// Path segment used for pages > 1 of a paginated list, e.g. "page".
	PaginatePath string
}

// NewPathSpec creates a new PathSpec from the given configuration.
func NewPathSpec(cfg config.Provider) *PathSpec {
	paginatePath := cfg.GetString("paginatePath")
	if paginatePath == "" {
		paginatePath = "page"
	}
	return &PathSpec{
		Cfg:                cfg,
		RemovePathAccents:  cfg.GetBool("removePathAccents"),
		DisablePathToLower: cfg.GetBool("disablePathToLower"),
		PaginatePath:       paginatePath,
	}
}
