// Copyright 2024
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package format

import "strings"

var nameShortener = strings.NewReplacer(
	" Inc.", "",
	" Inc", "",
	" Corporation", "",
	" Corp.", "",
	" Corp", "",
	" Ltd", "",
	" plc", "",
	" Holdings", "",
	" Holding", "",
	" Group", "",
	" Technologies", " Tech",
	" Technology", " Tech",
)

// ShortName trims common legal suffixes from a company name so it fits a
// narrow table column.
func ShortName(name string) string {
	return nameShortener.Replace(name)
}
