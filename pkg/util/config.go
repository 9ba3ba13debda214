// Copyright 2023-2024 daviszhen
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

package util

type SourceOptions struct {
	// Path of a parquet file to load columns from. Empty means the
	// driver generates synthetic columns instead.
	Path   string `toml:"path"`
	Format string `toml:"format"`
	Rows   int    `toml:"rows"`
	// Dict seeds the synthetic string column; FixedWidth > 0 also
	// builds a fixed-width copy at that character width.
	Dict       []string `toml:"dict"`
	FixedWidth int      `toml:"fixedWidth"`
}

type DebugOptions struct {
	LogLevel          string `toml:"logLevel"`
	PrintPlan         bool   `toml:"printPlan"`
	PrintResult       bool   `toml:"printResult"`
	MaxOutputRowCount int    `toml:"maxOutputRowCount"`
}

type Config struct {
	Source SourceOptions `toml:"source"`
	Debug  DebugOptions  `toml:"debug"`
}
