// Package domain models the state-level uninsured rate table behind the
// dashboard.
//
// # Data Source
//
// The table is a static CSV exported from the American Community Survey
// (ACS) one-year estimates of health insurance coverage. It is read once at
// process start and never mutated afterwards.
//
// # Columns
//
// Header names are matched case-insensitively after trimming whitespace:
//
//	state_code | code          two-letter USPS code, e.g. "CA"; the map location key
//	year                       integer survey year, 2008 through 2018 in the shipped data
//	uninsured  | uninsured_rate fraction of the population without coverage, e.g. 0.15
//	state      | state_name    optional display name, e.g. "California"
//
// Any other column is ignored. Row order is preserved.
//
// # Conventions
//
// Rates are stored as fractions (0.15 == 15%). Percentage scaling happens
// at render time, never at load time, so one table serves every display
// variant.
//
// Each (state_code, year) pair is expected to appear once. This is assumed
// by the renderer, not enforced here.
package domain
