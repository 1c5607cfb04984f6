// Package parking holds the domain types for a monitored facility.
//
// A State is one observation of the facility (vacancy flag, details
// text, local timestamp). Decide compares the current observation to
// the previous one and yields a Decision: send an alert on the rising
// edge of vacancy, suppress everything else. At most one alert is
// produced per edge regardless of how long the vacancy persists.
package parking
