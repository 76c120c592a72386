// Package utils provides general-purpose helper utilities used across the
// client: the resty HTTP client wrapper, identifier generators for meals and
// devices, local-day arithmetic over millisecond timestamps and JSON response
// writing.
package utils
