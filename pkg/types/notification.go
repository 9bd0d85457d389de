// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Notification holds what the heuristics extracted from one notification
// PDF. RawDate is the date string as found in the source text (or supplied
// manually); Date is its YYYY-MM-DD normalization. An empty field means the
// corresponding heuristic or normalization step produced nothing.
type Notification struct {
	// URL is the source the PDF was downloaded from.
	URL string `json:"url" yaml:"url"`

	// RawDate is the unnormalized date token, nominally DD/MM/YYYY.
	RawDate string `json:"raw_date" yaml:"raw_date"`

	// Date is RawDate reformatted as YYYY-MM-DD.
	Date string `json:"date" yaml:"date"`

	// Subject is the sanitized, filename-safe subject line.
	Subject string `json:"subject" yaml:"subject"`

	// Filename is the archive name, "<Date>_<Subject>.pdf".
	Filename string `json:"filename" yaml:"filename"`
}
