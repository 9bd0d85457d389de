// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parse implements the date and subject heuristics for the first
// page of a GST notification PDF, plus filename sanitization.
package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date heuristics in priority order; the first tier that matches wins.
var (
	// labeledDateRe matches dates introduced by a label, like
	// "Dated : 05/04/2024" or "Date: 05-04-2024".
	labeledDateRe = regexp.MustCompile(`(?i)(?:Dated|Date|No\.\s*)\s*[:\s]*(\d{1,2}[./-]\d{1,2}[./-]\d{4})`)

	// proseDateRe matches prose dates like "12th January, 2024".
	proseDateRe = regexp.MustCompile(`(?i)(\d{1,2})(?:st|nd|rd|th)?\s+` +
		`(January|February|March|April|May|June|July|August|September|October|November|December)` +
		`,\s+(\d{4})`)
)

// Details holds the outcome of the heuristics on one page of text.
// Empty fields mean the corresponding heuristic found nothing.
type Details struct {
	// RawDate is nominally DD/MM/YYYY; tier-A matches keep whatever
	// separator the document used.
	RawDate string

	// Subject is the unsanitized subject line.
	Subject string
}

// Extract runs the date and subject heuristics over first-page text.
func Extract(text string) Details {
	return Details{
		RawDate: ExtractDate(text),
		Subject: ExtractSubject(text),
	}
}

// ExtractDate scans text for the notification date. Labeled dates win over
// prose dates, and only the first match of the winning tier is used. Prose
// dates are rendered as zero-padded DD/MM/YYYY. Returns "" when neither
// tier matches.
func ExtractDate(text string) string {
	if m := labeledDateRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := proseDateRe.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, err := monthNumber(m[2])
		if err != nil {
			return ""
		}
		return fmt.Sprintf("%02d/%02d/%s", day, month, m[3])
	}
	return ""
}

// monthNumber resolves an English month name, case-insensitively.
func monthNumber(name string) (int, error) {
	t, err := time.Parse("January", name)
	if err != nil {
		return 0, fmt.Errorf("unknown month %q: %w", name, err)
	}
	return int(t.Month()), nil
}

const (
	// letterheadMarker introduces the body text on most notifications.
	letterheadMarker = "GOVERNMENT OF INDIA"

	// headLines is how many leading lines the all-caps scan considers.
	headLines = 10
)

// ExtractSubject finds the subject line of the notification. It first looks
// for a long all-caps line near the top of the page; failing that it joins
// the first body lines after the letterhead. Returns "" when both tiers
// come up empty.
func ExtractSubject(text string) string {
	lines := nonBlankLines(text)

	// Tier A: a line that is long and all upper-case, skipping the
	// letterhead itself.
	scan := lines
	if len(scan) > headLines {
		scan = scan[:headLines]
	}
	for _, line := range scan {
		if len(line) > 30 && line == strings.ToUpper(line) && !strings.Contains(line, "GOVERNMENT") {
			return line
		}
	}

	// Tier B: the text immediately following the letterhead. When the
	// marker is absent the whole page is scanned.
	relevant := text
	if _, after, found := strings.Cut(text, letterheadMarker); found {
		relevant = after
	}
	var picked []string
	for _, line := range nonBlankLines(relevant) {
		if len(line) > 10 && !strings.Contains(line, "Notification No.") {
			picked = append(picked, line)
			if len(picked) == 3 {
				break
			}
		}
	}
	return strings.Join(picked, " ")
}

// nonBlankLines splits text into trimmed lines, dropping blank ones.
func nonBlankLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Sanitization for filename components.
var (
	// nonWordRe strips everything but word characters, whitespace, and hyphens.
	nonWordRe = regexp.MustCompile(`[^\w\s-]`)

	// spaceRunRe collapses whitespace runs.
	spaceRunRe = regexp.MustCompile(`\s+`)
)

// maxSubjectLen caps the subject portion of the archive filename.
const maxSubjectLen = 80

// Sanitize turns a free-text subject into a filename-safe token:
// punctuation stripped, whitespace runs collapsed to single underscores,
// at most 80 characters, no trailing underscore. Manual and parsed
// subjects both go through here.
func Sanitize(subject string) string {
	s := nonWordRe.ReplaceAllString(subject, "")
	s = strings.TrimSpace(s)
	s = spaceRunRe.ReplaceAllString(s, "_")
	if len(s) > maxSubjectLen {
		s = s[:maxSubjectLen]
	}
	return strings.TrimRight(s, "_")
}
