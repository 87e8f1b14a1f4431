package pdf

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/gosimple/unidecode"
)

var slugPattern = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// Slug makes a string safe for use in a download filename: accented
// characters are transliterated to ASCII and any run of other characters
// collapses to a single underscore. An empty input yields "-".
func Slug(s string) string {
	s = unidecode.Unidecode(strings.TrimSpace(s))
	s = slugPattern.ReplaceAllString(s, "_")
	if s == "" {
		return "-"
	}
	return s
}

// Filename derives the deterministic protocol download name from the slip
// header.
func Filename(orderNo, customer string, createdAt time.Time) string {
	return fmt.Sprintf("%s_%s_%s_SNProtokoll.pdf",
		Slug(orderNo),
		Slug(customer),
		createdAt.Format("02.01.2006"),
	)
}
