package normalize

import (
	"regexp"
	"strings"

	"github.com/insuretext/policyscan/models"
)

// Documents come from one jurisdiction; country is assumed when unstated.
const defaultCountry = "South Africa"

var postalCodeRe = regexp.MustCompile(`\b(\d{4})\b`)

// Address splits free-text address blocks (newline or comma separated) into
// structured components. The last non-numeric segment is taken as the
// province, the one before it as the city, and a trailing 4-digit token as
// the postal code. FullAddress always preserves the source text verbatim.
func Address(text string) *models.Address {
	addr := &models.Address{Country: defaultCountry}

	raw := strings.TrimSpace(text)
	if raw == "" {
		return addr
	}

	var segments []string
	for _, line := range strings.Split(raw, "\n") {
		for _, seg := range strings.Split(line, ",") {
			if seg = strings.TrimSpace(seg); seg != "" {
				segments = append(segments, seg)
			}
		}
	}
	if len(segments) == 0 {
		return addr
	}

	full := strings.Join(segments, ", ")
	addr.FullAddress = &full

	// Pull the postal code out of whichever segment carries it, scanning
	// from the end where it normally sits.
	for i := len(segments) - 1; i >= 0; i-- {
		if m := postalCodeRe.FindString(segments[i]); m != "" {
			addr.PostalCode = models.Ptr(m)
			rest := strings.TrimSpace(postalCodeRe.ReplaceAllString(segments[i], ""))
			if rest == "" {
				segments = append(segments[:i], segments[i+1:]...)
			} else {
				segments[i] = rest
			}
			break
		}
	}

	n := len(segments)
	if n == 0 {
		return addr
	}
	addr.Line1 = models.Ptr(segments[0])
	if n >= 2 {
		addr.ProvinceState = models.Ptr(segments[n-1])
	}
	if n >= 3 {
		addr.City = models.Ptr(segments[n-2])
	}
	if n >= 4 {
		addr.Line2 = models.Ptr(segments[1])
	}
	if n >= 5 {
		addr.Line3 = models.Ptr(segments[2])
	}
	return addr
}
