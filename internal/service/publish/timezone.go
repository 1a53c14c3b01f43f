package publish

import (
	"fmt"
	"time"

	"github.com/heartmarshall/contentdesk/internal/domain"
)

// civilLayout is the posting API's naive local date-time format: minute
// precision, 24-hour clock, no offset.
const civilLayout = "2006-01-02T15:04"

// CivilTime renders the instant as wall-clock time in loc. The conversion is
// date-dependent: the zone's daylight-saving offset for that date applies,
// never a fixed offset.
func CivilTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(civilLayout)
}

// LoadZone resolves an IANA timezone name. Unlike a lenient parse there is no
// UTC fallback: a misconfigured zone would silently shift every scheduled
// post, so it fails loudly.
func LoadZone(name string) (*time.Location, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: zone name is empty", domain.ErrTimezone)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: load zone %q: %v", domain.ErrTimezone, name, err)
	}
	return loc, nil
}
