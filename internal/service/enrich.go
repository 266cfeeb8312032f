package service

import (
	"strings"
	"time"

	"lark/internal/model"
	"lark/pkg/util"

	"github.com/mssola/user_agent"
)

// deviceRule maps a user-agent substring to a device class. Rules are
// evaluated top to bottom; tablet rules come before mobile ones since
// tablet user agents usually also carry a mobile token.
type deviceRule struct {
	pattern string
	device  string
}

var deviceRules = []deviceRule{
	{"ipad", model.DeviceTablet},
	{"tablet", model.DeviceTablet},
	{"kindle", model.DeviceTablet},
	{"silk", model.DeviceTablet},
	{"playbook", model.DeviceTablet},
	{"mobile", model.DeviceMobile},
	{"iphone", model.DeviceMobile},
	{"ipod", model.DeviceMobile},
	{"android", model.DeviceMobile},
	{"blackberry", model.DeviceMobile},
	{"windows phone", model.DeviceMobile},
	{"opera mini", model.DeviceMobile},
}

// ClassifyDevice maps a user-agent string to mobile, tablet or
// desktop. Unknown agents classify as desktop.
func ClassifyDevice(userAgent string) string {
	ua := strings.ToLower(userAgent)
	for _, rule := range deviceRules {
		if strings.Contains(ua, rule.pattern) {
			return rule.device
		}
	}
	return model.DeviceDesktop
}

// Enricher derives the stored dimensions of a click event from the raw
// visit metadata. The client IP is hashed here; nothing downstream
// ever sees the raw address.
type Enricher struct {
	geo      GeoLookupInterface
	ipSecret string
}

// NewEnricher creates a new Enricher
func NewEnricher(geo GeoLookupInterface, ipSecret string) *Enricher {
	return &Enricher{
		geo:      geo,
		ipSecret: ipSecret,
	}
}

// Enrich builds a ClickEvent from a visit. Every derivation is best
// effort with an explicit fallback; a visit always yields a complete
// event. The referrer is stored raw, display shaping happens at
// aggregation time.
func (e *Enricher) Enrich(v model.Visit) model.ClickEvent {
	ts := v.Time
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	country, region, city := e.geo.Lookup(v.IP)

	ua := user_agent.New(v.UserAgent)
	browser, _ := ua.Browser()
	if browser == "" {
		browser = "unknown"
	}
	osName := ua.OS()
	if osName == "" {
		osName = "unknown"
	}

	return model.ClickEvent{
		ID:        util.GenerateUUID(),
		LinkID:    v.LinkID,
		Timestamp: ts,
		IPHash:    util.HashIP(e.ipSecret, v.IP),
		Country:   country,
		Region:    region,
		City:      city,
		Language:  primaryLanguage(v.Language),
		Device:    ClassifyDevice(v.UserAgent),
		OS:        osName,
		Browser:   browser,
		Referrer:  v.Referrer,
	}
}

// primaryLanguage extracts the first tag from an Accept-Language header
func primaryLanguage(header string) string {
	if header == "" {
		return "unknown"
	}
	tag := header
	if idx := strings.Index(tag, ","); idx >= 0 {
		tag = tag[:idx]
	}
	if idx := strings.Index(tag, ";"); idx >= 0 {
		tag = tag[:idx]
	}
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return "unknown"
	}
	return tag
}
