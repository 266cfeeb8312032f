package service

import (
	"net"
	"sync"

	"lark/internal/config"

	"github.com/oschwald/geoip2-golang"
	"github.com/rs/zerolog/log"
)

const geoUnknown = "unknown"

// GeoIPService resolves client IPs against a MaxMind City database.
// Lookups are best effort: a missing database, an unparsable address
// or a miss all come back as "unknown" fields rather than an error,
// because a click with imprecise geo beats a dropped click.
type GeoIPService struct {
	mu     sync.RWMutex
	reader *geoip2.Reader
}

// NewGeoIPService opens the configured database. An empty path or an
// open failure leaves the service in disabled mode.
func NewGeoIPService(cfg *config.GeoIPConfig) *GeoIPService {
	s := &GeoIPService{}

	if cfg.DBPath == "" {
		log.Warn().Msg("GeoIP database path not set, lookups disabled")
		return s
	}

	reader, err := geoip2.Open(cfg.DBPath)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.DBPath).Msg("Failed to open GeoIP database")
		return s
	}

	s.reader = reader
	log.Info().Str("path", cfg.DBPath).Uint("epoch", reader.Metadata().BuildEpoch).Msg("GeoIP database loaded")

	return s
}

// Lookup resolves an IP to country, region and city names
func (s *GeoIPService) Lookup(ipStr string) (country, region, city string) {
	country, region, city = geoUnknown, geoUnknown, geoUnknown

	s.mu.RLock()
	reader := s.reader
	s.mu.RUnlock()

	if reader == nil {
		return
	}

	ip := net.ParseIP(ipStr)
	if ip == nil {
		return
	}

	record, err := reader.City(ip)
	if err != nil {
		log.Debug().Err(err).Str("ip", ipStr).Msg("GeoIP lookup failed")
		return
	}

	if name, ok := record.Country.Names["en"]; ok && name != "" {
		country = name
	} else if record.Country.IsoCode != "" {
		country = record.Country.IsoCode
	}

	if len(record.Subdivisions) > 0 {
		if name, ok := record.Subdivisions[0].Names["en"]; ok && name != "" {
			region = name
		}
	}

	if name, ok := record.City.Names["en"]; ok && name != "" {
		city = name
	}

	return
}

// Close releases the underlying database reader
func (s *GeoIPService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.reader == nil {
		return nil
	}
	err := s.reader.Close()
	s.reader = nil
	return err
}
