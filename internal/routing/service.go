package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/greenmiles/greenroute/pkg/common"
	"github.com/greenmiles/greenroute/pkg/logger"
	redisClient "github.com/greenmiles/greenroute/pkg/redis"
	"github.com/greenmiles/greenroute/pkg/resilience"
	"go.uber.org/zap"
)

const (
	optimizeCachePrefix = "routes:optimize:"
	optimizeCacheTTL    = 10 * time.Minute

	fallbackWarning = "Live route data was unavailable; showing estimated sample routes."
)

// Service orchestrates the route optimization pipeline: geocode both
// endpoints, fetch candidate routes, synthesize the three variants, then
// score and price each one. Any adapter failure switches the request to
// the fallback synthesis path; the decision is made once per request.
type Service struct {
	geocoder Geocoder
	routes   RouteSource
	redis    redisClient.ClientInterface

	// nowHour supplies the local hour of day; overridable in tests so
	// the rush-hour bucket is deterministic.
	nowHour func() int
}

// NewService creates a routing service.
func NewService(geocoder Geocoder, routes RouteSource, redis redisClient.ClientInterface) *Service {
	return &Service{
		geocoder: geocoder,
		routes:   routes,
		redis:    redis,
		nowHour:  func() int { return time.Now().Hour() },
	}
}

// SetHourFunc overrides the hour-of-day source.
func (s *Service) SetHourFunc(fn func() int) {
	if fn != nil {
		s.nowHour = fn
	}
}

// Optimize runs the full pipeline for one request. It only fails on
// invalid input; upstream outages degrade to the sample-data response.
func (s *Service) Optimize(ctx context.Context, req *OptimizeRequest) (*OptimizeResponse, error) {
	if strings.TrimSpace(req.Origin) == "" || strings.TrimSpace(req.Destination) == "" {
		return nil, common.NewBadRequestError("origin and destination are required", nil)
	}

	vehicleType := req.VehicleType
	if vehicleType == "" {
		vehicleType = defaultVehicleType
	}
	fuelType := req.FuelType
	if fuelType == "" {
		fuelType = defaultFuelType
	}

	hour := s.nowHour()
	cacheKey := s.cacheKey(req.Origin, req.Destination, vehicleType, fuelType, hour)
	if cached, err := s.getCachedResponse(ctx, cacheKey); err == nil {
		return cached, nil
	}

	data, live := s.fetchLiveData(ctx, req.Origin, req.Destination)

	var variants []RouteVariant
	if live {
		variants = SynthesizeVariants(data, hour)
	} else {
		variants = FallbackVariants()
	}

	for i := range variants {
		PriceVariant(&variants[i], vehicleType, fuelType)
		variants[i].GreenScore = GreenScore(&variants[i])
	}

	resp := &OptimizeResponse{
		Routes:         variants,
		Recommendation: SelectRecommendation(variants),
		VehicleInfo: VehicleInfo{
			Type:       vehicleType,
			FuelType:   fuelType,
			Efficiency: VehicleEfficiency(vehicleType, fuelType),
		},
		DataSource: DataSourceLive,
	}

	if !live {
		resp.DataSource = DataSourceFallback
		resp.Warning = fallbackWarning
		resilience.RecordDegradedResult("route_optimize")
	} else {
		s.cacheResponse(ctx, cacheKey, resp)
	}

	return resp, nil
}

// Vehicles returns the supported vehicle/fuel combinations.
func (s *Service) Vehicles() []VehicleOption {
	return SupportedVehicles()
}

// fetchLiveData resolves both endpoints and fetches routes. It reports
// live=false on any failure; failures are logged, never surfaced.
func (s *Service) fetchLiveData(ctx context.Context, origin, destination string) (*RouteData, bool) {
	var (
		wg                     sync.WaitGroup
		originPlace, destPlace *GeocodedPlace
		originErr, destErr     error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		originPlace, originErr = s.geocoder.Geocode(ctx, origin)
	}()
	go func() {
		defer wg.Done()
		destPlace, destErr = s.geocoder.Geocode(ctx, destination)
	}()
	wg.Wait()

	if originErr != nil || destErr != nil {
		logger.WarnContext(ctx, "geocoding failed, using fallback routes",
			zap.String("origin", origin),
			zap.String("destination", destination),
			zap.NamedError("origin_error", originErr),
			zap.NamedError("destination_error", destErr),
		)
		return nil, false
	}

	data, err := s.routes.FetchRoutes(ctx, originPlace.Coordinate(), destPlace.Coordinate())
	if err != nil {
		logger.WarnContext(ctx, "route fetch failed, using fallback routes",
			zap.String("origin_cell", originPlace.H3Cell),
			zap.String("destination_cell", destPlace.H3Cell),
			zap.Error(err),
		)
		return nil, false
	}

	logger.DebugContext(ctx, "live route data fetched",
		zap.Int("routes", len(data.Routes)),
		zap.Int("stops", data.StopCount),
		zap.Bool("highway", data.HasHighway),
	)

	return data, true
}

// cacheKey buckets by rush hour so cached responses keep the traffic
// level they were computed with.
func (s *Service) cacheKey(origin, destination, vehicleType, fuelType string, hour int) string {
	bucket := "offpeak"
	if isRushHour(hour) {
		bucket = "rush"
	}
	return fmt.Sprintf("%s%s|%s|%s|%s|%s",
		optimizeCachePrefix,
		strings.ToLower(strings.TrimSpace(origin)),
		strings.ToLower(strings.TrimSpace(destination)),
		vehicleType, fuelType, bucket,
	)
}

func (s *Service) getCachedResponse(ctx context.Context, key string) (*OptimizeResponse, error) {
	if s.redis == nil {
		return nil, fmt.Errorf("no cache")
	}
	data, err := s.redis.GetString(ctx, key)
	if err != nil {
		return nil, err
	}
	var resp OptimizeResponse
	if err := json.Unmarshal([]byte(data), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// cacheResponse stores live responses only; fallback responses must not
// mask a recovered upstream.
func (s *Service) cacheResponse(ctx context.Context, key string, resp *OptimizeResponse) {
	if s.redis == nil {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.redis.SetWithExpiration(ctx, key, data, optimizeCacheTTL); err != nil {
		logger.WarnContext(ctx, "failed to cache optimize response", zap.String("key", key), zap.Error(err))
	}
}
