package db

import "context"

// RedisClient defines the methods available in the Redis client
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	SAdd(key string, members ...string) error
	SMembers(key string) ([]string, error)
	SIsMember(key, member string) (bool, error)
	AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lon float64, data interface{}) error
	GetLocationsWithinRadius(key string, lat, lon, radiusKm float64) ([]string, error)
	GetContext() context.Context
	Ping() error
	Keys(pattern string) ([]string, error)
	Del(key string) error
}
