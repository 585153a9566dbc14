package services

import (
	"context"
	"encoding/json"
	"portfolio-http-service/internal/domain/models"
	"portfolio-http-service/internal/infrastructure/config"
	"time"

	"github.com/go-redis/redis/v8"
)

// 站点设置缓存键和有效期
const (
	siteSettingsCacheKey = "site_settings"
	siteSettingsCacheTTL = 5 * time.Minute
)

// InterfaceRedisService defines the Redis service interface
type InterfaceRedisService interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string, dest interface{}) error
	Delete(key string) error
	CacheSiteSettings(settings *models.SiteSettings) error
	GetSiteSettings() (*models.SiteSettings, error)
	InvalidateSiteSettings() error
}

// RedisService handles Redis operations
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) InterfaceRedisService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: "", // No password set
		DB:       cfg.RedisDB,
	})

	ctx := context.Background()

	return &RedisService{
		Client: client,
		Ctx:    ctx,
	}
}

// 1 Set sets a key-value pair in Redis with expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// 2 Get gets a value from Redis by key
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(val), dest)
}

// 3 Delete deletes a key from Redis
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// 4 CacheSiteSettings caches the site settings singleton
func (s *RedisService) CacheSiteSettings(settings *models.SiteSettings) error {
	return s.Set(siteSettingsCacheKey, settings, siteSettingsCacheTTL)
}

// 5 GetSiteSettings gets the cached site settings
func (s *RedisService) GetSiteSettings() (*models.SiteSettings, error) {
	var settings models.SiteSettings
	if err := s.Get(siteSettingsCacheKey, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// 6 InvalidateSiteSettings drops the cached site settings
func (s *RedisService) InvalidateSiteSettings() error {
	return s.Delete(siteSettingsCacheKey)
}
