package cache

import (
	"time"

	"github.com/sahradeniz/Astrologi-Ai-sub000/model"

	"github.com/patrickmn/go-cache"
)

// RateLimiterCache holds one limiter per client IP.
var RateLimiterCache = cache.New(1*time.Hour, 10*time.Minute)

// HoroscopeCache memoizes horoscope replies per name+birthdate so repeated
// form submits within a session skip the remote call.
var HoroscopeCache = cache.New(30*time.Minute, 10*time.Minute)

func GetHoroscope(key string, dest *model.HoroscopeResult) bool {
	v, found := HoroscopeCache.Get(key)
	if !found {
		return false
	}
	result, ok := v.(model.HoroscopeResult)
	if !ok {
		return false
	}
	*dest = result
	return true
}

func SetHoroscope(key string, value model.HoroscopeResult) {
	HoroscopeCache.Set(key, value, cache.DefaultExpiration)
}
