package service

import (
	"context"
	"strings"

	localCache "github.com/sahradeniz/Astrologi-Ai-sub000/cache"
	"github.com/sahradeniz/Astrologi-Ai-sub000/client"
	"github.com/sahradeniz/Astrologi-Ai-sub000/customerrors"
	"github.com/sahradeniz/Astrologi-Ai-sub000/model"
	"github.com/sahradeniz/Astrologi-Ai-sub000/util"
)

// HoroscopeService fetches the playful horoscope message, memoized per
// name+birthdate for the session.
type HoroscopeService interface {
	Fetch(ctx context.Context, name, birthdate string) (*model.HoroscopeResult, error)
}

type HoroscopeServiceImpl struct {
	client *client.AstroClient
}

func NewHoroscopeService(c *client.AstroClient) HoroscopeService {
	return &HoroscopeServiceImpl{client: c}
}

func (s *HoroscopeServiceImpl) Fetch(ctx context.Context, name, birthdate string) (*model.HoroscopeResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, customerrors.NewValidationError("name", "Lütfen ismini belirt")
	}

	birthdate = strings.TrimSpace(birthdate)
	if birthdate != "" {
		if _, err := util.ParseISODate(birthdate); err != nil {
			return nil, customerrors.NewValidationError("birthdate",
				"Geçersiz doğum tarihi formatı. YYYY-MM-DD kullan")
		}
	}

	cacheKey := name + "_" + birthdate
	var cached model.HoroscopeResult
	if localCache.GetHoroscope(cacheKey, &cached) {
		return &cached, nil
	}

	result, err := s.client.GetHoroscope(ctx, model.HoroscopeRequest{Name: name, Birthdate: birthdate})
	if err != nil {
		return nil, err
	}

	localCache.SetHoroscope(cacheKey, *result)
	return result, nil
}
