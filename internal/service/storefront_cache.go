// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/cyphers-laptop/internal/adapter"
	"github.com/MKhiriev/cyphers-laptop/internal/logger"
	"github.com/MKhiriev/cyphers-laptop/internal/metrics"
	"github.com/MKhiriev/cyphers-laptop/internal/store"
	"github.com/MKhiriev/cyphers-laptop/models"
)

type storefrontCache struct {
	repository store.StorefrontRepository
	gateway    adapter.StorefrontGateway
	metrics    metrics.Recorder

	now    func() time.Time
	logger *logger.Logger
}

func NewStorefrontCache(repository store.StorefrontRepository, gateway adapter.StorefrontGateway, rec metrics.Recorder, logger *logger.Logger) StorefrontCache {
	if rec == nil {
		rec = metrics.Nop()
	}
	return &storefrontCache{
		repository: repository,
		gateway:    gateway,
		metrics:    rec,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *storefrontCache) GetOrFetch(ctx context.Context, req StorefrontRequest, factory SessionFactory) (models.DailyOffers, error) {
	log := logger.FromContext(ctx)
	now := s.now().UTC()
	today := models.CalendarDate(now)
	date := today
	if !req.ForDate.IsZero() {
		date = models.CalendarDate(req.ForDate)
	}

	entry, err := s.repository.Find(ctx, req.OwnerID, date)
	if err == nil {
		s.metrics.RecordCacheLookup(metrics.CacheHit)
		return offersOf(entry, now), nil
	}
	if !errors.Is(err, store.ErrStorefrontNotFound) {
		return models.DailyOffers{}, err
	}

	// past days are never refetched: the vendor only serves the current one
	if !date.Equal(today) || factory == nil {
		s.metrics.RecordCacheLookup(metrics.CacheMiss)
		return models.DailyOffers{}, ErrCacheMiss
	}

	session, err := factory(ctx)
	if err != nil {
		return models.DailyOffers{}, err
	}

	offers, err := s.gateway.FetchDailyOffers(ctx, models.StorefrontQuery{
		Session:           session,
		Region:            req.Region,
		AccountIdentifier: req.AccountIdentifier,
	})
	if err != nil {
		return models.DailyOffers{}, mapAdapterError(err)
	}

	entry, err = models.NewStorefrontEntry(req.OwnerID, today, offers.OfferIDs, now.Add(offers.Remaining))
	if err != nil {
		return models.DailyOffers{}, fmt.Errorf("%w: %v", ErrUpstreamData, err)
	}

	inserted, err := s.repository.InsertIfAbsent(ctx, entry)
	if err != nil {
		return models.DailyOffers{}, err
	}
	if inserted {
		s.metrics.RecordCacheLookup(metrics.CacheFetched)
		log.Debug().Str("func", "*storefrontCache.GetOrFetch").
			Int64("owner_id", req.OwnerID).
			Time("store_date", today).
			Msg("storefront cached")
		return offersOf(entry, now), nil
	}

	// another writer stored today's row first; its row is the answer
	s.metrics.RecordCacheLookup(metrics.CacheConflict)
	stored, err := s.repository.Find(ctx, req.OwnerID, today)
	if err != nil {
		log.Err(err).Str("func", "*storefrontCache.GetOrFetch").
			Int64("owner_id", req.OwnerID).
			Msg("error re-reading storefront after conflict")
		return models.DailyOffers{}, err
	}
	return offersOf(stored, now), nil
}

func (s *storefrontCache) History(ctx context.Context, r models.HistoryRange) ([]models.StorefrontEntry, error) {
	return s.repository.History(ctx, r.OwnerID, models.CalendarDate(r.From), models.CalendarDate(r.To))
}

func offersOf(entry models.StorefrontEntry, now time.Time) models.DailyOffers {
	return models.DailyOffers{
		OfferIDs:  entry.Offers(),
		Remaining: entry.Remaining(now),
	}
}
