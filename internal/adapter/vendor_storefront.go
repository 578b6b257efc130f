package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/cyphers-laptop/internal/config"
	"github.com/MKhiriev/cyphers-laptop/internal/logger"
	"github.com/MKhiriev/cyphers-laptop/internal/metrics"
	"github.com/MKhiriev/cyphers-laptop/internal/utils"
	"github.com/MKhiriev/cyphers-laptop/models"
)

type storefrontResponse struct {
	SkinsPanelLayout *struct {
		SingleItemOffers                           []string `json:"SingleItemOffers"`
		SingleItemOffersRemainingDurationInSeconds int64    `json:"SingleItemOffersRemainingDurationInSeconds"`
	} `json:"SkinsPanelLayout"`
	BonusStore *struct {
		BonusStoreOffers []struct {
			BonusOfferID string `json:"BonusOfferID"`
			Offer        struct {
				OfferID string           `json:"OfferID"`
				Cost    map[string]int64 `json:"Cost"`
			} `json:"Offer"`
			DiscountPercent int              `json:"DiscountPercent"`
			DiscountCosts   map[string]int64 `json:"DiscountCosts"`
			IsSeen          bool             `json:"IsSeen"`
		} `json:"BonusStoreOffers"`
		BonusStoreRemainingDurationInSeconds int64 `json:"BonusStoreRemainingDurationInSeconds"`
	} `json:"BonusStore"`
}

type walletResponse struct {
	Balances map[string]int64 `json:"Balances"`
}

type storefrontGateway struct {
	cfg     config.Vendor
	metrics metrics.Recorder
	logger  *logger.Logger
}

// NewStorefrontGateway constructs the HTTP implementation of
// [StorefrontGateway]. cfg.StorefrontURL is a template whose "%s" is
// replaced by the region code of each query.
func NewStorefrontGateway(cfg config.Vendor, rec metrics.Recorder, log *logger.Logger) StorefrontGateway {
	if rec == nil {
		rec = metrics.Nop()
	}
	return &storefrontGateway{cfg: cfg, metrics: rec, logger: log}
}

func (g *storefrontGateway) client(q models.StorefrontQuery) *utils.HTTPClient {
	baseURL := g.cfg.StorefrontURL
	if strings.Contains(baseURL, "%s") {
		baseURL = fmt.Sprintf(baseURL, q.Region)
	}

	client := utils.NewJSONClient(strings.TrimRight(baseURL, "/"), g.cfg.RequestTimeout)
	client.
		SetAuthToken(q.Session.BearerToken).
		SetHeader("X-Riot-Entitlements-JWT", q.Session.EntitlementToken).
		SetHeader("X-Riot-ClientPlatform", g.cfg.ClientPlatform).
		SetHeader("X-Riot-ClientVersion", g.cfg.ClientVersion).
		SetHeader("User-Agent", q.AccountIdentifier)
	return client
}

func (g *storefrontGateway) get(ctx context.Context, q models.StorefrontQuery, endpoint, path string, dst any) error {
	if !q.Session.Complete() {
		return fmt.Errorf("%w: %s: incomplete session", ErrTransport, endpoint)
	}

	resp, err := g.client(q).R().SetContext(ctx).Get(path)
	if err != nil {
		return transportError(endpoint, err)
	}
	g.metrics.RecordVendorStatus(endpoint, resp.StatusCode())
	if err = mapVendorStatus(endpoint, resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), dst); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUpstreamData, endpoint, err)
	}
	return nil
}

func (g *storefrontGateway) storefront(ctx context.Context, q models.StorefrontQuery) (storefrontResponse, error) {
	var data storefrontResponse
	err := g.get(ctx, q, "storefront", "/store/v2/storefront/"+q.Session.ExternalUserID+"/", &data)
	return data, err
}

// FetchDailyOffers implements [StorefrontGateway].
func (g *storefrontGateway) FetchDailyOffers(ctx context.Context, q models.StorefrontQuery) (models.DailyOffers, error) {
	data, err := g.storefront(ctx, q)
	if err != nil {
		return models.DailyOffers{}, err
	}

	panel := data.SkinsPanelLayout
	if panel == nil {
		return models.DailyOffers{}, fmt.Errorf("%w: storefront without skins panel", ErrUpstreamData)
	}
	if len(panel.SingleItemOffers) != models.OfferSlots {
		return models.DailyOffers{}, fmt.Errorf("%w: expected %d offers, got %d",
			ErrUpstreamData, models.OfferSlots, len(panel.SingleItemOffers))
	}

	offers := make([]string, 0, models.OfferSlots)
	for _, raw := range panel.SingleItemOffers {
		id, err := utils.NormalizeUUID(raw)
		if err != nil {
			return models.DailyOffers{}, fmt.Errorf("%w: %v", ErrUpstreamData, err)
		}
		offers = append(offers, id)
	}

	return models.DailyOffers{
		OfferIDs:  offers,
		Remaining: seconds(panel.SingleItemOffersRemainingDurationInSeconds),
	}, nil
}

// FetchWallet implements [StorefrontGateway].
func (g *storefrontGateway) FetchWallet(ctx context.Context, q models.StorefrontQuery) (models.WalletBalance, error) {
	var data walletResponse
	if err := g.get(ctx, q, "wallet", "/store/v1/wallet/"+q.Session.ExternalUserID, &data); err != nil {
		return nil, err
	}
	if data.Balances == nil {
		return nil, fmt.Errorf("%w: wallet without balances", ErrUpstreamData)
	}

	balance := make(models.WalletBalance, len(data.Balances))
	for raw, amount := range data.Balances {
		id, err := utils.NormalizeUUID(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUpstreamData, err)
		}
		balance[models.Currency(id)] = amount
	}
	return balance, nil
}

// FetchNightMarket implements [StorefrontGateway].
func (g *storefrontGateway) FetchNightMarket(ctx context.Context, q models.StorefrontQuery) (models.NightMarket, error) {
	data, err := g.storefront(ctx, q)
	if err != nil {
		return models.NightMarket{}, err
	}

	bonus := data.BonusStore
	if bonus == nil || len(bonus.BonusStoreOffers) == 0 {
		return models.NightMarket{Active: false}, nil
	}

	market := models.NightMarket{
		Active:    true,
		Offers:    make([]models.NightMarketOffer, 0, len(bonus.BonusStoreOffers)),
		Remaining: seconds(bonus.BonusStoreRemainingDurationInSeconds),
	}
	for _, o := range bonus.BonusStoreOffers {
		id, err := utils.NormalizeUUID(o.Offer.OfferID)
		if err != nil {
			return models.NightMarket{}, fmt.Errorf("%w: %v", ErrUpstreamData, err)
		}
		market.Offers = append(market.Offers, models.NightMarketOffer{
			OfferID:         id,
			OriginalCost:    o.Offer.Cost[string(models.CurrencyValorantPoints)],
			DiscountPercent: o.DiscountPercent,
			DiscountedCost:  o.DiscountCosts[string(models.CurrencyValorantPoints)],
			Seen:            o.IsSeen,
		})
	}
	return market, nil
}

func seconds(n int64) time.Duration {
	if n < 0 {
		return 0
	}
	return time.Duration(n) * time.Second
}
