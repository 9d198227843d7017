package subscription

import (
	"bytes"
	"strconv"

	"gitlab.heather.loc/helios/deribit/pkg/models"
)

type decoder func(raw []byte) (Payload, error)

// validator is implemented by shapes with rules the wire format does not enforce.
type validator interface {
	Validate() error
}

var registry = map[Family]decoder{
	FamilyAnnouncements:            decodeAs[AnnouncementsData],
	FamilyBook:                     decodeAs[BookData],
	FamilyGroupedBook:              decodeAs[GroupedBookData],
	FamilyDeribitPriceIndex:        decodeAs[DeribitPriceIndexData],
	FamilyDeribitPriceRanking:      decodeAs[DeribitPriceRankingData],
	FamilyEstimatedExpirationPrice: decodeAs[EstimatedExpirationPriceData],
	FamilyMarkPriceOptions:         decodeAs[MarkPriceOptionData],
	FamilyPerpetual:                decodeAs[PerpetualData],
	FamilyQuote:                    decodeAs[QuoteData],
	FamilyTicker:                   decodeAs[TickerData],
	FamilyTrades:                   decodeAs[TradesData],
	FamilyUserOrders:               decodeAs[UserOrdersData],
	FamilyUserPortfolio:            decodeAs[UserPortfolioData],
	FamilyUserTrades:               decodeAs[UserTradesData],
}

func decodeAs[T Payload](raw []byte) (Payload, error) {
	var p T
	if err := models.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	if v, ok := any(p).(validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Decode turns the data member of a notification into the payload of family.
// Every failure is a *models.DecodeError carrying the family name.
func Decode(family Family, raw []byte) (Payload, error) {
	dec, ok := registry[family]
	if !ok {
		return nil, &models.DecodeError{Reason: "unknown family " + strconv.Itoa(int(family))}
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, &models.DecodeError{Family: family.String(), Reason: "null payload"}
	}
	p, err := dec(raw)
	if err != nil {
		return nil, models.AsDecodeError(family.String(), err)
	}
	return p, nil
}
