package feed

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gitlab.heather.loc/helios/deribit/pkg/models"
	"gitlab.heather.loc/helios/deribit/pkg/models/subscription"
)

// Interval is the notification rate of a channel.
type Interval string

const (
	IntervalRaw   Interval = "raw"
	Interval100ms Interval = "100ms"
	IntervalAgg2  Interval = "agg2"
)

const AnnouncementsChannel = "announcements"

// FamilyOf resolves the payload family of a channel name.
func FamilyOf(channel string) (subscription.Family, error) {
	parts := strings.Split(channel, ".")
	switch parts[0] {
	case "announcements":
		if len(parts) == 1 {
			return subscription.FamilyAnnouncements, nil
		}
	case "book":
		switch len(parts) {
		case 3:
			return subscription.FamilyBook, nil
		case 5:
			return subscription.FamilyGroupedBook, nil
		}
	case "deribit_price_index":
		if len(parts) == 2 {
			return subscription.FamilyDeribitPriceIndex, nil
		}
	case "deribit_price_ranking":
		if len(parts) == 2 {
			return subscription.FamilyDeribitPriceRanking, nil
		}
	case "estimated_expiration_price":
		if len(parts) == 2 {
			return subscription.FamilyEstimatedExpirationPrice, nil
		}
	case "markprice":
		if len(parts) == 3 && parts[1] == "options" {
			return subscription.FamilyMarkPriceOptions, nil
		}
	case "perpetual":
		if len(parts) == 3 {
			return subscription.FamilyPerpetual, nil
		}
	case "quote":
		if len(parts) == 2 {
			return subscription.FamilyQuote, nil
		}
	case "ticker":
		if len(parts) == 3 {
			return subscription.FamilyTicker, nil
		}
	case "trades":
		// trades.<instrument>.<interval> or trades.<kind>.<currency>.<interval>
		if len(parts) == 3 || len(parts) == 4 {
			return subscription.FamilyTrades, nil
		}
	case "user":
		if len(parts) < 3 {
			break
		}
		switch parts[1] {
		case "orders":
			return subscription.FamilyUserOrders, nil
		case "portfolio":
			return subscription.FamilyUserPortfolio, nil
		case "trades":
			return subscription.FamilyUserTrades, nil
		}
	}
	return 0, errors.New("unsupported channel: " + channel)
}

// IsPrivate reports whether channel requires an authorized session.
func IsPrivate(channel string) bool {
	return strings.HasPrefix(channel, "user.")
}

func BookChannel(instrument string, interval Interval) string {
	return "book." + instrument + "." + string(interval)
}

// GroupedBookChannel names a book aggregated to group price steps with depth levels per side.
func GroupedBookChannel(instrument, group string, depth int, interval Interval) string {
	return "book." + instrument + "." + group + "." + strconv.Itoa(depth) + "." + string(interval)
}

func TickerChannel(instrument string, interval Interval) string {
	return "ticker." + instrument + "." + string(interval)
}

func TradesChannel(instrument string, interval Interval) string {
	return "trades." + instrument + "." + string(interval)
}

func QuoteChannel(instrument string) string {
	return "quote." + instrument
}

func PerpetualChannel(instrument string, interval Interval) string {
	return "perpetual." + instrument + "." + string(interval)
}

func PriceIndexChannel(indexName string) string {
	return "deribit_price_index." + indexName
}

func PriceRankingChannel(indexName string) string {
	return "deribit_price_ranking." + indexName
}

func EstimatedExpirationPriceChannel(indexName string) string {
	return "estimated_expiration_price." + indexName
}

func MarkPriceOptionsChannel(indexName string) string {
	return "markprice.options." + indexName
}

func UserOrdersChannel(instrument string, interval Interval) string {
	return "user.orders." + instrument + "." + string(interval)
}

func UserTradesChannel(instrument string, interval Interval) string {
	return "user.trades." + instrument + "." + string(interval)
}

func UserPortfolioChannel(currency models.Currency) string {
	return "user.portfolio." + strings.ToLower(currency.String())
}
