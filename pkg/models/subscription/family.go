package subscription

import (
	"bytes"
	"strconv"

	"gitlab.heather.loc/helios/deribit/pkg/models"
)

// Family is the resolved category of a channel topic. It selects the payload shape.
type Family uint8

const (
	FamilyAnnouncements Family = iota
	FamilyBook
	FamilyGroupedBook
	FamilyDeribitPriceIndex
	FamilyDeribitPriceRanking
	FamilyEstimatedExpirationPrice
	FamilyMarkPriceOptions
	FamilyPerpetual
	FamilyQuote
	FamilyTicker
	FamilyTrades
	FamilyUserOrders
	FamilyUserPortfolio
	FamilyUserTrades

	familyCount = iota
)

var familyNames = [familyCount]string{
	"announcements",
	"book",
	"grouped_book",
	"deribit_price_index",
	"deribit_price_ranking",
	"estimated_expiration_price",
	"markprice_options",
	"perpetual",
	"quote",
	"ticker",
	"trades",
	"user_orders",
	"user_portfolio",
	"user_trades",
}

var familyBytes [familyCount][]byte

func init() {
	for i, name := range familyNames {
		familyBytes[i] = []byte(strconv.Quote(name))
	}
}

// Families lists every family in declaration order.
func Families() []Family {
	result := make([]Family, familyCount)
	for i := range result {
		result[i] = Family(i)
	}
	return result
}

func (f Family) String() string {
	if int(f) < familyCount {
		return familyNames[f]
	}
	panic("invalid family string conversion" + strconv.Itoa(int(f)))
}

func (f Family) MarshalJSON() ([]byte, error) {
	if int(f) < familyCount {
		return familyBytes[f], nil
	}
	return nil, &models.DecodeError{Reason: "invalid family json conversion: " + strconv.Itoa(int(f))}
}

func (f *Family) UnmarshalJSON(data []byte) error {
	for i, b := range familyBytes {
		if bytes.Equal(data, b) {
			*f = Family(i)
			return nil
		}
	}
	return &models.DecodeError{Reason: "unsupported family: " + string(data)}
}

func FamilyStrToType(value string) (Family, error) {
	for i, name := range familyNames {
		if name == value {
			return Family(i), nil
		}
	}
	return 0, &models.DecodeError{Reason: "unsupported family: " + value}
}
