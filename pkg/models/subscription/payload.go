package subscription

// Payload is the decoded data of one channel notification. The set of implementations is closed:
// one type per Family, with no shared base.
type Payload interface {
	Family() Family
	payload()
}

func (AnnouncementsData) Family() Family            { return FamilyAnnouncements }
func (BookData) Family() Family                     { return FamilyBook }
func (GroupedBookData) Family() Family              { return FamilyGroupedBook }
func (DeribitPriceIndexData) Family() Family        { return FamilyDeribitPriceIndex }
func (DeribitPriceRankingData) Family() Family      { return FamilyDeribitPriceRanking }
func (EstimatedExpirationPriceData) Family() Family { return FamilyEstimatedExpirationPrice }
func (MarkPriceOptionData) Family() Family          { return FamilyMarkPriceOptions }
func (PerpetualData) Family() Family                { return FamilyPerpetual }
func (QuoteData) Family() Family                    { return FamilyQuote }
func (TickerData) Family() Family                   { return FamilyTicker }
func (TradesData) Family() Family                   { return FamilyTrades }
func (UserOrdersData) Family() Family               { return FamilyUserOrders }
func (UserPortfolioData) Family() Family            { return FamilyUserPortfolio }
func (UserTradesData) Family() Family               { return FamilyUserTrades }

func (AnnouncementsData) payload()            {}
func (BookData) payload()                     {}
func (GroupedBookData) payload()              {}
func (DeribitPriceIndexData) payload()        {}
func (DeribitPriceRankingData) payload()      {}
func (EstimatedExpirationPriceData) payload() {}
func (MarkPriceOptionData) payload()          {}
func (PerpetualData) payload()                {}
func (QuoteData) payload()                    {}
func (TickerData) payload()                   {}
func (TradesData) payload()                   {}
func (UserOrdersData) payload()               {}
func (UserPortfolioData) payload()            {}
func (UserTradesData) payload()               {}
