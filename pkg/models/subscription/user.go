package subscription

import "gitlab.heather.loc/helios/deribit/pkg/models"

// UserOrdersData holds the orders of one user.orders.* notification. The raw channel sends a
// single order, the batched one a list; both decode to a list.
type UserOrdersData []models.Order

func (d *UserOrdersData) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '{' {
		var order models.Order
		if err := order.UnmarshalJSON(data); err != nil {
			return err
		}
		*d = UserOrdersData{order}
		return nil
	}
	var orders []models.Order
	if err := models.Unmarshal(data, &orders); err != nil {
		return err
	}
	if orders == nil {
		return &models.DecodeError{Reason: "expected order or list of orders, got: null"}
	}
	*d = orders
	return nil
}

type UserTradesData []models.Trade

type UserPortfolioData struct {
	Currency                   models.Currency `json:"currency"`
	Balance                    float64         `json:"balance"`
	Equity                     float64         `json:"equity"`
	AvailableFunds             float64         `json:"available_funds"`
	AvailableWithdrawalFunds   float64         `json:"available_withdrawal_funds"`
	MarginBalance              float64         `json:"margin_balance"`
	InitialMargin              float64         `json:"initial_margin"`
	MaintenanceMargin          float64         `json:"maintenance_margin"`
	ProjectedInitialMargin     float64         `json:"projected_initial_margin"`
	ProjectedMaintenanceMargin float64         `json:"projected_maintenance_margin"`
	DeltaTotal                 float64         `json:"delta_total"`
	ProjectedDeltaTotal        float64         `json:"projected_delta_total"`
	TotalPl                    float64         `json:"total_pl"`
	SessionRpl                 float64         `json:"session_rpl"`
	SessionUpl                 float64         `json:"session_upl"`
	FuturesPl                  float64         `json:"futures_pl"`
	FuturesSessionRpl          float64         `json:"futures_session_rpl"`
	FuturesSessionUpl          float64         `json:"futures_session_upl"`
	OptionsPl                  float64         `json:"options_pl"`
	OptionsSessionRpl          float64         `json:"options_session_rpl"`
	OptionsSessionUpl          float64         `json:"options_session_upl"`
	OptionsDelta               float64         `json:"options_delta"`
	OptionsGamma               float64         `json:"options_gamma"`
	OptionsTheta               float64         `json:"options_theta"`
	OptionsVega                float64         `json:"options_vega"`
	OptionsValue               float64         `json:"options_value"`
	PortfolioMarginingEnabled  bool            `json:"portfolio_margining_enabled"`
	Fee                        *float64        `json:"fee,omitempty"`
}

var userPortfolioRequired = []string{
	"currency", "balance", "equity", "available_funds", "available_withdrawal_funds",
	"margin_balance", "initial_margin", "maintenance_margin", "projected_initial_margin",
	"projected_maintenance_margin", "delta_total", "projected_delta_total", "total_pl",
	"session_rpl", "session_upl", "futures_pl", "futures_session_rpl", "futures_session_upl",
	"options_pl", "options_session_rpl", "options_session_upl", "options_delta",
	"options_gamma", "options_theta", "options_vega", "options_value",
	"portfolio_margining_enabled",
}

func (d *UserPortfolioData) UnmarshalJSON(data []byte) error {
	if err := models.RequireFields(data, userPortfolioRequired...); err != nil {
		return err
	}
	type plain UserPortfolioData
	return models.DecodePlain(data, (*plain)(d))
}
