package models

type GetAccountSummaryRequest struct {
	Currency Currency `json:"currency"`
	Extended bool     `json:"extended,omitempty"`
}

func (GetAccountSummaryRequest) Method() string {
	return "private/get_account_summary"
}

func (GetAccountSummaryRequest) NewResponse() *AccountSummary {
	return new(AccountSummary)
}

type AccountSummary struct {
	Currency                   Currency `json:"currency"`
	Balance                    float64  `json:"balance"`
	Equity                     float64  `json:"equity"`
	AvailableFunds             float64  `json:"available_funds"`
	AvailableWithdrawalFunds   float64  `json:"available_withdrawal_funds"`
	MarginBalance              float64  `json:"margin_balance"`
	InitialMargin              float64  `json:"initial_margin"`
	MaintenanceMargin          float64  `json:"maintenance_margin"`
	ProjectedInitialMargin     float64  `json:"projected_initial_margin"`
	ProjectedMaintenanceMargin float64  `json:"projected_maintenance_margin"`
	SessionUPL                 float64  `json:"session_upl"`
	SessionRPL                 float64  `json:"session_rpl"`
	TotalPL                    float64  `json:"total_pl"`
	FuturesPL                  float64  `json:"futures_pl"`
	OptionsPL                  float64  `json:"options_pl"`
	DeltaTotal                 float64  `json:"delta_total"`
	OptionsDelta               float64  `json:"options_delta"`
	OptionsGamma               float64  `json:"options_gamma"`
	OptionsTheta               float64  `json:"options_theta"`
	OptionsVega                float64  `json:"options_vega"`
	PortfolioMarginingEnabled  bool     `json:"portfolio_margining_enabled"`
	FeeBalance                 *float64 `json:"fee_balance,omitempty"`
	Username                   *string  `json:"username,omitempty"`
	Email                      *string  `json:"email,omitempty"`
	ID                         *uint64  `json:"id,omitempty"`
}

var accountSummaryRequired = []string{
	"currency", "balance", "equity", "available_funds", "available_withdrawal_funds",
	"margin_balance", "initial_margin", "maintenance_margin", "session_upl", "session_rpl",
	"total_pl", "delta_total",
}

func (a *AccountSummary) UnmarshalJSON(data []byte) error {
	if err := RequireFields(data, accountSummaryRequired...); err != nil {
		return err
	}
	type plain AccountSummary
	return DecodePlain(data, (*plain)(a))
}

type GetPositionsRequest struct {
	Currency Currency   `json:"currency"`
	Kind     *AssetKind `json:"kind,omitempty"`
}

func (GetPositionsRequest) Method() string {
	return "private/get_positions"
}

func (GetPositionsRequest) NewResponse() *[]Position {
	return new([]Position)
}

type Position struct {
	InstrumentName            string    `json:"instrument_name"`
	Kind                      AssetKind `json:"kind"`
	Direction                 Direction `json:"direction"`
	Size                      float64   `json:"size"`
	AveragePrice              float64   `json:"average_price"`
	MarkPrice                 float64   `json:"mark_price"`
	IndexPrice                float64   `json:"index_price"`
	InitialMargin             float64   `json:"initial_margin"`
	MaintenanceMargin         float64   `json:"maintenance_margin"`
	OpenOrdersMargin          float64   `json:"open_orders_margin"`
	FloatingProfitLoss        float64   `json:"floating_profit_loss"`
	RealizedProfitLoss        float64   `json:"realized_profit_loss"`
	TotalProfitLoss           float64   `json:"total_profit_loss"`
	Delta                     float64   `json:"delta"`
	Gamma                     *float64  `json:"gamma,omitempty"`
	Vega                      *float64  `json:"vega,omitempty"`
	Theta                     *float64  `json:"theta,omitempty"`
	Leverage                  *float64  `json:"leverage,omitempty"`
	SizeCurrency              *float64  `json:"size_currency,omitempty"`
	EstimatedLiquidationPrice *float64  `json:"estimated_liquidation_price,omitempty"`
	SettlementPrice           *float64  `json:"settlement_price,omitempty"`
}

var positionRequired = []string{
	"instrument_name", "kind", "direction", "size", "average_price", "mark_price",
	"index_price", "initial_margin", "maintenance_margin", "floating_profit_loss",
	"total_profit_loss", "delta",
}

func (p *Position) UnmarshalJSON(data []byte) error {
	if err := RequireFields(data, positionRequired...); err != nil {
		return err
	}
	type plain Position
	return DecodePlain(data, (*plain)(p))
}
