package admin

type GameConfigResponse struct {
	GameType           string  `json:"game_type"`
	Name               string  `json:"name"`
	MinBet             int     `json:"min_bet"`
	MaxBet             int     `json:"max_bet"`
	HouseEdge          float64 `json:"house_edge"`
	BaseWinProbability float64 `json:"base_win_probability"`
	Enabled            bool    `json:"enabled"`
}

// UpdateConfigRequest - частичное обновление. Отсутствующие поля не меняются
type UpdateConfigRequest struct {
	Name               *string  `json:"name,omitempty"`
	MinBet             *int     `json:"min_bet,omitempty"`
	MaxBet             *int     `json:"max_bet,omitempty"`
	HouseEdge          *float64 `json:"house_edge,omitempty"`
	BaseWinProbability *float64 `json:"base_win_probability,omitempty"`
	Enabled            *bool    `json:"enabled,omitempty"`
}
