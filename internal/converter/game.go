package converter

import (
	dto "gamehub_backend/internal/api/dto/game"
	"gamehub_backend/internal/model"
)

func ToBetRequest(req dto.PlayRequest, userID int, gameType string) model.BetRequest {
	return model.BetRequest{
		UserID:     userID,
		GameType:   gameType,
		BetAmount:  req.Bet,
		BasePayout: req.BasePayout,
		GameData:   req.GameData,
	}
}

func ToRoundResponse(res model.RoundResult) dto.RoundResponse {
	return dto.RoundResponse{
		RoundID:             res.RoundID,
		Won:                 res.Won,
		Multiplier:          res.Multiplier,
		WinAmount:           res.WinAmount,
		BetAmount:           res.BetAmount,
		NewBalance:          res.NewBalance,
		AdjustedProbability: res.AdjustedProbability,
		HouseEdge:           res.HouseEdge,
		EngagementBonus:     res.EngagementBonus,
		Adjustments:         res.Adjustments,
		Rejected:            res.Rejected,
		RejectReason:        string(res.RejectReason),
	}
}

func ToCricketBet(req dto.CricketBetRequest, userID int) model.CricketBet {
	return model.CricketBet{
		UserID:    userID,
		MatchID:   req.MatchID,
		Market:    req.Market,
		Selection: req.Selection,
		Odds:      req.Odds,
		BetAmount: req.Bet,
	}
}

func ToGameInfos(configs []model.GameConfig) []dto.GameInfo {
	result := make([]dto.GameInfo, len(configs))
	for i, cfg := range configs {
		result[i] = dto.GameInfo{
			GameType: cfg.GameType,
			Name:     cfg.Name,
			MinBet:   cfg.MinBet,
			MaxBet:   cfg.MaxBet,
			Enabled:  cfg.Enabled,
		}
	}
	return result
}
