package converter

import (
	dto "gamehub_backend/internal/api/dto/admin"
	"gamehub_backend/internal/model"
)

func ToGameConfigResponse(cfg model.GameConfig) dto.GameConfigResponse {
	return dto.GameConfigResponse{
		GameType:           cfg.GameType,
		Name:               cfg.Name,
		MinBet:             cfg.MinBet,
		MaxBet:             cfg.MaxBet,
		HouseEdge:          cfg.HouseEdge,
		BaseWinProbability: cfg.BaseWinProbability,
		Enabled:            cfg.Enabled,
	}
}

func ToGameConfigResponses(configs []model.GameConfig) []dto.GameConfigResponse {
	result := make([]dto.GameConfigResponse, len(configs))
	for i, cfg := range configs {
		result[i] = ToGameConfigResponse(cfg)
	}
	return result
}

func ToGameConfigPatch(req dto.UpdateConfigRequest) model.GameConfigPatch {
	return model.GameConfigPatch{
		Name:               req.Name,
		MinBet:             req.MinBet,
		MaxBet:             req.MaxBet,
		HouseEdge:          req.HouseEdge,
		BaseWinProbability: req.BaseWinProbability,
		Enabled:            req.Enabled,
	}
}
