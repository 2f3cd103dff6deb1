package dto

import (
	"time"

	"runcrew_backend/internals/features/crews/invites/model"
)

type CreateInviteCodeRequest struct {
	CrewInviteCodeExpiresAt *time.Time `json:"crew_invite_code_expires_at"`
	CrewInviteCodeMaxUses   int        `json:"crew_invite_code_max_uses" validate:"gte=0,lte=10000"`
}

type JoinByCodeRequest struct {
	Code string `json:"code" validate:"required,min=4,max=16"`
}

type InviteCodeResponse struct {
	CrewInviteCodeID        string     `json:"crew_invite_code_id"`
	CrewInviteCodeCrewID    string     `json:"crew_invite_code_crew_id"`
	CrewInviteCodeCode      string     `json:"crew_invite_code_code"`
	CrewInviteCodeExpiresAt *time.Time `json:"crew_invite_code_expires_at,omitempty"`
	CrewInviteCodeMaxUses   int        `json:"crew_invite_code_max_uses"`
	CrewInviteCodeUsedCount int        `json:"crew_invite_code_used_count"`
	CrewInviteCodeCreatedAt string     `json:"crew_invite_code_created_at"`
}

func ToInviteCodeResponse(m *model.CrewInviteCodeModel) *InviteCodeResponse {
	return &InviteCodeResponse{
		CrewInviteCodeID:        m.CrewInviteCodeID.String(),
		CrewInviteCodeCrewID:    m.CrewInviteCodeCrewID.String(),
		CrewInviteCodeCode:      m.CrewInviteCodeCode,
		CrewInviteCodeExpiresAt: m.CrewInviteCodeExpiresAt,
		CrewInviteCodeMaxUses:   m.CrewInviteCodeMaxUses,
		CrewInviteCodeUsedCount: m.CrewInviteCodeUsedCount,
		CrewInviteCodeCreatedAt: m.CrewInviteCodeCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToInviteCodeResponseList(models []model.CrewInviteCodeModel) []InviteCodeResponse {
	out := make([]InviteCodeResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToInviteCodeResponse(&models[i]))
	}
	return out
}
