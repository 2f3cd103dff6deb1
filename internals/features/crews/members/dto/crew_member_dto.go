package dto

import (
	"runcrew_backend/internals/features/crews/members/model"
)

type UpdateCrewMemberRequest struct {
	CrewMemberRole   *string `json:"crew_member_role" validate:"omitempty,oneof=owner staff member"`
	CrewMemberStatus *string `json:"crew_member_status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

type CrewMemberResponse struct {
	CrewMemberID       string `json:"crew_member_id"`
	CrewMemberCrewID   string `json:"crew_member_crew_id"`
	CrewMemberUserID   string `json:"crew_member_user_id"`
	CrewMemberUserName string `json:"crew_member_user_name,omitempty"`
	CrewMemberRole     string `json:"crew_member_role"`
	CrewMemberStatus   string `json:"crew_member_status"`
	CrewMemberJoinedAt string `json:"crew_member_joined_at"`
}

func ToCrewMemberResponse(m *model.CrewMemberModel, userName string) *CrewMemberResponse {
	return &CrewMemberResponse{
		CrewMemberID:       m.CrewMemberID.String(),
		CrewMemberCrewID:   m.CrewMemberCrewID.String(),
		CrewMemberUserID:   m.CrewMemberUserID.String(),
		CrewMemberUserName: userName,
		CrewMemberRole:     m.CrewMemberRole,
		CrewMemberStatus:   m.CrewMemberStatus,
		CrewMemberJoinedAt: m.CrewMemberJoinedAt.Format("2006-01-02 15:04:05"),
	}
}
