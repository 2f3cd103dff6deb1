package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"runcrew_backend/internals/features/crews/crew/model"
)

type CreateCrewRequest struct {
	CrewName            string         `json:"crew_name" validate:"required,min=2,max=100"`
	CrewDescription     *string        `json:"crew_description" validate:"omitempty,max=2000"`
	CrewRegion          *string        `json:"crew_region" validate:"omitempty,max=100"`
	CrewPresetLocations []string       `json:"crew_preset_locations" validate:"omitempty,dive,max=100"`
	CrewSettings        datatypes.JSON `json:"crew_settings"`
}

type UpdateCrewRequest struct {
	CrewName            *string        `json:"crew_name" validate:"omitempty,min=2,max=100"`
	CrewDescription     *string        `json:"crew_description" validate:"omitempty,max=2000"`
	CrewRegion          *string        `json:"crew_region" validate:"omitempty,max=100"`
	CrewPresetLocations []string       `json:"crew_preset_locations" validate:"omitempty,dive,max=100"`
	CrewSettings        datatypes.JSON `json:"crew_settings"`
}

type CrewResponse struct {
	CrewID              string         `json:"crew_id"`
	CrewName            string         `json:"crew_name"`
	CrewSlug            string         `json:"crew_slug"`
	CrewDescription     *string        `json:"crew_description,omitempty"`
	CrewRegion          *string        `json:"crew_region,omitempty"`
	CrewPresetLocations []string       `json:"crew_preset_locations,omitempty"`
	CrewSettings        datatypes.JSON `json:"crew_settings,omitempty"`
	CrewCreatedAt       string         `json:"crew_created_at"`
}

func (r *CreateCrewRequest) ToModel(createdBy uuid.UUID, slug string) *model.CrewModel {
	return &model.CrewModel{
		CrewName:            r.CrewName,
		CrewSlug:            slug,
		CrewDescription:     r.CrewDescription,
		CrewRegion:          r.CrewRegion,
		CrewPresetLocations: r.CrewPresetLocations,
		CrewSettings:        r.CrewSettings,
		CrewCreatedBy:       createdBy,
	}
}

func ToCrewResponse(m *model.CrewModel) *CrewResponse {
	return &CrewResponse{
		CrewID:              m.CrewID.String(),
		CrewName:            m.CrewName,
		CrewSlug:            m.CrewSlug,
		CrewDescription:     m.CrewDescription,
		CrewRegion:          m.CrewRegion,
		CrewPresetLocations: m.CrewPresetLocations,
		CrewSettings:        m.CrewSettings,
		CrewCreatedAt:       m.CrewCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToCrewResponseList(models []model.CrewModel) []CrewResponse {
	out := make([]CrewResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToCrewResponse(&models[i]))
	}
	return out
}
