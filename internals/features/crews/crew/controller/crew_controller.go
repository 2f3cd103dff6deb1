package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"runcrew_backend/internals/constants"
	"runcrew_backend/internals/features/crews/crew/dto"
	"runcrew_backend/internals/features/crews/crew/model"
	membermodel "runcrew_backend/internals/features/crews/members/model"
	helper "runcrew_backend/internals/helpers"
)

type CrewController struct {
	DB *gorm.DB
}

func NewCrewController(db *gorm.DB) *CrewController {
	return &CrewController{DB: db}
}

var validate = validator.New()

// 🟢 POST /api/u/crews — creator becomes the OWNER member
func (ctrl *CrewController) CreateCrew(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateCrewRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	slug, err := helper.GenerateUniqueSlug(ctrl.DB, helper.SlugOptions{
		Table:            "crews",
		SlugColumn:       "crew_slug",
		SoftDeleteColumn: "crew_deleted_at",
		DefaultBase:      "crew",
	}, req.CrewName)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build slug")
	}

	crew := req.ToModel(userID, slug)

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(crew).Error; err != nil {
			return err
		}
		owner := membermodel.CrewMemberModel{
			CrewMemberCrewID:   crew.CrewID,
			CrewMemberUserID:   userID,
			CrewMemberRole:     constants.RoleOwner,
			CrewMemberStatus:   constants.MemberStatusActive,
			CrewMemberJoinedAt: time.Now(),
		}
		return tx.Create(&owner).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create crew")
	}

	return helper.JsonCreated(c, "Crew created", dto.ToCrewResponse(crew))
}

// 🔵 GET /api/u/crews — crews the requester belongs to
func (ctrl *CrewController) ListMyCrews(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	base := ctrl.DB.Model(&model.CrewModel{}).
		Joins("JOIN crew_members ON crew_members.crew_member_crew_id = crews.crew_id").
		Where("crew_members.crew_member_user_id = ?", userID).
		Where("crew_members.crew_member_deleted_at IS NULL")

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count crews")
	}

	var crews []model.CrewModel
	if err := base.
		Order("crews.crew_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&crews).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load crews")
	}

	return helper.JsonList(c, "", dto.ToCrewResponseList(crews),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🔵 GET /api/u/crews/:crewId
func (ctrl *CrewController) GetCrew(c *fiber.Ctx) error {
	crewID, err := helper.GetCrewIDFromParam(c)
	if err != nil {
		return err
	}

	var crew model.CrewModel
	if err := ctrl.DB.Where("crew_id = ?", crewID).First(&crew).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Crew not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load crew")
	}

	return helper.JsonOK(c, "", dto.ToCrewResponse(&crew))
}

// 🟡 PATCH /api/a/crews/:crewId — staff only (route-guarded)
func (ctrl *CrewController) UpdateCrew(c *fiber.Ctx) error {
	crewID, err := helper.GetCrewIDFromParam(c)
	if err != nil {
		return err
	}

	var req dto.UpdateCrewRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]any{}
	if req.CrewName != nil {
		updates["crew_name"] = *req.CrewName
	}
	if req.CrewDescription != nil {
		updates["crew_description"] = *req.CrewDescription
	}
	if req.CrewRegion != nil {
		updates["crew_region"] = *req.CrewRegion
	}
	if req.CrewPresetLocations != nil {
		updates["crew_preset_locations"] = pq.StringArray(req.CrewPresetLocations)
	}
	if req.CrewSettings != nil {
		updates["crew_settings"] = req.CrewSettings
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nothing to update")
	}
	updates["crew_updated_at"] = time.Now()

	if err := ctrl.DB.Model(&model.CrewModel{}).
		Where("crew_id = ?", crewID).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update crew")
	}

	var crew model.CrewModel
	if err := ctrl.DB.Where("crew_id = ?", crewID).First(&crew).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload crew")
	}
	return helper.JsonUpdated(c, "Crew updated", dto.ToCrewResponse(&crew))
}

// 🔴 DELETE /api/a/crews/:crewId — soft delete
func (ctrl *CrewController) DeleteCrew(c *fiber.Ctx) error {
	crewID, err := helper.GetCrewIDFromParam(c)
	if err != nil {
		return err
	}

	if err := ctrl.DB.Where("crew_id = ?", crewID).Delete(&model.CrewModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete crew")
	}
	return helper.JsonDeleted(c, "Crew deleted", fiber.Map{"crew_id": crewID})
}
