package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"runcrew_backend/internals/constants"
	"runcrew_backend/internals/features/crews/members/dto"
	"runcrew_backend/internals/features/crews/members/model"
	helper "runcrew_backend/internals/helpers"
)

type CrewMemberController struct {
	DB *gorm.DB
}

func NewCrewMemberController(db *gorm.DB) *CrewMemberController {
	return &CrewMemberController{DB: db}
}

var validate = validator.New()

type memberRow struct {
	model.CrewMemberModel
	UserName string `gorm:"column:user_name"`
}

// 🔵 GET /api/u/crews/:crewId/members?status=ACTIVE
func (ctrl *CrewMemberController) ListMembers(c *fiber.Ctx) error {
	crewID, err := helper.GetCrewIDFromParam(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 30, 100)

	base := ctrl.DB.Table("crew_members").
		Select("crew_members.*, users.user_name").
		Joins("LEFT JOIN users ON users.user_id = crew_members.crew_member_user_id AND users.user_deleted_at IS NULL").
		Where("crew_members.crew_member_crew_id = ?", crewID).
		Where("crew_members.crew_member_deleted_at IS NULL")

	if status := c.Query("status"); status != "" {
		base = base.Where("crew_members.crew_member_status = ?", status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count members")
	}

	var rows []memberRow
	if err := base.
		Order("crew_members.crew_member_joined_at ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load members")
	}

	out := make([]dto.CrewMemberResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *dto.ToCrewMemberResponse(&rows[i].CrewMemberModel, rows[i].UserName))
	}

	return helper.JsonList(c, "", out,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟡 PATCH /api/a/crews/:crewId/members/:memberId — role/status change
func (ctrl *CrewMemberController) UpdateMember(c *fiber.Ctx) error {
	crewID, err := helper.GetCrewIDFromParam(c)
	if err != nil {
		return err
	}
	memberID, err := uuid.Parse(c.Params("memberId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid member ID")
	}

	var req dto.UpdateCrewMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]any{}
	if req.CrewMemberRole != nil {
		updates["crew_member_role"] = *req.CrewMemberRole
	}
	if req.CrewMemberStatus != nil {
		updates["crew_member_status"] = *req.CrewMemberStatus
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nothing to update")
	}
	updates["crew_member_updated_at"] = time.Now()

	res := ctrl.DB.Model(&model.CrewMemberModel{}).
		Where("crew_member_id = ? AND crew_member_crew_id = ?", memberID, crewID).
		Updates(updates)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update member")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Member not found")
	}

	return helper.JsonUpdated(c, "Member updated", fiber.Map{"crew_member_id": memberID})
}

// 🔴 DELETE /api/u/crews/:crewId/members/me — leave the crew
func (ctrl *CrewMemberController) LeaveCrew(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	crewID, err := helper.GetCrewIDFromParam(c)
	if err != nil {
		return err
	}

	var member model.CrewMemberModel
	err = ctrl.DB.
		Where("crew_member_crew_id = ? AND crew_member_user_id = ?", crewID, userID).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "You are not a member of this crew")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load membership")
	}
	if member.CrewMemberRole == constants.RoleOwner {
		return helper.JsonError(c, fiber.StatusConflict, "Owner cannot leave. Transfer ownership first.")
	}

	if err := ctrl.DB.Delete(&member).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to leave crew")
	}
	return helper.JsonDeleted(c, "Left the crew", fiber.Map{"crew_id": crewID})
}
