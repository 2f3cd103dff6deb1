package controller

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"runcrew_backend/internals/constants"
	"runcrew_backend/internals/features/crews/invites/dto"
	"runcrew_backend/internals/features/crews/invites/model"
	membermodel "runcrew_backend/internals/features/crews/members/model"
	helper "runcrew_backend/internals/helpers"
)

type CrewInviteCodeController struct {
	DB *gorm.DB
}

func NewCrewInviteCodeController(db *gorm.DB) *CrewInviteCodeController {
	return &CrewInviteCodeController{DB: db}
}

var validate = validator.New()

// no 0/O/1/I to keep codes readable on a phone screen
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randomCode(n int) (string, error) {
	var b strings.Builder
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
		if err != nil {
			return "", err
		}
		b.WriteByte(codeAlphabet[idx.Int64()])
	}
	return b.String(), nil
}

// 🟢 POST /api/a/crews/:crewId/invite-codes
func (ctrl *CrewInviteCodeController) CreateInviteCode(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	crewID, err := helper.GetCrewIDFromParam(c)
	if err != nil {
		return err
	}

	var req dto.CreateInviteCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	code, err := randomCode(8)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate code")
	}

	invite := model.CrewInviteCodeModel{
		CrewInviteCodeCrewID:    crewID,
		CrewInviteCodeCode:      code,
		CrewInviteCodeExpiresAt: req.CrewInviteCodeExpiresAt,
		CrewInviteCodeMaxUses:   req.CrewInviteCodeMaxUses,
		CrewInviteCodeCreatedBy: userID,
	}
	if err := ctrl.DB.Create(&invite).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create invite code")
	}

	return helper.JsonCreated(c, "Invite code created", dto.ToInviteCodeResponse(&invite))
}

// 🔵 GET /api/a/crews/:crewId/invite-codes
func (ctrl *CrewInviteCodeController) ListInviteCodes(c *fiber.Ctx) error {
	crewID, err := helper.GetCrewIDFromParam(c)
	if err != nil {
		return err
	}

	var codes []model.CrewInviteCodeModel
	if err := ctrl.DB.
		Where("crew_invite_code_crew_id = ?", crewID).
		Order("crew_invite_code_created_at DESC").
		Find(&codes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load invite codes")
	}

	return helper.JsonOK(c, "", dto.ToInviteCodeResponseList(codes))
}

// 🔴 DELETE /api/a/crews/:crewId/invite-codes/:codeId
func (ctrl *CrewInviteCodeController) DeleteInviteCode(c *fiber.Ctx) error {
	crewID, err := helper.GetCrewIDFromParam(c)
	if err != nil {
		return err
	}

	res := ctrl.DB.
		Where("crew_invite_code_id = ? AND crew_invite_code_crew_id = ?", c.Params("codeId"), crewID).
		Delete(&model.CrewInviteCodeModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete invite code")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Invite code not found")
	}
	return helper.JsonDeleted(c, "Invite code deleted", nil)
}

// 🟢 POST /api/u/crews/join — redeem a code into an ACTIVE membership
func (ctrl *CrewInviteCodeController) JoinByCode(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.JoinByCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))

	var crewID any
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var invite model.CrewInviteCodeModel
		if err := tx.
			Where("crew_invite_code_code = ?", code).
			First(&invite).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Invalid invite code")
			}
			return err
		}

		if invite.CrewInviteCodeExpiresAt != nil && invite.CrewInviteCodeExpiresAt.Before(time.Now()) {
			return fiber.NewError(fiber.StatusGone, "Invite code expired")
		}
		if invite.CrewInviteCodeMaxUses > 0 && invite.CrewInviteCodeUsedCount >= invite.CrewInviteCodeMaxUses {
			return fiber.NewError(fiber.StatusGone, "Invite code fully used")
		}

		var existing membermodel.CrewMemberModel
		err := tx.
			Where("crew_member_crew_id = ? AND crew_member_user_id = ?", invite.CrewInviteCodeCrewID, userID).
			First(&existing).Error
		if err == nil {
			if existing.CrewMemberStatus == constants.MemberStatusActive {
				return fiber.NewError(fiber.StatusConflict, "Already a member of this crew")
			}
			// re-activate a previously INACTIVE membership
			now := time.Now()
			if err := tx.Model(&existing).Updates(map[string]any{
				"crew_member_status":     constants.MemberStatusActive,
				"crew_member_updated_at": now,
			}).Error; err != nil {
				return err
			}
		} else if errors.Is(err, gorm.ErrRecordNotFound) {
			member := membermodel.CrewMemberModel{
				CrewMemberCrewID:   invite.CrewInviteCodeCrewID,
				CrewMemberUserID:   userID,
				CrewMemberRole:     constants.RoleMember,
				CrewMemberStatus:   constants.MemberStatusActive,
				CrewMemberJoinedAt: time.Now(),
			}
			if err := tx.Create(&member).Error; err != nil {
				return err
			}
		} else {
			return err
		}

		crewID = invite.CrewInviteCodeCrewID
		return tx.Model(&invite).
			UpdateColumn("crew_invite_code_used_count", gorm.Expr("crew_invite_code_used_count + 1")).Error
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to join crew")
	}

	return helper.JsonOK(c, "Joined the crew", fiber.Map{"crew_id": crewID})
}
