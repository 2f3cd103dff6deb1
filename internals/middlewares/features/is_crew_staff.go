package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"runcrew_backend/internals/constants"
)

// IsCrewStaff guards the /api/a group: the requester must hold an ACTIVE
// owner/staff membership in the :crewId crew.
func IsCrewStaff(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rawUser, _ := c.Locals("user_id").(string)
		userID, err := uuid.Parse(strings.TrimSpace(rawUser))
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}
		crewID, err := uuid.Parse(strings.TrimSpace(c.Params("crewId")))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid crew ID")
		}

		var role string
		err = db.Table("crew_members").
			Select("crew_member_role").
			Where("crew_member_crew_id = ? AND crew_member_user_id = ?", crewID, userID).
			Where("crew_member_status = ?", constants.MemberStatusActive).
			Where("crew_member_deleted_at IS NULL").
			Take(&role).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusForbidden, "Crew staff only")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check role")
		}

		for _, r := range constants.StaffRoles {
			if role == r {
				c.Locals("crew_role", role)
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "Crew staff only")
	}
}
