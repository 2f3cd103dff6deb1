package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	crewController "runcrew_backend/internals/features/crews/crew/controller"
	inviteController "runcrew_backend/internals/features/crews/invites/controller"
	memberController "runcrew_backend/internals/features/crews/members/controller"
)

// CrewUserRoutes: member-facing crew endpoints (mounted under /api/u).
func CrewUserRoutes(r fiber.Router, db *gorm.DB) {
	crewCtrl := crewController.NewCrewController(db)
	memberCtrl := memberController.NewCrewMemberController(db)
	inviteCtrl := inviteController.NewCrewInviteCodeController(db)

	crews := r.Group("/crews")
	crews.Post("/", crewCtrl.CreateCrew)
	crews.Get("/", crewCtrl.ListMyCrews)
	crews.Post("/join", inviteCtrl.JoinByCode)
	crews.Get("/:crewId", crewCtrl.GetCrew)
	crews.Get("/:crewId/members", memberCtrl.ListMembers)
	crews.Delete("/:crewId/members/me", memberCtrl.LeaveCrew)
}

// CrewAdminRoutes: staff-only management endpoints (mounted under /api/a).
func CrewAdminRoutes(r fiber.Router, db *gorm.DB) {
	crewCtrl := crewController.NewCrewController(db)
	memberCtrl := memberController.NewCrewMemberController(db)
	inviteCtrl := inviteController.NewCrewInviteCodeController(db)

	crews := r.Group("/crews")
	crews.Patch("/:crewId", crewCtrl.UpdateCrew)
	crews.Delete("/:crewId", crewCtrl.DeleteCrew)
	crews.Patch("/:crewId/members/:memberId", memberCtrl.UpdateMember)
	crews.Post("/:crewId/invite-codes", inviteCtrl.CreateInviteCode)
	crews.Get("/:crewId/invite-codes", inviteCtrl.ListInviteCodes)
	crews.Delete("/:crewId/invite-codes/:codeId", inviteCtrl.DeleteInviteCode)
}
