package demo

import (
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"runcrew_backend/internals/constants"
	recordmodel "runcrew_backend/internals/features/attendance/records/model"
	crewmodel "runcrew_backend/internals/features/crews/crew/model"
	membermodel "runcrew_backend/internals/features/crews/members/model"
	usermodel "runcrew_backend/internals/features/users/user/model"
	"runcrew_backend/internals/helpers/kst"
)

// SeedDemoCrew creates one crew with three members and a month of
// attendance records. Idempotent per slug.
func SeedDemoCrew(db *gorm.DB) {
	var existing crewmodel.CrewModel
	if err := db.Where("crew_slug = ?", "han-river-runners").First(&existing).Error; err == nil {
		log.Println("ℹ️ demo crew already seeded, skipping")
		return
	}

	hashed, _ := bcrypt.GenerateFromPassword([]byte("runcrew-demo"), bcrypt.DefaultCost)

	users := []usermodel.UserModel{
		{UserName: "김민준", UserEmail: "minjun@example.com", UserPassword: string(hashed), UserIsActive: true},
		{UserName: "이서연", UserEmail: "seoyeon@example.com", UserPassword: string(hashed), UserIsActive: true},
		{UserName: "박지호", UserEmail: "jiho@example.com", UserPassword: string(hashed), UserIsActive: true},
	}
	for i := range users {
		if err := db.Create(&users[i]).Error; err != nil {
			log.Printf("❌ seed user failed: %v", err)
			return
		}
	}

	region := "서울 한강"
	crew := crewmodel.CrewModel{
		CrewName:            "한강 러너스",
		CrewSlug:            "han-river-runners",
		CrewRegion:          &region,
		CrewPresetLocations: []string{"잠수교", "반포지구", "뚝섬"},
		CrewCreatedBy:       users[0].UserID,
	}
	if err := db.Create(&crew).Error; err != nil {
		log.Printf("❌ seed crew failed: %v", err)
		return
	}

	roles := []string{constants.RoleOwner, constants.RoleMember, constants.RoleMember}
	for i := range users {
		member := membermodel.CrewMemberModel{
			CrewMemberCrewID:   crew.CrewID,
			CrewMemberUserID:   users[i].UserID,
			CrewMemberRole:     roles[i],
			CrewMemberStatus:   constants.MemberStatusActive,
			CrewMemberJoinedAt: time.Now(),
		}
		if err := db.Create(&member).Error; err != nil {
			log.Printf("❌ seed member failed: %v", err)
			return
		}
	}

	// a few weekly meetings: Tuesday 19:30 at 잠수교, Saturday 08:00 at 반포지구
	now := kst.FromUTC(time.Now().UTC())
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, kst.Location)
	seedAt := func(userID uuid.UUID, day int, hour, minute int, location string, host bool) {
		at := firstOfMonth.AddDate(0, 0, day-1).Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
		rec := recordmodel.AttendanceRecordModel{
			AttendanceRecordCrewID:     crew.CrewID,
			AttendanceRecordUserID:     userID,
			AttendanceRecordLocation:   &location,
			AttendanceRecordAttendedAt: at.UTC(),
			AttendanceRecordIsHost:     host,
		}
		if err := db.Create(&rec).Error; err != nil {
			log.Printf("❌ seed record failed: %v", err)
		}
	}

	for _, day := range []int{2, 9, 16} {
		seedAt(users[0].UserID, day, 19, 30, "잠수교", true)
		seedAt(users[1].UserID, day, 19, 30, "잠수교", false)
	}
	for _, day := range []int{6, 13} {
		seedAt(users[0].UserID, day, 8, 0, "반포지구", false)
		seedAt(users[2].UserID, day, 8, 0, "반포지구", false)
	}

	log.Println("✅ demo crew seeded")
}
