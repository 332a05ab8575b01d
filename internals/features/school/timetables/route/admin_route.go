// file: internals/features/school/timetables/route/admin_route.go
package routes

import (
	timetablectl "schoolku_backend/internals/features/school/timetables/controller"
	"schoolku_backend/internals/features/school/timetables/store"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TimetableAdminRoutes mendaftarkan route admin jadwal pelajaran.
// Mount di group /api/a/:school_id (sudah lewat SchoolScope).
func TimetableAdminRoutes(admin fiber.Router, db *gorm.DB) {
	st := store.NewGormStore(db)
	v := validator.New()

	periods := timetablectl.NewPeriodSettingController(st, v)
	tt := timetablectl.NewTimetableController(st, v)

	grp := admin.Group("/timetables")

	// period settings
	grp.Get("/period-settings", periods.GetPeriodSettings)
	grp.Put("/period-settings", periods.SavePeriodSettings)

	// jadwal harian / mingguan
	grp.Get("/days/:day", tt.GetDay)
	grp.Delete("/days/:day", tt.ClearDay)
	grp.Get("/classes/:class_id/week", tt.GetWeek)

	// entries
	grp.Post("/entries", tt.AssignSubject)
	grp.Delete("/entries/:id", tt.DeleteEntry)

	// copy / paste hari
	grp.Post("/copy", tt.CopyDay)
	grp.Post("/paste", tt.PasteDay)

	// refs (read-only)
	grp.Get("/classes", tt.ListClasses)
	grp.Get("/classes/:class_id/subjects", tt.ListClassSubjects)
	grp.Get("/teachers", tt.ListTeachers)
}
