// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	timetableRoutes "schoolku_backend/internals/features/school/timetables/route"
	"schoolku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== BASE =====================
	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	// ===================== ADMIN (per school) =====================
	// Semua route tenant-scoped lewat :school_id di path; SchoolScope
	// mengisi locals dari token kalau path kosong.
	log.Println("[INFO] Setting up ADMIN group (Scope + DB)...")
	admin := app.Group("/api/a/:school_id",
		middlewares.SchoolScope(),
		middlewares.DBMiddleware(db),
	)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Timetable routes...")
	timetableRoutes.TimetableAdminRoutes(admin, db)
}
