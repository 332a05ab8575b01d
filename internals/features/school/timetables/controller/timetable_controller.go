// file: internals/features/school/timetables/controller/timetable_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/timetables/dto"
	m "schoolku_backend/internals/features/school/timetables/model"
	"schoolku_backend/internals/features/school/timetables/service"
	"schoolku_backend/internals/features/school/timetables/store"
	helper "schoolku_backend/internals/helpers"
)

type TimetableController struct {
	Store     store.Store
	Settings  *service.PeriodSettingsService
	Timetable *service.TimetableService
	DayCopy   *service.DayCopyService
	Validate  *validator.Validate
}

func NewTimetableController(st store.Store, v *validator.Validate) *TimetableController {
	tt := service.NewTimetableService(st)
	return &TimetableController{
		Store:     st,
		Settings:  service.NewPeriodSettingsService(st),
		Timetable: tt,
		DayCopy:   service.NewDayCopyService(st, tt),
		Validate:  v,
	}
}

/* ===================== READ ===================== */

// GET /api/a/:school_id/timetables/days/:day?class_id=...
// Grid harian: semua slot period settings + entry penghuninya.
func (ctrl *TimetableController) GetDay(c *fiber.Ctx) error {
	schoolID, ok := activeSchoolID(c)
	if !ok {
		return nil
	}
	classID, err := uuid.Parse(strings.TrimSpace(c.Query("class_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
	}
	day := c.Params("day")

	settings, err := ctrl.Settings.LoadSettings(c.Context(), schoolID, helper.CurrentAcademicYear())
	if err != nil {
		log.Printf("[TimetableController.GetDay] settings error: %v", err)
		return mapServiceError(c, err)
	}

	pairs, err := ctrl.Timetable.ListSlotsForDay(c.Context(), schoolID, classID, day, settings)
	if err != nil {
		log.Printf("[TimetableController.GetDay] error: %v", err)
		return mapServiceError(c, err)
	}

	views := make([]dto.SlotView, 0, len(pairs))
	for _, p := range pairs {
		v := dto.SlotView{Slot: dto.NewPeriodSettingResponse(p.Slot)}
		if p.Entry != nil {
			er := dto.NewEntryResponse(*p.Entry)
			v.Entry = &er
		}
		views = append(views, v)
	}
	return helper.JsonOK(c, "Jadwal hari berhasil diambil", views)
}

// GET /api/a/:school_id/timetables/classes/:class_id/week
func (ctrl *TimetableController) GetWeek(c *fiber.Ctx) error {
	schoolID, ok := activeSchoolID(c)
	if !ok {
		return nil
	}
	classID, err := uuid.Parse(c.Params("class_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
	}

	grouped, err := ctrl.Timetable.WeekForClass(c.Context(), schoolID, classID)
	if err != nil {
		log.Printf("[TimetableController.GetWeek] error: %v", err)
		return mapServiceError(c, err)
	}

	out := make(map[string][]dto.EntryResponse, len(grouped))
	for day, rows := range grouped {
		out[day] = dto.NewEntryResponses(rows)
	}
	return helper.JsonOK(c, "Jadwal minggu berhasil diambil", out)
}

/* ===================== MUTATE ===================== */

// POST /api/a/:school_id/timetables/entries
// subject_id null → kosongkan slot.
func (ctrl *TimetableController) AssignSubject(c *fiber.Ctx) error {
	schoolID, ok := activeSchoolID(c)
	if !ok {
		return nil
	}

	var req dto.AssignSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	settings, err := ctrl.Settings.LoadSettings(c.Context(), schoolID, helper.CurrentAcademicYear())
	if err != nil {
		log.Printf("[TimetableController.AssignSubject] settings error: %v", err)
		return mapServiceError(c, err)
	}
	slot, ok := service.FindSlotByNumber(settings, req.PeriodNumber)
	if !ok {
		return mapServiceError(c, service.ErrSlotNotFound)
	}

	subjectID := uuid.Nil
	if req.SubjectID != nil {
		subjectID = *req.SubjectID
	}

	entry, err := ctrl.Timetable.AssignSubject(c.Context(), schoolID, req.ClassID, req.DayOfWeek, slot, subjectID)
	if err != nil {
		log.Printf("[TimetableController.AssignSubject] error: %v", err)
		return mapServiceError(c, err)
	}
	if entry == nil {
		return helper.JsonDeleted(c, "Slot berhasil dikosongkan", nil)
	}
	return helper.JsonCreated(c, "Mapel berhasil dijadwalkan", dto.NewEntryResponse(*entry))
}

// DELETE /api/a/:school_id/timetables/entries/:id?class_id=...&day=...
func (ctrl *TimetableController) DeleteEntry(c *fiber.Ctx) error {
	schoolID, ok := activeSchoolID(c)
	if !ok {
		return nil
	}
	entryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id entry tidak valid")
	}
	classID, err := uuid.Parse(strings.TrimSpace(c.Query("class_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
	}
	day := strings.TrimSpace(c.Query("day"))

	if err := ctrl.Timetable.RemoveEntry(c.Context(), schoolID, classID, day, entryID); err != nil {
		log.Printf("[TimetableController.DeleteEntry] error: %v", err)
		return mapServiceError(c, err)
	}
	return helper.JsonDeleted(c, "Entry jadwal berhasil dihapus", fiber.Map{"id": entryID})
}

// DELETE /api/a/:school_id/timetables/days/:day?class_id=...
func (ctrl *TimetableController) ClearDay(c *fiber.Ctx) error {
	schoolID, ok := activeSchoolID(c)
	if !ok {
		return nil
	}
	classID, err := uuid.Parse(strings.TrimSpace(c.Query("class_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
	}
	day := c.Params("day")

	deleted, err := ctrl.Timetable.ClearDay(c.Context(), schoolID, classID, day)
	if err != nil {
		log.Printf("[TimetableController.ClearDay] error: %v", err)
		return mapServiceError(c, err)
	}
	return helper.JsonDeleted(c, "Jadwal hari berhasil dikosongkan", fiber.Map{"deleted": deleted})
}

/* ===================== COPY / PASTE ===================== */

// POST /api/a/:school_id/timetables/copy
func (ctrl *TimetableController) CopyDay(c *fiber.Ctx) error {
	schoolID, ok := activeSchoolID(c)
	if !ok {
		return nil
	}

	var req dto.CopyDayRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	snap, err := ctrl.DayCopy.CopyDay(c.Context(), schoolID, req.ClassID, req.SourceDay)
	if err != nil {
		log.Printf("[TimetableController.CopyDay] error: %v", err)
		return mapServiceError(c, err)
	}
	return helper.JsonOK(c, "Jadwal hari berhasil disalin", snap)
}

// POST /api/a/:school_id/timetables/paste
// Hasil per-slot (created / skipped_no_teacher / failed) selalu dikirim;
// skip karena guru kosong bukan kegagalan request.
func (ctrl *TimetableController) PasteDay(c *fiber.Ctx) error {
	schoolID, ok := activeSchoolID(c)
	if !ok {
		return nil
	}

	var req dto.PasteDayRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	report, err := ctrl.DayCopy.PasteDay(c.Context(), schoolID, req.ClassID, req.TargetDay, req.Snapshot)
	if err != nil {
		log.Printf("[TimetableController.PasteDay] error: %v", err)
		return mapServiceError(c, err)
	}
	return helper.JsonOK(c, "Jadwal berhasil ditempel", report)
}

/* ===================== REFS ===================== */

// GET /api/a/:school_id/timetables/classes
func (ctrl *TimetableController) ListClasses(c *fiber.Ctx) error {
	schoolID, ok := activeSchoolID(c)
	if !ok {
		return nil
	}

	var rows []m.ClassModel
	if err := ctrl.Store.Read(c.Context(), store.TableClasses, store.Filters{
		"class_school_id": schoolID,
	}, "class_name", &rows); err != nil {
		log.Printf("[TimetableController.ListClasses] error: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, err.Error())
	}

	out := make([]dto.ClassResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NewClassResponse(r))
	}
	return helper.JsonOK(c, "Daftar kelas berhasil diambil", out)
}

// GET /api/a/:school_id/timetables/classes/:class_id/subjects
// Mapel satu kelas, masing-masing dengan guru ter-assign (kalau ada).
func (ctrl *TimetableController) ListClassSubjects(c *fiber.Ctx) error {
	schoolID, ok := activeSchoolID(c)
	if !ok {
		return nil
	}
	classID, err := uuid.Parse(c.Params("class_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
	}

	var subjects []m.SubjectModel
	if err := ctrl.Store.Read(c.Context(), store.TableSubjects, store.Filters{
		"subject_school_id": schoolID,
		"subject_class_id":  classID,
	}, "subject_name", &subjects); err != nil {
		log.Printf("[TimetableController.ListClassSubjects] subjects error: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, err.Error())
	}

	var links []m.TeacherSubjectModel
	if err := ctrl.Store.Read(c.Context(), store.TableTeacherSubjects, store.Filters{
		"teacher_subject_school_id": schoolID,
	}, "", &links); err != nil {
		log.Printf("[TimetableController.ListClassSubjects] teacher_subjects error: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, err.Error())
	}
	teacherBySubject := make(map[uuid.UUID]uuid.UUID, len(links))
	for _, l := range links {
		teacherBySubject[l.TeacherSubjectSubjectID] = l.TeacherSubjectTeacherID
	}

	var teachers []m.TeacherModel
	if err := ctrl.Store.Read(c.Context(), store.TableTeachers, store.Filters{
		"teacher_school_id": schoolID,
	}, "", &teachers); err != nil {
		log.Printf("[TimetableController.ListClassSubjects] teachers error: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, err.Error())
	}
	teacherName := make(map[uuid.UUID]string, len(teachers))
	for _, t := range teachers {
		teacherName[t.TeacherID] = t.TeacherName
	}

	out := make([]dto.SubjectWithTeacherResponse, 0, len(subjects))
	for _, s := range subjects {
		row := dto.SubjectWithTeacherResponse{
			ID:           s.SubjectID,
			ClassID:      s.SubjectClassID,
			Name:         s.SubjectName,
			AcademicYear: s.SubjectAcademicYear,
		}
		if tid, ok := teacherBySubject[s.SubjectID]; ok {
			id := tid
			row.TeacherID = &id
			if name, ok := teacherName[tid]; ok {
				n := name
				row.TeacherName = &n
			}
		}
		out = append(out, row)
	}
	return helper.JsonOK(c, "Daftar mapel berhasil diambil", out)
}

// GET /api/a/:school_id/timetables/teachers
func (ctrl *TimetableController) ListTeachers(c *fiber.Ctx) error {
	schoolID, ok := activeSchoolID(c)
	if !ok {
		return nil
	}

	var rows []m.TeacherModel
	if err := ctrl.Store.Read(c.Context(), store.TableTeachers, store.Filters{
		"teacher_school_id": schoolID,
	}, "teacher_name", &rows); err != nil {
		log.Printf("[TimetableController.ListTeachers] error: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, err.Error())
	}

	out := make([]dto.TeacherResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NewTeacherResponse(r))
	}
	return helper.JsonOK(c, "Daftar guru berhasil diambil", out)
}
