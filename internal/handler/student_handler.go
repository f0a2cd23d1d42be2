package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-fees/internal/dto"
	"github.com/noah-isme/school-fees/internal/service"
)

// StudentHandler serves the student register pages.
type StudentHandler struct {
	service service.StudentService
	flash   *Flash
	logger  zerolog.Logger
}

// NewStudentHandler constructs the handler.
func NewStudentHandler(service service.StudentService, flash *Flash, logger zerolog.Logger) *StudentHandler {
	return &StudentHandler{
		service: service,
		flash:   flash,
		logger:  logger.With().Str("component", "student_handler").Logger(),
	}
}

// Register attaches student routes to the router.
func (h *StudentHandler) Register(router fiber.Router) {
	router.Get(studentsPath, h.list)
	router.Post("/student/add", h.create)
	router.Post("/student/edit/:id", h.update)
	router.Post("/student/delete/:id", h.delete)
}

func (h *StudentHandler) list(c *fiber.Ctx) error {
	students, err := h.service.List(c.UserContext())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list students")
		return err
	}

	return h.flash.render(c, "students", fiber.Map{
		"Title":    "Students",
		"Students": students,
	})
}

func (h *StudentHandler) create(c *fiber.Ctx) error {
	var req dto.StudentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}

	_, err := h.service.Create(c.UserContext(), req)
	return h.flash.Redirect(c, h.logger, studentsPath, err, "Student added successfully.")
}

func (h *StudentHandler) update(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req dto.StudentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}

	err = h.service.Update(c.UserContext(), id, req)
	return h.flash.Redirect(c, h.logger, studentsPath, err, "Student updated successfully.")
}

func (h *StudentHandler) delete(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	err = h.service.Delete(c.UserContext(), id)
	return h.flash.Redirect(c, h.logger, studentsPath, err, "Student deleted successfully.")
}
