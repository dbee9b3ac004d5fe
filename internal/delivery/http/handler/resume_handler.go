package handler

import (
	"errors"
	"io"
	"strconv"

	"resume-forge/internal/delivery/http/dto"
	"resume-forge/internal/delivery/http/middleware"
	"resume-forge/internal/pkg/response"
	"resume-forge/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ResumeHandler struct {
	generate usecase.GenerateUsecase
	upload   usecase.UploadUsecase
	optimize usecase.OptimizeUsecase
	apply    usecase.ApplyUsecase
	history  usecase.HistoryUsecase

	maxFileBytes int64
}

func NewResumeHandler(
	generate usecase.GenerateUsecase,
	upload usecase.UploadUsecase,
	optimize usecase.OptimizeUsecase,
	apply usecase.ApplyUsecase,
	history usecase.HistoryUsecase,
	maxFileBytes int64,
) *ResumeHandler {
	return &ResumeHandler{
		generate:     generate,
		upload:       upload,
		optimize:     optimize,
		apply:        apply,
		history:      history,
		maxFileBytes: maxFileBytes,
	}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router, auth *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	optional := auth.OptionalMiddleware()
	r.Post("/generate", h.Generate, optional)
	r.Post("/upload", h.Upload)
	r.Post("/optimize", h.Optimize)
	r.Post("/apply-optimizations", h.ApplyOptimizations, optional)

	required := auth.Middleware()
	r.Get("/", h.ListHistory, required)
	r.Get("/:id", h.GetSnapshot, required)
}

func (h *ResumeHandler) Generate(c fiber.Ctx) error {
	var req dto.GenerateResumeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	in := usecase.GenerateInput{
		Resume:   req.Resume,
		Format:   req.Format,
		Template: req.Template,
	}
	if id, ok := middleware.UserIDFromCtx(c); ok {
		in.UserID = &id
	}

	res, err := h.generate.Generate(c.Context(), in)
	if err != nil {
		if errors.Is(err, usecase.ErrUnsupportedRenderFormat) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Unsupported output format", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	c.Set(fiber.HeaderContentType, res.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+res.Filename+`"`)
	return c.Status(fiber.StatusOK).Send(res.Data)
}

func (h *ResumeHandler) Upload(c fiber.Ctx) error {
	fh, err := c.FormFile("resume")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Resume file is required", nil, err)
	}
	if h.maxFileBytes > 0 && fh.Size > h.maxFileBytes {
		return middleware.NewAppError(
			fiber.StatusRequestEntityTooLarge,
			"File exceeds the "+strconv.FormatInt(h.maxFileBytes>>20, 10)+" MB limit",
			nil, nil,
		)
	}

	f, err := fh.Open()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "File could not be read", nil, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "File could not be read", nil, err)
	}

	res, err := h.upload.ExtractResume(c.Context(), usecase.UploadInput{
		Data:        data,
		ContentType: fh.Header.Get("Content-Type"),
		Filename:    fh.Filename,
	})
	if err != nil {
		return mapUploadError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *ResumeHandler) Optimize(c fiber.Ctx) error {
	var req dto.OptimizeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.optimize.Optimize(c.Context(), usecase.OptimizeInput{
		ResumeText:     req.ResumeText,
		JobDescription: req.JobDescription,
		JobURL:         req.JobURL,
	})
	if err != nil {
		return mapPipelineError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *ResumeHandler) ApplyOptimizations(c fiber.Ctx) error {
	var req dto.ApplyOptimizationsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if req.SelectedSkills == nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "selectedSkills must be an object of category to skills", nil, nil)
	}

	in := usecase.ApplyInput{
		ResumeText:     req.ResumeText,
		JobDescription: req.JobDescription,
		Selected:       *req.SelectedSkills,
	}
	if id, ok := middleware.UserIDFromCtx(c); ok {
		in.UserID = &id
	}

	res, err := h.apply.Apply(c.Context(), in)
	if err != nil {
		return mapPipelineError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *ResumeHandler) ListHistory(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	limit := fiber.Query[int](c, "limit")
	snaps, err := h.history.List(c.Context(), userID, limit)
	if err != nil {
		return mapHistoryError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SnapshotsFromEntities(snaps))
}

func (h *ResumeHandler) GetSnapshot(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	snapshotID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid snapshot id", nil, err)
	}

	snap, err := h.history.Get(c.Context(), userID, snapshotID)
	if err != nil {
		return mapHistoryError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SnapshotFromEntity(snap))
}

func mapPipelineError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrEmptyResumeText):
		return middleware.NewAppError(fiber.StatusBadRequest, "Resume text is required", nil, err)
	case errors.Is(err, usecase.ErrEmptyJobDescription):
		return middleware.NewAppError(fiber.StatusBadRequest, "Job description or job url is required", nil, err)
	case errors.Is(err, usecase.ErrJobFetchFailed):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Could not read the job posting", nil, err)
	case errors.Is(err, usecase.ErrInvalidSkillSelection):
		return middleware.NewAppError(fiber.StatusBadRequest, "selectedSkills must be an object of category to skills", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func mapUploadError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnsupportedFileFormat):
		return middleware.NewAppError(fiber.StatusUnsupportedMediaType, "Unsupported file format, upload PDF, DOCX or TXT", nil, err)
	case errors.Is(err, usecase.ErrScannedDocument):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Not enough readable text, the file may be a scanned document", nil, err)
	case errors.Is(err, usecase.ErrUnreadableFile):
		return middleware.NewAppError(fiber.StatusBadRequest, "File could not be read", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func mapHistoryError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrSnapshotNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Resume snapshot not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
