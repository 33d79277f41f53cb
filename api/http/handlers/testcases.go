package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/qagen/api/http/middleware"
	"github.com/artem13815/qagen/api/http/presenter"
	"github.com/artem13815/qagen/pkg/llm"
	"github.com/artem13815/qagen/pkg/logger"
	"github.com/artem13815/qagen/pkg/testcase"
)

const (
	msgNoUserStory       = "No user story provided."
	msgKnowledgeMissing  = "Domain knowledge is not uploaded yet."
	msgGenerationFailure = "Failed to generate test cases. Please try again."
)

type TestCaseHandler struct {
	svc testcase.GenerationService
	log *logger.Logger
}

func NewTestCaseHandler(svc testcase.GenerationService, log *logger.Logger) *TestCaseHandler {
	return &TestCaseHandler{svc: svc, log: log}
}

type generateTestCasesRequest struct {
	UserStory string `json:"userStory"`
}

type generateTestCasesResponse struct {
	TestCases string `json:"testCases"`
}

// Generate builds the QA prompt from the stored knowledge and the posted user
// story and returns the raw model output.
// @Summary Generate test cases
// @Description Sends the user story together with the uploaded domain knowledge to the LLM and returns its text unmodified.
// @Tags    Test cases
// @Accept  json
// @Produce json
// @Param   input body generateTestCasesRequest true "User story or bug report"
// @Success 200 {object} generateTestCasesResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /generate-test-cases [post]
func (h *TestCaseHandler) Generate(c *fiber.Ctx) error {
	var req generateTestCasesRequest
	if err := decodeJSON(c, &req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, msgInvalidBody)
	}

	res, err := h.svc.Generate(c.UserContext(), req.UserStory)
	switch {
	case errors.Is(err, testcase.ErrNoUserStory):
		return presenter.Error(c, http.StatusBadRequest, msgNoUserStory)
	case errors.Is(err, testcase.ErrKnowledgeNotUploaded):
		return presenter.Error(c, http.StatusBadRequest, msgKnowledgeMissing)
	case err != nil:
		h.logFailure(c, err)
		return presenter.Error(c, http.StatusInternalServerError, msgGenerationFailure)
	}

	h.log.Info("test cases generated",
		"request_id", middleware.RequestID(c),
		"prompt_chars", res.PromptChars,
		"output_chars", len(res.TestCases),
		"llm_ms", res.Duration.Milliseconds(),
	)
	h.log.Debug("generated test cases", "request_id", middleware.RequestID(c), "test_cases", res.TestCases)
	return presenter.JSON(c, http.StatusOK, generateTestCasesResponse{TestCases: res.TestCases})
}

// logFailure keeps upstream detail in the logs; clients only get the generic message.
func (h *TestCaseHandler) logFailure(c *fiber.Ctx, err error) {
	kv := []interface{}{"request_id", middleware.RequestID(c), "error", err}
	var ue *llm.UpstreamError
	var te *llm.TransportError
	switch {
	case errors.As(err, &ue):
		kv = append(kv, "kind", "upstream", "upstream_status", ue.StatusCode, "upstream_body", ue.Body)
	case errors.As(err, &te):
		kv = append(kv, "kind", "transport")
	default:
		kv = append(kv, "kind", "internal")
	}
	h.log.Error("test case generation failed", kv...)
}
