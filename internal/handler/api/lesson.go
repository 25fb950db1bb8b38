package api

import (
	"net/http"

	reqdto "lesson-booking/internal/handler/dto/request"
	resdto "lesson-booking/internal/handler/dto/response"
	"lesson-booking/internal/handler/httperr"
	"lesson-booking/internal/usecase/commands"
	"lesson-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LessonHandler struct {
	cmds commands.BookingCommands
	q    queries.LessonQueries
}

func NewLessonHandler(cmds commands.BookingCommands, q queries.LessonQueries) *LessonHandler {
	return &LessonHandler{cmds: cmds, q: q}
}

// @Summary List lessons
// @Description List every lesson with its remaining space
// @Tags lessons
// @Produce json
// @Success 200 {array} resdto.LessonResponse
// @Failure 500 {object} httperr.Response
// @Router /api/lessons [get]
func (h *LessonHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLessonList(views))
}

// @Summary Get lesson
// @Tags lessons
// @Produce json
// @Param id path string true "Lesson ID"
// @Success 200 {object} resdto.LessonResponse
// @Failure 404 {object} httperr.Response
// @Router /api/lessons/{id} [get]
func (h *LessonHandler) Get(c *gin.Context) {
	view, err := h.q.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLessonView(view))
}

// @Summary Create lesson
// @Description Add a lesson to the catalog
// @Tags lessons
// @Accept json
// @Produce json
// @Param request body reqdto.CreateLessonRequest true "Create lesson request"
// @Success 201 {object} resdto.LessonResponse
// @Failure 400 {object} httperr.Response
// @Router /api/lessons [post]
func (h *LessonHandler) Create(c *gin.Context) {
	var req reqdto.CreateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.CreateLesson(c.Request.Context(), req.ToParams())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromLessonView(view))
}

// @Summary Set lesson space
// @Description Overwrite a lesson's remaining space
// @Tags lessons
// @Accept json
// @Produce json
// @Param id path string true "Lesson ID"
// @Param request body reqdto.SetSpaceRequest true "New space"
// @Success 200 {object} resdto.LessonResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/lessons/{id}/space [put]
func (h *LessonHandler) SetSpace(c *gin.Context) {
	var req reqdto.SetSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.SetLessonSpace(c.Request.Context(), c.Param("id"), *req.Space)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLessonView(view))
}

// @Summary Search lessons
// @Description Match topic or location case-insensitively, or price/space when the query is numeric
// @Tags lessons
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {array} resdto.LessonResponse
// @Router /api/search [get]
func (h *LessonHandler) Search(c *gin.Context) {
	views, err := h.q.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLessonList(views))
}
