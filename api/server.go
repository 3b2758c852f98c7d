package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"rankreel/composer"
	"rankreel/schema"
	"rankreel/state"
	"rankreel/timeline"
)

// Server exposes the compose pipeline over HTTP. Composition is
// synchronous here: the caller gets the validated spec and timeline (or
// the full violation list) in the response. The async path lives on the
// Kafka records topic.
type Server struct {
	composer *composer.Composer
	jobs     *state.Store // nil when Redis is not configured
	log      *logrus.Entry
}

// NewServer creates the API server. The job store may be nil.
func NewServer(c *composer.Composer, jobs *state.Store) *Server {
	return &Server{
		composer: c,
		jobs:     jobs,
		log:      logrus.WithField("component", "api"),
	}
}

// Router constructs the gin engine with registered routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", s.handleHealth)
	r.POST("/api/compose", s.handleCompose)
	r.GET("/api/jobs/:id", s.handleJobStatus)

	return r
}

type composeRequest struct {
	JobID  string                 `json:"job_id"`
	Record map[string]interface{} `json:"record" binding:"required"`
}

type composeErrorResponse struct {
	Success bool                `json:"success"`
	JobID   string              `json:"job_id,omitempty"`
	Message string              `json:"message"`
	Errors  []schema.FieldError `json:"errors,omitempty"`
}

type composeSuccessResponse struct {
	Success  bool             `json:"success"`
	JobID    string           `json:"job_id"`
	Result   *composer.Result `json:"result"`
	Duration float64          `json:"duration_seconds"`
}

// handleCompose runs one record through the pipeline.
// POST /api/compose
func (s *Server) handleCompose(c *gin.Context) {
	var req composeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, composeErrorResponse{
			Message: "invalid request payload: " + err.Error(),
		})
		return
	}

	jobID := req.JobID
	if jobID == "" {
		jobID = uuid.NewString()
	}

	raw, err := jsonRecord(req.Record)
	if err != nil {
		c.JSON(http.StatusBadRequest, composeErrorResponse{
			JobID:   jobID,
			Message: "invalid record: " + err.Error(),
		})
		return
	}

	result, err := s.composer.Compose(c.Request.Context(), jobID, raw)
	if err != nil {
		var vf *schema.ValidationFailure
		if errors.As(err, &vf) {
			c.JSON(http.StatusUnprocessableEntity, composeErrorResponse{
				JobID:   jobID,
				Message: "record failed validation",
				Errors:  vf.Errors,
			})
			return
		}
		if errors.Is(err, timeline.ErrFrameBudget) {
			c.JSON(http.StatusUnprocessableEntity, composeErrorResponse{
				JobID:   jobID,
				Message: err.Error(),
			})
			return
		}

		s.log.WithField("job_id", jobID).WithError(err).Error("compose failed")
		c.JSON(http.StatusInternalServerError, composeErrorResponse{
			JobID:   jobID,
			Message: "compose failed: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, composeSuccessResponse{
		Success:  true,
		JobID:    jobID,
		Result:   result,
		Duration: result.Timeline.Seconds(),
	})
}

// jsonRecord re-encodes the loosely-typed record map so the engine's
// permissive decoder sees the original field shapes.
func jsonRecord(record map[string]interface{}) ([]byte, error) {
	return json.Marshal(record)
}

// handleJobStatus looks up the latest status for a job.
// GET /api/jobs/:id
func (s *Server) handleJobStatus(c *gin.Context) {
	if s.jobs == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "job status store is not configured",
		})
		return
	}

	update, err := s.jobs.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, state.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}
	if err != nil {
		s.log.WithError(err).Error("job lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "job lookup failed"})
		return
	}

	c.JSON(http.StatusOK, update)
}

// handleHealth is the liveness probe.
// GET /health
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
