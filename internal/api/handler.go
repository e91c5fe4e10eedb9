package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"godist/adapters/sample"
	"godist/domain/distribution"
	"godist/internal"
	"godist/internal/errors"
)

// DistributionHandler serves the catalog and distribution operations
type DistributionHandler struct {
	logger  *internal.Logger
	metrics *Metrics
}

func NewDistributionHandler(logger *internal.Logger, metrics *Metrics) *DistributionHandler {
	return &DistributionHandler{
		logger:  logger,
		metrics: metrics,
	}
}

type pdfRequest struct {
	Params map[string]float64 `json:"params"`
	X      []float64          `json:"x" binding:"required,min=1"`
}

type composeRequest struct {
	Left  map[string]float64 `json:"left"`
	Right map[string]float64 `json:"right"`
}

type refreshRequest struct {
	Params map[string]float64 `json:"params"`
	Sample []float64          `json:"sample"`
}

type zscoreRequest struct {
	Params map[string]float64 `json:"params"`
	X      *float64           `json:"x" binding:"required"`
}

type summaryRequest struct {
	Values []float64 `json:"values"`
}

// ListDistributions returns every catalog entry
func (h *DistributionHandler) ListDistributions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"distributions": CatalogView(),
		"count":         len(distribution.Kinds()),
	})
}

// DescribeDistribution builds a distribution from query-string overrides,
// e.g. /api/distributions/gaussian?mu=1&sigma=2
func (h *DistributionHandler) DescribeDistribution(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}

	params := make(map[string]float64)
	for name, values := range c.Request.URL.Query() {
		raw := values[len(values)-1]
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			h.fail(c, errors.InvalidInput("parameter "+name+": "+strconv.Quote(raw)+" is not a number"))
			return
		}
		params[name] = v
	}

	d, err := distribution.New(kind, params)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, NewSnapshot(d))
}

// EvaluatePDF evaluates the density at each requested point
func (h *DistributionHandler) EvaluatePDF(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}
	var req pdfRequest
	if !h.bind(c, &req) {
		return
	}

	d, err := distribution.New(kind, req.Params)
	if err != nil {
		h.fail(c, err)
		return
	}
	points, err := Evaluate(d, req.X)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.metrics.countEvaluations(kind, len(points))
	c.JSON(http.StatusOK, points)
}

// Compose returns the distribution of the sum of the two operands
func (h *DistributionHandler) Compose(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}
	var req composeRequest
	if !h.bind(c, &req) {
		return
	}

	left, err := distribution.New(kind, req.Left)
	if err != nil {
		h.fail(c, errors.Wrap(err, "left operand"))
		return
	}
	right, err := distribution.New(kind, req.Right)
	if err != nil {
		h.fail(c, errors.Wrap(err, "right operand"))
		return
	}
	sum, err := distribution.Compose(left, right)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, NewSnapshot(sum))
}

// Refresh re-derives parameters from the posted sample
func (h *DistributionHandler) Refresh(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}
	var req refreshRequest
	if !h.bind(c, &req) {
		return
	}

	d, err := distribution.New(kind, req.Params)
	if err != nil {
		h.fail(c, err)
		return
	}
	r, ok := d.(distribution.Refresher)
	if !ok {
		h.fail(c, errors.IncompatibleOperands("%s cannot be refreshed from a sample", kind))
		return
	}
	if err := r.Refresh(req.Sample); err != nil {
		h.fail(c, err)
		return
	}
	h.logger.Info("[API] refreshed %s from %d observations", kind, len(req.Sample))
	c.JSON(http.StatusOK, NewSnapshot(r))
}

func (h *DistributionHandler) ZScore(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}
	var req zscoreRequest
	if !h.bind(c, &req) {
		return
	}

	d, err := distribution.New(kind, req.Params)
	if err != nil {
		h.fail(c, err)
		return
	}
	z, err := distribution.ZScore(d, *req.X)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ZScoreView{X: *req.X, ZScore: z})
}

// SummarizeSample returns descriptive statistics for the posted values
func (h *DistributionHandler) SummarizeSample(c *gin.Context) {
	var req summaryRequest
	if !h.bind(c, &req) {
		return
	}
	summary, err := sample.Summarize(req.Values)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// kind resolves the :kind path segment; an unknown kind is a 404
func (h *DistributionHandler) kind(c *gin.Context) (distribution.Kind, bool) {
	kind, err := distribution.ParseKind(c.Param("kind"))
	if err != nil {
		h.fail(c, errors.WithCode(errors.CodeNotFound, err))
		return "", false
	}
	return kind, true
}

func (h *DistributionHandler) bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.fail(c, errors.WithCode(errors.CodeInvalidInput, err))
		return false
	}
	return true
}

func (h *DistributionHandler) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("[API] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(status, gin.H{
		"error": err.Error(),
		"code":  errors.GetCode(err),
	})
}

// statusFor maps an error code onto an HTTP status
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.CodeInvalidParameter, errors.CodeInvalidInput:
		return http.StatusBadRequest
	case errors.CodeNotFound:
		return http.StatusNotFound
	case errors.CodeDomainError, errors.CodeIncompatibleOperands, errors.CodeEmptySample:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
