package controller

import (
	"net/http"

	"github.com/sahradeniz/Astrologi-Ai-sub000/model"
	"github.com/sahradeniz/Astrologi-Ai-sub000/service"

	"github.com/gin-gonic/gin"
)

type ChartController struct {
	chartService service.ChartService
}

func NewChartController(cs service.ChartService) *ChartController {
	return &ChartController{chartService: cs}
}

// RegisterRoutes sets up the chart intake and retrieval endpoints.
func (ctrl *ChartController) RegisterRoutes(router *gin.RouterGroup) {
	chartGroup := router.Group("/chart")
	{
		chartGroup.POST("", ctrl.SubmitBirthChart)
		chartGroup.GET("", ctrl.GetSavedChart)
	}
	router.POST("/natal", ctrl.SubmitNatalChart)
}

// SubmitBirthChart runs the GG.AA.YYYY intake workflow.
// @Summary      Calculate Birth Chart
// @Description  Validates birth form fields, fetches the chart from the astrology service and persists it for the other views.
// @Tags         Charts
// @Accept       json
// @Produce      json
// @Param        input  body      model.BirthInputRaw  true  "Birth form fields"
// @Success      200    {object}  model.Response{data=model.ChartResult}
// @Failure      400    {object}  model.Response
// @Failure      409    {object}  model.Response
// @Failure      503    {object}  model.Response
// @Router       /chart [post]
func (ctrl *ChartController) SubmitBirthChart(c *gin.Context) {
	var raw model.BirthInputRaw
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, model.Response{
			Success: false,
			Error:   "Invalid request payload",
		})
		return
	}

	chart, err := ctrl.chartService.SubmitBirthChart(c.Request.Context(), raw)
	if err != nil {
		handleError(c, "Failed to calculate birth chart", err)
		return
	}

	handleSuccess(c, "Doğum haritanız hazırlandı", chart)
}

// GetSavedChart returns the last persisted chart without a remote call.
// @Summary      Get Saved Birth Chart
// @Description  Reads the most recently calculated chart from the store.
// @Tags         Charts
// @Produce      json
// @Success      200  {object}  model.Response{data=model.ChartResult}
// @Failure      404  {object}  model.Response
// @Router       /chart [get]
func (ctrl *ChartController) GetSavedChart(c *gin.Context) {
	chart, err := ctrl.chartService.SavedChart(c.Request.Context())
	if err != nil {
		handleError(c, "No saved chart", err)
		return
	}

	handleSuccess(c, "Fetch Success", chart)
}

// SubmitNatalChart runs the ISO intake workflow against the older endpoint.
// @Summary      Calculate Natal Chart (ISO entry point)
// @Description  Accepts YYYY-MM-DD dates and posts the combined timestamp payload.
// @Tags         Charts
// @Accept       json
// @Produce      json
// @Param        input  body      model.BirthInputRaw  true  "Birth form fields (ISO date)"
// @Success      200    {object}  model.Response{data=model.NatalChartResult}
// @Failure      400    {object}  model.Response
// @Router       /natal [post]
func (ctrl *ChartController) SubmitNatalChart(c *gin.Context) {
	var raw model.BirthInputRaw
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, model.Response{
			Success: false,
			Error:   "Invalid request payload",
		})
		return
	}

	chart, err := ctrl.chartService.SubmitNatalChart(c.Request.Context(), raw)
	if err != nil {
		handleError(c, "Failed to calculate natal chart", err)
		return
	}

	handleSuccess(c, "Fetch Success", chart)
}
