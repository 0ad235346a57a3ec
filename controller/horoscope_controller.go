package controller

import (
	"net/http"

	"github.com/sahradeniz/Astrologi-Ai-sub000/model"
	"github.com/sahradeniz/Astrologi-Ai-sub000/service"

	"github.com/gin-gonic/gin"
)

type HoroscopeController struct {
	horoscopeService service.HoroscopeService
}

func NewHoroscopeController(hs service.HoroscopeService) *HoroscopeController {
	return &HoroscopeController{horoscopeService: hs}
}

func (ctrl *HoroscopeController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/horoscope", ctrl.GetHoroscope)
}

// GetHoroscope fetches the playful horoscope message.
// @Summary      Get Horoscope
// @Description  Returns the zodiac sign and a horoscope message for a name and optional ISO birthdate. Cached per name+birthdate.
// @Tags         Horoscope
// @Accept       json
// @Produce      json
// @Param        input  body      model.HoroscopeRequest  true  "Name and optional birthdate"
// @Success      200    {object}  model.Response{data=model.HoroscopeResult}
// @Failure      400    {object}  model.Response
// @Router       /horoscope [post]
func (ctrl *HoroscopeController) GetHoroscope(c *gin.Context) {
	var req model.HoroscopeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.Response{
			Success: false,
			Error:   "Invalid request payload",
		})
		return
	}

	result, err := ctrl.horoscopeService.Fetch(c.Request.Context(), req.Name, req.Birthdate)
	if err != nil {
		handleError(c, "Failed to get horoscope", err)
		return
	}

	handleSuccess(c, "Fetch Success", result)
}
