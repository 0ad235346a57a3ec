package controller

import (
	"net/http"

	"github.com/sahradeniz/Astrologi-Ai-sub000/model"
	"github.com/sahradeniz/Astrologi-Ai-sub000/service"
	"github.com/sahradeniz/Astrologi-Ai-sub000/util"
	"github.com/sahradeniz/Astrologi-Ai-sub000/validator"

	"github.com/Oudwins/zog"
	"github.com/gin-gonic/gin"
)

type SynastryController struct {
	synastryService service.SynastryService
}

func NewSynastryController(ss service.SynastryService) *SynastryController {
	return &SynastryController{synastryService: ss}
}

func (ctrl *SynastryController) RegisterRoutes(router *gin.RouterGroup) {
	synGroup := router.Group("/synastry")
	{
		synGroup.POST("", ctrl.Compare)
		synGroup.GET("", ctrl.GetSavedResult)
	}
}

// synastryBody is the loose request shape: either two inline people or a
// saved friend's name for person2.
type synastryBody struct {
	Person1    model.BirthInputRaw `mapstructure:"person1"`
	Person2    model.BirthInputRaw `mapstructure:"person2"`
	FriendName string              `mapstructure:"friendName"`
}

// Compare runs a synastry comparison.
// @Summary      Calculate Synastry
// @Description  Compares two natal charts. Accepts either {person1, person2} birth fields or {friendName} to compare the stored profile against a saved friend.
// @Tags         Synastry
// @Accept       json
// @Produce      json
// @Param        input  body      synastryBody  true  "Two people or a friend reference"
// @Success      200    {object}  model.Response{data=model.SynastryResult}
// @Failure      400    {object}  model.Response
// @Router       /synastry [post]
func (ctrl *SynastryController) Compare(c *gin.Context) {
	var rawBody map[string]any
	if err := c.ShouldBindJSON(&rawBody); err != nil {
		c.JSON(http.StatusBadRequest, model.Response{
			Success: false,
			Error:   "Invalid request payload",
		})
		return
	}

	var body synastryBody
	if err := util.DecodeBody(rawBody, &body); err != nil {
		c.JSON(http.StatusBadRequest, model.Response{
			Success: false,
			Error:   "Invalid request payload",
		})
		return
	}

	if body.FriendName != "" {
		result, err := ctrl.synastryService.CompareWithFriend(c.Request.Context(), body.FriendName)
		if err != nil {
			handleError(c, "Failed to calculate synastry", err)
			return
		}
		handleSuccess(c, "Fetch Success", result)
		return
	}

	req := model.SynastryRequest{
		Person1: model.SynastryPerson{
			Name:      body.Person1.Name,
			BirthDate: body.Person1.Date,
			BirthTime: body.Person1.Time,
			Location:  body.Person1.Place,
		},
		Person2: model.SynastryPerson{
			Name:      body.Person2.Name,
			BirthDate: body.Person2.Date,
			BirthTime: body.Person2.Time,
			Location:  body.Person2.Place,
		},
	}

	pairValidation := zog.Struct(zog.Shape{}).TestFunc(validator.SynastryPairTest)
	if err := pairValidation.Validate(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.Response{
			Success: false,
			Error:   "İki kişinin doğum bilgileri aynı olamaz",
		})
		return
	}

	result, err := ctrl.synastryService.Compare(c.Request.Context(), body.Person1, body.Person2)
	if err != nil {
		handleError(c, "Failed to calculate synastry", err)
		return
	}

	handleSuccess(c, "Fetch Success", result)
}

// GetSavedResult returns the last persisted comparison.
// @Summary      Get Saved Synastry Result
// @Tags         Synastry
// @Produce      json
// @Success      200  {object}  model.Response{data=model.SynastryResult}
// @Failure      404  {object}  model.Response
// @Router       /synastry [get]
func (ctrl *SynastryController) GetSavedResult(c *gin.Context) {
	result, err := ctrl.synastryService.SavedResult(c.Request.Context())
	if err != nil {
		handleError(c, "No saved synastry result", err)
		return
	}

	handleSuccess(c, "Fetch Success", result)
}
