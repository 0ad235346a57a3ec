package controller

import (
	"net/http"

	"github.com/sahradeniz/Astrologi-Ai-sub000/model"
	"github.com/sahradeniz/Astrologi-Ai-sub000/service"

	"github.com/gin-gonic/gin"
)

type FriendController struct {
	friendService service.FriendService
}

func NewFriendController(fs service.FriendService) *FriendController {
	return &FriendController{friendService: fs}
}

func (ctrl *FriendController) RegisterRoutes(router *gin.RouterGroup) {
	friendGroup := router.Group("/friends")
	{
		friendGroup.GET("", ctrl.List)
		friendGroup.POST("", ctrl.Add)
		friendGroup.DELETE("/:name", ctrl.Remove)
	}
}

// List godoc
// @Summary      List Friends
// @Tags         Friends
// @Produce      json
// @Success      200  {object}  model.Response{data=[]model.Friend}
// @Router       /friends [get]
func (ctrl *FriendController) List(c *gin.Context) {
	friends, err := ctrl.friendService.List(c.Request.Context())
	if err != nil {
		handleError(c, "Failed to list friends", err)
		return
	}

	handleSuccess(c, "Fetch Success", friends)
}

// Add godoc
// @Summary      Add Friend
// @Description  Validates the friend's birth fields and upserts the entry by name.
// @Tags         Friends
// @Accept       json
// @Produce      json
// @Param        friend  body      model.Friend  true  "Friend with birth data"
// @Success      200     {object}  model.Response{data=[]model.Friend}
// @Failure      400     {object}  model.Response
// @Router       /friends [post]
func (ctrl *FriendController) Add(c *gin.Context) {
	var friend model.Friend
	if err := c.ShouldBindJSON(&friend); err != nil {
		c.JSON(http.StatusBadRequest, model.Response{
			Success: false,
			Error:   "Invalid request payload",
		})
		return
	}

	friends, err := ctrl.friendService.Add(c.Request.Context(), friend)
	if err != nil {
		handleError(c, "Failed to add friend", err)
		return
	}

	handleSuccess(c, "Arkadaş eklendi", friends)
}

// Remove godoc
// @Summary      Remove Friend
// @Tags         Friends
// @Produce      json
// @Param        name  path      string  true  "Friend name"
// @Success      200   {object}  model.Response{data=[]model.Friend}
// @Failure      404   {object}  model.Response
// @Router       /friends/{name} [delete]
func (ctrl *FriendController) Remove(c *gin.Context) {
	friends, err := ctrl.friendService.Remove(c.Request.Context(), c.Param("name"))
	if err != nil {
		handleError(c, "Failed to remove friend", err)
		return
	}

	handleSuccess(c, "Arkadaş silindi", friends)
}
