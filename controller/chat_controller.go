package controller

import (
	"net/http"

	"github.com/sahradeniz/Astrologi-Ai-sub000/middleware"
	"github.com/sahradeniz/Astrologi-Ai-sub000/model"
	"github.com/sahradeniz/Astrologi-Ai-sub000/service"
	"github.com/sahradeniz/Astrologi-Ai-sub000/validator"

	"github.com/Oudwins/zog"
	"github.com/gin-gonic/gin"
)

type ChatController struct {
	chatService  service.ChatService
	isProduction bool
}

func NewChatController(cs service.ChatService, isProduction bool) *ChatController {
	return &ChatController{chatService: cs, isProduction: isProduction}
}

func (ctrl *ChatController) RegisterRoutes(router *gin.RouterGroup) {
	chatGroup := router.Group("/chat")
	chatGroup.Use(middleware.AuthMiddleware(ctrl.isProduction))
	{
		chatGroup.POST("/message", ctrl.SendMessage)
	}
}

// SendMessage relays a chat message to the AI endpoint.
// @Summary      Send Chat Message
// @Description  Forwards the message with the stored bearer token and returns the AI reply.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        input  body      model.ChatRequest  true  "Chat message"
// @Success      200    {object}  model.Response{data=model.ChatReply}
// @Failure      401    {object}  model.Response
// @Router       /chat/message [post]
func (ctrl *ChatController) SendMessage(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.Response{
			Success: false,
			Error:   "Invalid request payload",
		})
		return
	}

	msgValidation := zog.Struct(validator.ChatShape)
	if err := msgValidation.Validate(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.Response{
			Success: false,
			Error:   "Mesaj boş olamaz",
		})
		return
	}

	reply, err := ctrl.chatService.Send(c.Request.Context(), req.Message)
	if err != nil {
		handleError(c, "Failed to send message", err)
		return
	}

	handleSuccess(c, "Fetch Success", model.ChatReply{Response: reply})
}
