package server_response

import (
	"github.com/gin-gonic/gin"
	"verilearn.io/infrastructure/logger"
)

// ginResponder writes the uniform response envelope used by every endpoint.
type ginResponder struct{}

func (gr ginResponder) Respond(ctx interface{}, code int, message string, payload interface{}, errs []error, responseCode *uint) {
	ginCtx, ok := ctx.(*gin.Context)
	if !ok {
		logger.Error("could not transform gin context in ginResponder", logger.LoggerOptions{
			Key:  "payload",
			Data: ctx,
		})
		return
	}
	errMsgs := []string{}
	for _, err := range errs {
		errMsgs = append(errMsgs, err.Error())
	}
	response := map[string]any{
		"message": message,
		"body":    payload,
	}
	if len(errMsgs) != 0 {
		response["errors"] = errMsgs
	}
	if responseCode != nil {
		response["responseCode"] = responseCode
	}
	ginCtx.Abort()
	ginCtx.JSON(code, response)
}

var Responder ServerResponder = ginResponder{}
