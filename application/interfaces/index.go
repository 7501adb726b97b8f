package interfaces

import "github.com/gin-gonic/gin"

// ApplicationContext carries a parsed request body plus data set by upstream
// middleware into controllers.
type ApplicationContext[T any] struct {
	Ctx  *gin.Context
	Body *T
	Keys map[string]any
}

func (ac *ApplicationContext[T]) SetContextData(key string, value any) {
	if ac.Keys == nil {
		ac.Keys = map[string]any{}
	}
	ac.Keys[key] = value
}

func (ac *ApplicationContext[T]) GetContextData(key string) any {
	if ac.Keys == nil {
		return nil
	}
	return ac.Keys[key]
}

func (ac *ApplicationContext[T]) GetStringContextData(key string) string {
	value, ok := ac.GetContextData(key).(string)
	if !ok {
		return ""
	}
	return value
}

func (ac *ApplicationContext[T]) GetStringParameter(key string) string {
	return ac.Ctx.Param(key)
}

func (ac *ApplicationContext[T]) GetHeader(key string) *string {
	value := ac.Ctx.GetHeader(key)
	return &value
}
