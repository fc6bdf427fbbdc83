package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/gorlea-ink/gorlea/app/core"
)

type HttpSrv struct {
	Core   *core.Core
	Engine *gin.Engine
}
