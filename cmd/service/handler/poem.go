package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	v1 "github.com/gorlea-ink/gorlea/app/logic/v1"
	"github.com/gorlea-ink/gorlea/pkg/errors"
)

// The generation endpoint keeps its own wire shape instead of the api
// envelope: 200 {"poem": ...}, errors {"error": ...}. Clients of the
// public endpoint depend on these literal bodies.

type GeneratePoemRequest struct {
	Entry    string `json:"entry"`
	Memories string `json:"memories"`
}

func (s *HttpSrv) GeneratePoem(c *gin.Context) {
	var req GeneratePoemRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Entry) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing-entry"})
		return
	}

	poem, err := v1.NewPoemLogic(c, s.Core).GeneratePoem(req.Entry, req.Memories)
	if err != nil {
		status := http.StatusInternalServerError
		if code := errors.GetCode(err); code >= 400 && code < 500 {
			status = code
		}
		c.JSON(status, gin.H{"error": errors.GetMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"poem": poem})
}

// PoemMethodNotAllowed answers any non-POST verb on the generation path.
func PoemMethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method-not-allowed"})
}
