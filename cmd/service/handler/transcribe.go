package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/gorlea-ink/gorlea/app/logic/v1"
	"github.com/gorlea-ink/gorlea/app/response"
	"github.com/gorlea-ink/gorlea/pkg/errors"
	"github.com/gorlea-ink/gorlea/pkg/i18n"
)

// Transcribe accepts a multipart "audio" file and returns the recognized
// text for the entry editor.
func (s *HttpSrv) Transcribe(c *gin.Context) {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		response.APIError(c, errors.New("api.Transcribe.FormFile", i18n.ERROR_INVALIDARGUMENT, err).Code(http.StatusBadRequest))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.APIError(c, errors.New("api.Transcribe.Open", i18n.ERROR_INVALIDARGUMENT, err).Code(http.StatusBadRequest))
		return
	}
	defer file.Close()

	text, err := v1.NewTranscribeLogic(c, s.Core).Transcribe(fileHeader.Filename, file)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, gin.H{
		"text": text,
	})
}
