package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/gorlea-ink/gorlea/app/logic/v1"
	"github.com/gorlea-ink/gorlea/app/response"
	"github.com/gorlea-ink/gorlea/pkg/types"
	"github.com/gorlea-ink/gorlea/pkg/utils"
)

func (s *HttpSrv) GetMemoryProfile(c *gin.Context) {
	profile, err := v1.NewMemoryLogic(c, s.Core).GetProfile()
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, profile)
}

type SaveMemoryProfileRequest struct {
	NamePreference       string                     `json:"name_preference" form:"name_preference"`
	PersonalDetails      types.PersonalDetails      `json:"personal_details" form:"personal_details"`
	ImportantConnections types.ImportantConnections `json:"important_connections" form:"important_connections"`
	FreeformMemories     types.FreeformMemories     `json:"freeform_memories" form:"freeform_memories"`
}

func (s *HttpSrv) SaveMemoryProfile(c *gin.Context) {
	var (
		err error
		req SaveMemoryProfileRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	err = v1.NewMemoryLogic(c, s.Core).SaveProfile(types.MemoryProfile{
		NamePreference:       req.NamePreference,
		PersonalDetails:      req.PersonalDetails,
		ImportantConnections: req.ImportantConnections,
		FreeformMemories:     req.FreeformMemories,
	})
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}

func (s *HttpSrv) DeleteMemoryProfile(c *gin.Context) {
	if err := v1.NewMemoryLogic(c, s.Core).DeleteProfile(); err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}
