package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/gorlea-ink/gorlea/app/logic/v1"
	"github.com/gorlea-ink/gorlea/app/response"
	"github.com/gorlea-ink/gorlea/pkg/utils"
)

type CreateEntryRequest struct {
	Content string `json:"content" form:"content" binding:"required"`
}

func (s *HttpSrv) CreateEntry(c *gin.Context) {
	var (
		err error
		req CreateEntryRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	entry, err := v1.NewEntryLogic(c, s.Core).CreateEntry(req.Content)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, gin.H{
		"entry": entry,
		// empty poem means generation failed, the entry itself saved fine
		"poem_generated": entry.Poem != "",
	})
}

// ListEntries serves history. An optional date filter or search query
// narrows the listing; both empty returns everything newest first.
type ListEntriesRequest struct {
	Filter string `json:"filter" form:"filter"`
	Search string `json:"search" form:"search"`
}

func (s *HttpSrv) ListEntries(c *gin.Context) {
	var (
		err error
		req ListEntriesRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	logic := v1.NewEntryLogic(c, s.Core)

	if req.Search != "" {
		result, err := logic.SearchEntries(req.Search)
		if err != nil {
			response.APIError(c, err)
			return
		}
		response.APISuccess(c, gin.H{
			"list":      result.Entries,
			"searching": result.Active,
		})
		return
	}

	if req.Filter != "" {
		list, err := logic.FilterEntries(req.Filter)
		if err != nil {
			response.APIError(c, err)
			return
		}
		response.APISuccess(c, gin.H{
			"list": list,
		})
		return
	}

	list, err := logic.ListEntries()
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, gin.H{
		"list": list,
	})
}

func (s *HttpSrv) GetEntry(c *gin.Context) {
	id, _ := c.Params.Get("id")

	entry, err := v1.NewEntryLogic(c, s.Core).GetEntry(id)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, entry)
}

func (s *HttpSrv) DeleteEntry(c *gin.Context) {
	id, _ := c.Params.Get("id")

	if err := v1.NewEntryLogic(c, s.Core).DeleteEntry(id); err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}

func (s *HttpSrv) ClearEntries(c *gin.Context) {
	if err := v1.NewEntryLogic(c, s.Core).ClearEntries(); err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}
