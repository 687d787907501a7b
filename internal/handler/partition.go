package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tronicboy1/sql-paginatorr/internal/service"
	"github.com/tronicboy1/sql-paginatorr/pkg/response"
)

type PartitionHandler struct {
	svc service.PartitionService
}

func NewPartitionHandler(svc service.PartitionService) *PartitionHandler {
	return &PartitionHandler{svc: svc}
}

func (h *PartitionHandler) Register(r *gin.RouterGroup) {
	r.GET("/chunks", h.chunks)
	r.GET("/pages/:page_index", h.page)
}

// chunks handles GET /chunks?chunk_size=N&total=M.
func (h *PartitionHandler) chunks(c *gin.Context) {
	var p fieldParser
	chunkSize := p.required("chunk_size", c.Query("chunk_size"))
	total := p.required("total", c.Query("total"))
	if err := p.err(); err != nil {
		response.WriteError(c, err)
		return
	}

	res, err := h.svc.Chunks(chunkSize, total)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}

// page handles GET /pages/:page_index?page_size=S.
func (h *PartitionHandler) page(c *gin.Context) {
	var p fieldParser
	index := p.required("page_index", c.Param("page_index"))
	size := p.optional("page_size", c.Query("page_size"))
	if err := p.err(); err != nil {
		response.WriteError(c, err)
		return
	}

	res, err := h.svc.Page(index, size)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}
