package controllers

import (
	"strconv"

	"rms/config"
	"rms/services"

	"github.com/gin-gonic/gin"
)

// parsePagination đọc page/limit từ query, mặc định page=1 limit=10
func parsePagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// parseIDParam đọc id từ path param
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

func contractService() *services.ContractService {
	return services.NewContractService(services.ContractServiceOptions{DB: config.DB})
}
